package skeleton

// Entry is one row of a session listing: an object's flattened index, its
// owning joint's session index, and its position in that joint's list.
type Entry struct {
	Flat   int
	Joint  int
	Pos    int
	Object ObjectID
}

// Session wraps one load-edit-save pass over a model. It builds the index
// maps on open, rebuilds them after every move, and hands the mutated
// model back on close for serialization.
//
// The session mutates the model in place and keeps no undo log. A caller
// that wants rollback must reload the model from its container instead of
// reusing the mutated one.
type Session struct {
	model *Model
	idx   *Index
}

// Open builds the session view for a model.
func Open(m *Model) (*Session, error) {
	idx, err := BuildIndex(m)
	if err != nil {
		return nil, err
	}
	return &Session{model: m, idx: idx}, nil
}

// Index exposes the current session view. The view is replaced, never
// mutated, so callers may hold it until the next Move.
func (s *Session) Index() *Index {
	return s.idx
}

// List returns every object in canonical order with its flattened index,
// joint index, and per-joint position.
func (s *Session) List() []Entry {
	out := make([]Entry, len(s.idx.Flat))
	for i, loc := range s.idx.Flat {
		out[i] = Entry{Flat: i, Joint: loc.Joint, Pos: loc.Pos, Object: loc.Object}
	}
	return out
}

// Move relocates the object at flattened index flat to the tail of the
// target joint's list, rebuilds the session view, and returns the object's
// new flattened index. A resolution failure leaves both the model and the
// view unchanged; flattened indices issued before a successful Move are
// stale and must be re-read from List.
func (s *Session) Move(flat, targetJoint int) (int, error) {
	loc, err := s.idx.Locate(flat)
	if err != nil {
		return 0, err
	}
	if _, err := s.model.Reassign(s.idx, loc.Joint, loc.Pos, targetJoint); err != nil {
		return 0, err
	}
	idx, err := BuildIndex(s.model)
	if err != nil {
		return 0, err
	}
	s.idx = idx
	return idx.FlatIndexOf(loc.Object), nil
}

// Close marks the session boundary and returns the model for hand-off to
// the container writer. The model was mutated in place, so Close performs
// no structural work.
func (s *Session) Close() *Model {
	return s.model
}
