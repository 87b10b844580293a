package skeleton

import "fmt"

// Location identifies one render object by its place in the session view:
// the owning joint's session index and the object's position in that
// joint's list.
type Location struct {
	Joint  int
	Pos    int
	Object ObjectID
}

// Index is the session view of a model: the canonical joint sequence, the
// object list under each joint, and the flattened object table. It is a
// pure function of the model's current shape. Any reassignment shifts
// flattened indices, so the index must be rebuilt after every structural
// change; Session does this eagerly.
type Index struct {
	Joints []*Joint
	Lists  [][]ObjectID // parallel to Joints
	Flat   []Location
}

// BuildIndex derives the session view from the model's current shape.
// Building the same shape twice yields the same assignment.
func BuildIndex(m *Model) (*Index, error) {
	joints, err := m.Joints()
	if err != nil {
		return nil, err
	}
	idx := &Index{
		Joints: joints,
		Lists:  make([][]ObjectID, len(joints)),
	}
	for ji, j := range joints {
		objs, err := m.Objects(j)
		if err != nil {
			return nil, err
		}
		idx.Lists[ji] = objs
		for pos, id := range objs {
			idx.Flat = append(idx.Flat, Location{Joint: ji, Pos: pos, Object: id})
		}
	}
	return idx, nil
}

// TotalObjects returns the number of objects across all joints.
func (idx *Index) TotalObjects() int {
	return len(idx.Flat)
}

// Locate resolves a flattened object index to its location.
func (idx *Index) Locate(flat int) (Location, error) {
	if flat < 0 || flat >= len(idx.Flat) {
		return Location{}, fmt.Errorf("object %d of %d: %w", flat, len(idx.Flat), ErrIndexOutOfRange)
	}
	return idx.Flat[flat], nil
}

// FlatIndexOf returns the flattened index of an object handle, or -1 if
// the handle is not attached anywhere in this view.
func (idx *Index) FlatIndexOf(id ObjectID) int {
	for i, loc := range idx.Flat {
		if loc.Object == id {
			return i
		}
	}
	return -1
}
