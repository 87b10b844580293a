package skeleton

import "fmt"

// ObjectID is a stable handle to a render object in a Model's arena.
// Handles survive reassignment; only list links change.
type ObjectID int32

// NoObject marks an absent list head or successor.
const NoObject ObjectID = -1

// RenderObject carries one opaque mesh/material payload. Edit operations
// never inspect or copy the payload; they only relink the object.
type RenderObject struct {
	Payload []byte
	next    ObjectID
}

// Joint is one node of the skeletal hierarchy. It owns its children in
// order and the head of its render-object list. Child order is significant
// and preserved across edits.
type Joint struct {
	Name     string
	Children []*Joint
	head     ObjectID
}

// Model owns a joint tree and the arena of render objects attached to it.
// The zero-value Model is unusable; construct with NewModel or FromFile.
type Model struct {
	Name string
	Root *Joint

	objects []RenderObject
	joints  int // total joints attached, bounds traversal
}

// NewModel returns an empty model. The first AddJoint with a nil parent
// becomes the root.
func NewModel(name string) *Model {
	return &Model{Name: name}
}

// AddJoint creates a joint and attaches it under parent, or as the root
// when parent is nil.
func (m *Model) AddJoint(parent *Joint, name string) *Joint {
	j := &Joint{Name: name, head: NoObject}
	if parent == nil {
		m.Root = j
	} else {
		parent.Children = append(parent.Children, j)
	}
	m.joints++
	return j
}

// NewObject allocates a render object in the arena. The object is not
// attached to any joint until AppendObject links it.
func (m *Model) NewObject(payload []byte) ObjectID {
	m.objects = append(m.objects, RenderObject{Payload: payload, next: NoObject})
	return ObjectID(len(m.objects) - 1)
}

// Payload returns the opaque payload of an object.
func (m *Model) Payload(id ObjectID) []byte {
	return m.objects[id].Payload
}

// ObjectCount returns the number of objects in the arena.
func (m *Model) ObjectCount() int {
	return len(m.objects)
}

// AppendObject links an object at the tail of j's list.
func (m *Model) AppendObject(j *Joint, id ObjectID) error {
	if int(id) < 0 || int(id) >= len(m.objects) {
		return fmt.Errorf("append object %d of %d: %w", id, len(m.objects), ErrObjectNotFound)
	}
	if j.head == NoObject {
		j.head = id
		return nil
	}
	tail := j.head
	for steps := 0; m.objects[tail].next != NoObject; steps++ {
		if steps >= len(m.objects) {
			return fmt.Errorf("tail walk of %q exceeded %d links: %w", j.Name, len(m.objects), ErrMalformedHierarchy)
		}
		tail = m.objects[tail].next
	}
	m.objects[tail].next = id
	return nil
}

// Joints returns the canonical joint enumeration: depth-first pre-order,
// children visited in stored order. The position in the returned slice is
// the joint's session index. A walk that visits more nodes than the model
// owns fails with ErrMalformedHierarchy instead of looping.
func (m *Model) Joints() ([]*Joint, error) {
	if m.Root == nil {
		return nil, nil
	}
	out := make([]*Joint, 0, m.joints)
	stack := []*Joint{m.Root}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(out) >= m.joints {
			return nil, fmt.Errorf("joint walk exceeded %d nodes: %w", m.joints, ErrMalformedHierarchy)
		}
		out = append(out, j)
		for i := len(j.Children) - 1; i >= 0; i-- {
			stack = append(stack, j.Children[i])
		}
	}
	return out, nil
}

// Objects returns j's render objects in list order, following "next" links
// from the head. The walk is bounded by the arena size; exceeding it or
// leaving the arena fails with ErrMalformedHierarchy.
func (m *Model) Objects(j *Joint) ([]ObjectID, error) {
	var out []ObjectID
	for id := j.head; id != NoObject; id = m.objects[id].next {
		if int(id) < 0 || int(id) >= len(m.objects) {
			return nil, fmt.Errorf("object link %d outside arena of %d: %w", id, len(m.objects), ErrMalformedHierarchy)
		}
		if len(out) >= len(m.objects) {
			return nil, fmt.Errorf("object walk of %q exceeded %d links: %w", j.Name, len(m.objects), ErrMalformedHierarchy)
		}
		out = append(out, id)
	}
	return out, nil
}
