package skeleton

import (
	"fmt"
	"math"

	"skm-editor/internal/skm"
)

// FromFile builds the in-memory model from decoded container records.
// The container only guarantees that link indices are in range; this is
// where chain integrity is enforced. Any joint claimed as a child twice,
// any joint unreachable from the root, any object linked from two places,
// and any object attached to no joint fails with ErrMalformedHierarchy.
func FromFile(f *skm.File) (*Model, error) {
	if len(f.Joints) == 0 {
		return nil, fmt.Errorf("no joints: %w", ErrMalformedHierarchy)
	}

	m := &Model{Name: f.Name}
	joints := make([]*Joint, len(f.Joints))
	for i, rec := range f.Joints {
		joints[i] = &Joint{Name: rec.Name, head: NoObject}
	}
	m.joints = len(joints)
	m.Root = joints[0]

	// Resolve first-child/next-sibling chains into ordered child slices.
	parent := make([]int, len(joints))
	for i := range parent {
		parent[i] = -1
	}
	for i, rec := range f.Joints {
		for c := rec.FirstChild; c != skm.None; c = f.Joints[c].NextSibling {
			ci := int(c)
			if ci < 0 || ci >= len(joints) {
				return nil, fmt.Errorf("joint %d: child %d out of range: %w", i, ci, ErrMalformedHierarchy)
			}
			if ci == 0 {
				return nil, fmt.Errorf("root joint linked as a child of joint %d: %w", i, ErrMalformedHierarchy)
			}
			if parent[ci] != -1 {
				return nil, fmt.Errorf("joint %d claimed by joints %d and %d: %w", ci, parent[ci], i, ErrMalformedHierarchy)
			}
			parent[ci] = i
			joints[i].Children = append(joints[i].Children, joints[ci])
			if len(joints[i].Children) > len(joints) {
				return nil, fmt.Errorf("sibling chain of joint %d exceeded %d entries: %w", i, len(joints), ErrMalformedHierarchy)
			}
		}
	}
	for i := 1; i < len(joints); i++ {
		if parent[i] == -1 {
			return nil, fmt.Errorf("joint %d unreachable from any parent: %w", i, ErrMalformedHierarchy)
		}
	}

	// A sibling cycle disjoint from the root passes the per-joint checks
	// above; a full traversal exposes it.
	seq, err := m.Joints()
	if err != nil {
		return nil, err
	}
	if len(seq) != len(joints) {
		return nil, fmt.Errorf("only %d of %d joints reachable from root: %w", len(seq), len(joints), ErrMalformedHierarchy)
	}

	// Objects: arena order matches record order, then each joint's chain
	// is relinked. Every object must be owned by exactly one joint.
	m.objects = make([]RenderObject, len(f.Objects))
	for i, rec := range f.Objects {
		m.objects[i] = RenderObject{Payload: rec.Payload, next: NoObject}
	}
	owner := make([]int, len(f.Objects))
	for i := range owner {
		owner[i] = -1
	}
	for ji, rec := range f.Joints {
		prev := NoObject
		for o := rec.FirstObject; o != skm.None; o = f.Objects[o].Next {
			oi := int(o)
			if oi < 0 || oi >= len(m.objects) {
				return nil, fmt.Errorf("joint %d: object link %d out of range: %w", ji, oi, ErrMalformedHierarchy)
			}
			if owner[oi] != -1 {
				return nil, fmt.Errorf("object %d linked from joints %d and %d: %w", oi, owner[oi], ji, ErrMalformedHierarchy)
			}
			owner[oi] = ji
			if prev == NoObject {
				joints[ji].head = ObjectID(oi)
			} else {
				m.objects[prev].next = ObjectID(oi)
			}
			prev = ObjectID(oi)
		}
	}
	for i := range owner {
		if owner[i] == -1 {
			return nil, fmt.Errorf("object %d attached to no joint: %w", i, ErrMalformedHierarchy)
		}
	}

	return m, nil
}

// ToFile re-linearizes the model into container records: joints in
// canonical pre-order, each joint's objects contiguous in list order.
// The version byte is left zero; the caller decides the variant.
func (m *Model) ToFile() (*skm.File, error) {
	joints, err := m.Joints()
	if err != nil {
		return nil, err
	}
	if len(joints) > math.MaxInt16 {
		return nil, fmt.Errorf("too many joints (%d)", len(joints))
	}
	if len(m.objects) > math.MaxInt16 {
		return nil, fmt.Errorf("too many objects (%d)", len(m.objects))
	}

	pos := make(map[*Joint]int, len(joints))
	for i, j := range joints {
		pos[j] = i
	}

	recs := make([]skm.JointRec, len(joints))
	for i, j := range joints {
		recs[i] = skm.JointRec{
			Name:        j.Name,
			FirstChild:  skm.None,
			NextSibling: skm.None,
			FirstObject: skm.None,
		}
		if len(j.Children) > 0 {
			recs[i].FirstChild = int16(pos[j.Children[0]])
		}
	}
	for _, j := range joints {
		for k := 0; k+1 < len(j.Children); k++ {
			recs[pos[j.Children[k]]].NextSibling = int16(pos[j.Children[k+1]])
		}
	}

	var objects []skm.ObjectRec
	for i, j := range joints {
		ids, err := m.Objects(j)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			continue
		}
		recs[i].FirstObject = int16(len(objects))
		for k, id := range ids {
			next := skm.None
			if k+1 < len(ids) {
				next = int16(len(objects) + 1)
			}
			objects = append(objects, skm.ObjectRec{
				Next:    next,
				Payload: m.objects[id].Payload,
			})
		}
	}

	return &skm.File{
		Name:    m.Name,
		Joints:  recs,
		Objects: objects,
	}, nil
}
