package skeleton

import "fmt"

// Reassign detaches the object at position pos in the source joint's list
// and appends it at the tail of the target joint's list. Joint arguments
// are session indices resolved against idx, which must reflect the model's
// current shape. Returns the object's new position in the target list.
//
// All resolution happens before any link changes: a failed lookup leaves
// the model untouched. Tree shape, payloads, and unrelated joints' lists
// are never modified.
func (m *Model) Reassign(idx *Index, srcJoint, pos, dstJoint int) (int, error) {
	if srcJoint < 0 || srcJoint >= len(idx.Joints) {
		return 0, fmt.Errorf("source joint %d of %d: %w", srcJoint, len(idx.Joints), ErrJointNotFound)
	}
	if dstJoint < 0 || dstJoint >= len(idx.Joints) {
		return 0, fmt.Errorf("target joint %d of %d: %w", dstJoint, len(idx.Joints), ErrJointNotFound)
	}
	list := idx.Lists[srcJoint]
	if pos < 0 || pos >= len(list) {
		return 0, fmt.Errorf("position %d in joint %d with %d objects: %w", pos, srcJoint, len(list), ErrObjectNotFound)
	}
	src := idx.Joints[srcJoint]
	dst := idx.Joints[dstJoint]

	// Unlink from the source list. The head advances past the object, or
	// the predecessor bypasses it; either way the remaining objects keep
	// their relative order.
	id := list[pos]
	if pos == 0 {
		src.head = m.objects[id].next
	} else {
		m.objects[list[pos-1]].next = m.objects[id].next
	}
	m.objects[id].next = NoObject

	// Append at the target tail. Walk the live links, not the cached
	// lists: when source and target are the same joint the cached list
	// still contains the unlinked object.
	if dst.head == NoObject {
		dst.head = id
		return 0, nil
	}
	tail := dst.head
	newPos := 1
	for m.objects[tail].next != NoObject {
		if newPos > len(m.objects) {
			return 0, fmt.Errorf("tail walk of joint %d exceeded %d links: %w", dstJoint, len(m.objects), ErrMalformedHierarchy)
		}
		tail = m.objects[tail].next
		newPos++
	}
	m.objects[tail].next = id
	return newPos, nil
}
