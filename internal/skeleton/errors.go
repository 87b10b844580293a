// Package skeleton models the joint hierarchy of an SKM model in memory:
// a rooted joint tree where each joint owns a singly-linked list of render
// objects. It provides canonical enumeration, object reassignment between
// joints, and re-linearization back into container records.
package skeleton

import "errors"

var (
	// ErrMalformedHierarchy indicates a link structure the walk bounds
	// reject: a cycle, a shared list tail, or an orphaned record. The
	// session's index maps are invalid after this; reload the model.
	ErrMalformedHierarchy = errors.New("malformed joint hierarchy")

	// ErrJointNotFound indicates a joint index outside the current
	// session's range.
	ErrJointNotFound = errors.New("joint index out of range")

	// ErrObjectNotFound indicates an object position that does not exist
	// in the addressed joint's list.
	ErrObjectNotFound = errors.New("object position out of range")

	// ErrIndexOutOfRange indicates a flattened object index outside the
	// total object count.
	ErrIndexOutOfRange = errors.New("flattened object index out of range")
)
