// Package skm reads and writes the SKM skeletal model container: a joint
// table linked by first-child/next-sibling indices, and an object table
// linked into per-joint lists by next indices. Payloads are opaque blobs.
package skm

// None marks an absent link in joint and object records.
const None int16 = -1

// Container versions. Version 2 stores the body XOR-obfuscated behind a
// size field; the record layout is identical.
const (
	VersionPlain      byte = 1
	VersionObfuscated byte = 2
)

// JointRec is the on-disk form of one joint. Links are record indices into
// the file's joint and object tables. Joint 0 is the root.
type JointRec struct {
	Name        string
	FirstChild  int16
	NextSibling int16
	FirstObject int16
}

// ObjectRec is the on-disk form of one render object: an opaque payload
// and the index of the next object in the owning joint's list.
type ObjectRec struct {
	Next    int16
	Payload []byte
}

// File is a fully decoded SKM container.
type File struct {
	Name    string
	Version byte
	Joints  []JointRec
	Objects []ObjectRec
}
