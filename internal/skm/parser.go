package skm

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Sanity bounds for record counts; real models stay far below these.
const (
	maxJoints  = 1024
	maxObjects = 4096
)

// bodyKey obfuscates version-2 bodies with a repeating 3-byte XOR. The
// transform is symmetric, so the writer applies the same function.
var bodyKey = [3]byte{0xFC, 0xCF, 0xAB}

func obfuscate(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ bodyKey[i%3]
	}
	return out
}

// Parse reads an SKM file. Supports versions 1 (plain) and 2 (obfuscated).
func Parse(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("skm: read %s: %w", path, err)
	}
	f, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("skm: %s: %w", path, err)
	}
	return f, nil
}

// Decode parses an in-memory SKM container.
func Decode(raw []byte) (*File, error) {
	if len(raw) < 4 || string(raw[:3]) != "SKM" {
		return nil, fmt.Errorf("invalid header")
	}

	version := raw[3]
	var data []byte

	switch version {
	case VersionObfuscated:
		if len(raw) < 8 {
			return nil, fmt.Errorf("truncated v2 header")
		}
		size := binary.LittleEndian.Uint32(raw[4:8])
		if 8+int(size) > len(raw) {
			return nil, fmt.Errorf("truncated v2 data")
		}
		data = obfuscate(raw[8 : 8+size])
	case VersionPlain:
		data = raw[4:]
	default:
		return nil, fmt.Errorf("unsupported version %d", version)
	}

	r := &reader{data: data}
	f, err := r.parse()
	if err != nil {
		return nil, err
	}
	f.Version = version
	return f, nil
}

type reader struct {
	data []byte
	off  int
}

func (r *reader) readStr(n int) string {
	if r.off+n > len(r.data) {
		r.off = len(r.data)
		return ""
	}
	s := r.data[r.off : r.off+n]
	r.off += n
	// Find null terminator
	for i, b := range s {
		if b == 0 {
			return string(s[:i])
		}
	}
	return string(s)
}

func (r *reader) readI16() int16 {
	if r.off+2 > len(r.data) {
		r.off = len(r.data)
		return 0
	}
	v := int16(binary.LittleEndian.Uint16(r.data[r.off:]))
	r.off += 2
	return v
}

func (r *reader) readU16() uint16 {
	if r.off+2 > len(r.data) {
		r.off = len(r.data)
		return 0
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v
}

func (r *reader) readU32() uint32 {
	if r.off+4 > len(r.data) {
		r.off = len(r.data)
		return 0
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v
}

func (r *reader) parse() (*File, error) {
	name := r.readStr(32)
	jointCount := int(r.readU16())
	objectCount := int(r.readU16())

	if jointCount == 0 || jointCount > maxJoints {
		return nil, fmt.Errorf("invalid joint count %d", jointCount)
	}
	if objectCount > maxObjects {
		return nil, fmt.Errorf("invalid object count %d", objectCount)
	}
	if len(r.data)-r.off < jointCount*40 {
		return nil, fmt.Errorf("truncated joint table (%d joints, %d bytes left)", jointCount, len(r.data)-r.off)
	}

	// Joint records: 40 bytes each (name[32], firstChild, nextSibling,
	// firstObject, pad).
	joints := make([]JointRec, jointCount)
	for i := range joints {
		joints[i].Name = r.readStr(32)
		joints[i].FirstChild = r.readI16()
		joints[i].NextSibling = r.readI16()
		joints[i].FirstObject = r.readI16()
		_ = r.readI16() // padding
	}

	// Object records: next, pad, payloadLen, payload bytes.
	objects := make([]ObjectRec, objectCount)
	for i := range objects {
		if len(r.data)-r.off < 8 {
			return nil, fmt.Errorf("truncated object table at record %d", i)
		}
		objects[i].Next = r.readI16()
		_ = r.readU16() // padding
		n := int(r.readU32())
		if n > len(r.data)-r.off {
			return nil, fmt.Errorf("object %d: payload length %d exceeds remaining data", i, n)
		}
		objects[i].Payload = append([]byte(nil), r.data[r.off:r.off+n]...)
		r.off += n
	}

	f := &File{
		Name:    name,
		Joints:  joints,
		Objects: objects,
	}
	if err := f.checkLinks(); err != nil {
		return nil, err
	}
	return f, nil
}

// checkLinks verifies that every link index addresses an existing record.
// Chain integrity (cycles, sharing, orphans) is the model builder's job;
// the container only guarantees index ranges.
func (f *File) checkLinks() error {
	nj := int16(len(f.Joints))
	no := int16(len(f.Objects))
	for i, j := range f.Joints {
		if j.FirstChild < None || j.FirstChild >= nj {
			return fmt.Errorf("joint %d: first child %d out of range", i, j.FirstChild)
		}
		if j.NextSibling < None || j.NextSibling >= nj {
			return fmt.Errorf("joint %d: next sibling %d out of range", i, j.NextSibling)
		}
		if j.FirstObject < None || j.FirstObject >= no {
			return fmt.Errorf("joint %d: first object %d out of range", i, j.FirstObject)
		}
	}
	for i, o := range f.Objects {
		if o.Next < None || o.Next >= no {
			return fmt.Errorf("object %d: next %d out of range", i, o.Next)
		}
	}
	return nil
}
