package skm

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Write serializes f to path. The version byte in f selects the container
// variant; zero means VersionPlain.
func Write(path string, f *File) error {
	data, err := Encode(f)
	if err != nil {
		return fmt.Errorf("skm: %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("skm: write %s: %w", path, err)
	}
	return nil
}

// Encode serializes f into the on-disk byte layout.
func Encode(f *File) ([]byte, error) {
	if len(f.Joints) == 0 || len(f.Joints) > maxJoints {
		return nil, fmt.Errorf("invalid joint count %d", len(f.Joints))
	}
	if len(f.Objects) > maxObjects {
		return nil, fmt.Errorf("invalid object count %d", len(f.Objects))
	}
	if err := f.checkLinks(); err != nil {
		return nil, err
	}

	w := &writer{}
	w.writeStr(f.Name, 32)
	w.writeU16(uint16(len(f.Joints)))
	w.writeU16(uint16(len(f.Objects)))

	for _, j := range f.Joints {
		w.writeStr(j.Name, 32)
		w.writeI16(j.FirstChild)
		w.writeI16(j.NextSibling)
		w.writeI16(j.FirstObject)
		w.writeI16(0) // padding
	}

	for i, o := range f.Objects {
		if len(o.Payload) > int(^uint32(0)>>1) {
			return nil, fmt.Errorf("object %d: payload too large", i)
		}
		w.writeI16(o.Next)
		w.writeU16(0) // padding
		w.writeU32(uint32(len(o.Payload)))
		w.buf = append(w.buf, o.Payload...)
	}

	version := f.Version
	if version == 0 {
		version = VersionPlain
	}
	switch version {
	case VersionPlain:
		out := append([]byte("SKM"), VersionPlain)
		return append(out, w.buf...), nil
	case VersionObfuscated:
		out := append([]byte("SKM"), VersionObfuscated)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(w.buf)))
		return append(out, obfuscate(w.buf)...), nil
	default:
		return nil, fmt.Errorf("unsupported version %d", version)
	}
}

type writer struct {
	buf []byte
}

func (w *writer) writeStr(s string, n int) {
	b := make([]byte, n)
	copy(b, s) // truncates to n, NUL-padded
	w.buf = append(w.buf, b...)
}

func (w *writer) writeI16(v int16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, uint16(v))
}

func (w *writer) writeU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *writer) writeU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}
