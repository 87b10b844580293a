package skeleton

import (
	"testing"

	"github.com/stretchr/testify/require"

	"skm-editor/internal/skm"
)

// sampleFile mirrors sampleModel in record form: root J0 (objects 0, 1),
// child J1 (object 2), child J2 (empty).
func sampleFile() *skm.File {
	return &skm.File{
		Name: "fixture",
		Joints: []skm.JointRec{
			{Name: "pelvis", FirstChild: 1, NextSibling: skm.None, FirstObject: 0},
			{Name: "spine", FirstChild: skm.None, NextSibling: 2, FirstObject: 2},
			{Name: "tail", FirstChild: skm.None, NextSibling: skm.None, FirstObject: skm.None},
		},
		Objects: []skm.ObjectRec{
			{Next: 1, Payload: []byte("mesh-a")},
			{Next: skm.None, Payload: []byte("mesh-b")},
			{Next: skm.None, Payload: []byte("mesh-c")},
		},
	}
}

func TestFromFile(t *testing.T) {
	m, err := FromFile(sampleFile())
	require.NoError(t, err)
	require.Equal(t, "fixture", m.Name)

	joints, err := m.Joints()
	require.NoError(t, err)
	require.Len(t, joints, 3)
	require.Equal(t, "pelvis", joints[0].Name)
	require.Equal(t, "spine", joints[1].Name)
	require.Equal(t, "tail", joints[2].Name)

	lists := allLists(t, m)
	require.Len(t, lists[0], 2)
	require.Equal(t, []byte("mesh-a"), m.Payload(lists[0][0]))
	require.Equal(t, []byte("mesh-b"), m.Payload(lists[0][1]))
	require.Len(t, lists[1], 1)
	require.Equal(t, []byte("mesh-c"), m.Payload(lists[1][0]))
	require.Empty(t, lists[2])
}

func TestToFileRelinearizes(t *testing.T) {
	m, _, _ := sampleModel(t)
	s, err := Open(m)
	require.NoError(t, err)
	_, err = s.Move(0, 2) // A to J2
	require.NoError(t, err)

	f, err := s.Close().ToFile()
	require.NoError(t, err)

	require.Equal(t, []skm.JointRec{
		{Name: "pelvis", FirstChild: 1, NextSibling: skm.None, FirstObject: 0},
		{Name: "spine", FirstChild: skm.None, NextSibling: 2, FirstObject: 1},
		{Name: "tail", FirstChild: skm.None, NextSibling: skm.None, FirstObject: 2},
	}, f.Joints)
	require.Equal(t, []skm.ObjectRec{
		{Next: skm.None, Payload: []byte("mesh-b")},
		{Next: skm.None, Payload: []byte("mesh-c")},
		{Next: skm.None, Payload: []byte("mesh-a")},
	}, f.Objects)
}

func TestFileRoundTrip(t *testing.T) {
	f := sampleFile()
	m, err := FromFile(f)
	require.NoError(t, err)
	out, err := m.ToFile()
	require.NoError(t, err)
	require.Equal(t, f.Name, out.Name)
	require.Equal(t, f.Joints, out.Joints)
	require.Equal(t, f.Objects, out.Objects)
}

func TestFromFileRejectsMalformed(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(f *skm.File)
	}{
		{"no joints", func(f *skm.File) { f.Joints = nil; f.Objects = nil }},
		{"root as child", func(f *skm.File) { f.Joints[1].FirstChild = 0 }},
		{"joint claimed twice", func(f *skm.File) { f.Joints[2].FirstChild = 1 }},
		{"sibling self-loop", func(f *skm.File) { f.Joints[1].NextSibling = 1 }},
		{"object shared by two joints", func(f *skm.File) { f.Joints[2].FirstObject = 2 }},
		{"object chain shares tail", func(f *skm.File) { f.Joints[2].FirstObject = 1 }},
		{"object self-loop", func(f *skm.File) { f.Objects[2].Next = 2 }},
		{"orphaned object", func(f *skm.File) { f.Joints[1].FirstObject = skm.None }},
		{"orphaned joint", func(f *skm.File) { f.Joints[0].FirstChild = skm.None }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := sampleFile()
			tc.mutate(f)
			_, err := FromFile(f)
			require.ErrorIs(t, err, ErrMalformedHierarchy)
		})
	}
}

func TestFromFileDisjointSiblingCycle(t *testing.T) {
	// Joints 1 and 2 claim each other as children; neither is reachable
	// from the root, so the per-record checks alone cannot see it.
	f := &skm.File{
		Name: "cycle",
		Joints: []skm.JointRec{
			{Name: "root", FirstChild: skm.None, NextSibling: skm.None, FirstObject: skm.None},
			{Name: "a", FirstChild: 2, NextSibling: skm.None, FirstObject: skm.None},
			{Name: "b", FirstChild: 1, NextSibling: skm.None, FirstObject: skm.None},
		},
	}
	_, err := FromFile(f)
	require.ErrorIs(t, err, ErrMalformedHierarchy)
}
