// Package diagram renders a model's joint hierarchy as an SVG or WebP
// image: one circle per joint labeled with its session index, display
// name, and attached object count.
package diagram

import (
	"fmt"

	"skm-editor/internal/names"
	"skm-editor/internal/skeleton"
)

// Cell geometry in output pixels.
const (
	cellW  = 120
	cellH  = 90
	margin = 40
	radius = 14
)

// node is one laid-out joint.
type node struct {
	label  string
	count  int // attached objects
	parent int // index into the node slice, -1 for the root
	depth  int
	slot   float64 // horizontal slot; leaves get whole numbers
}

// buildNodes lays out the joint tree: leaves occupy successive horizontal
// slots, interior joints center over their children, depth sets the row.
// Node order matches the session joint indexing.
func buildNodes(idx *skeleton.Index, labels names.Table) []node {
	pos := make(map[*skeleton.Joint]int, len(idx.Joints))
	for i, j := range idx.Joints {
		pos[j] = i
	}

	nodes := make([]node, len(idx.Joints))
	for i, j := range idx.Joints {
		nodes[i] = node{
			label:  labels.Label(j.Name, i),
			count:  len(idx.Lists[i]),
			parent: -1,
		}
	}
	for i, j := range idx.Joints {
		for _, c := range j.Children {
			ci := pos[c]
			nodes[ci].parent = i
			nodes[ci].depth = nodes[i].depth + 1
		}
	}

	if len(idx.Joints) == 0 {
		return nodes
	}
	nextSlot := 0.0
	var assign func(j *skeleton.Joint) float64
	assign = func(j *skeleton.Joint) float64 {
		i := pos[j]
		if len(j.Children) == 0 {
			nodes[i].slot = nextSlot
			nextSlot++
			return nodes[i].slot
		}
		first := assign(j.Children[0])
		last := first
		for _, c := range j.Children[1:] {
			last = assign(c)
		}
		nodes[i].slot = (first + last) / 2
		return nodes[i].slot
	}
	assign(idx.Joints[0])

	return nodes
}

// extent returns the pixel size of the canvas holding all nodes.
func extent(nodes []node) (int, int) {
	maxSlot, maxDepth := 0.0, 0
	for _, n := range nodes {
		if n.slot > maxSlot {
			maxSlot = n.slot
		}
		if n.depth > maxDepth {
			maxDepth = n.depth
		}
	}
	w := int(maxSlot*cellW) + 2*margin + cellW
	h := maxDepth*cellH + 2*margin + cellH
	return w, h
}

func (n node) px() int { return margin + cellW/2 + int(n.slot*cellW) }
func (n node) py() int { return margin + cellH/2 + n.depth*cellH }

func (n node) caption(idx int) string {
	return fmt.Sprintf("%d %s (%d)", idx, n.label, n.count)
}
