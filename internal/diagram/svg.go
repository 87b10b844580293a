package diagram

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"skm-editor/internal/names"
	"skm-editor/internal/skeleton"
)

const (
	edgeStyle   = "stroke:#8a8a8a;stroke-width:2"
	emptyStyle  = "fill:#e8e8e8;stroke:#555555;stroke-width:2"
	loadedStyle = "fill:#7db8e8;stroke:#2c5d8a;stroke-width:2"
	textStyle   = "text-anchor:middle;font-size:12px;font-family:sans-serif;fill:#222222"
)

// RenderSVG writes the joint hierarchy of the session view as an SVG
// diagram. Joints with attached objects are drawn filled.
func RenderSVG(w io.Writer, idx *skeleton.Index, labels names.Table) error {
	nodes := buildNodes(idx, labels)
	width, height := extent(nodes)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	// Edges first so circles cover the joins.
	for _, n := range nodes {
		if n.parent < 0 {
			continue
		}
		p := nodes[n.parent]
		canvas.Line(p.px(), p.py(), n.px(), n.py(), edgeStyle)
	}
	for i, n := range nodes {
		style := emptyStyle
		if n.count > 0 {
			style = loadedStyle
		}
		canvas.Circle(n.px(), n.py(), radius, style)
		canvas.Text(n.px(), n.py()+radius+16, n.caption(i), textStyle)
	}

	canvas.End()
	return nil
}
