package diagram

import (
	"fmt"
	"io"

	"git.sr.ht/~sbinet/gg"
	"github.com/HugoSmits86/nativewebp"

	"skm-editor/internal/names"
	"skm-editor/internal/skeleton"
)

// Drawn at this factor above the target size, then downsampled.
const supersample = 2

// RenderWebP draws the joint hierarchy to a raster canvas and encodes it
// as WebP. Drawing happens supersampled and is downsampled with
// alpha-aware filtering for clean edges.
func RenderWebP(w io.Writer, idx *skeleton.Index, labels names.Table) error {
	nodes := buildNodes(idx, labels)
	width, height := extent(nodes)

	s := float64(supersample)
	dc := gg.NewContext(width*supersample, height*supersample)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetLineWidth(2 * s)
	dc.SetRGB255(0x8a, 0x8a, 0x8a)
	for _, n := range nodes {
		if n.parent < 0 {
			continue
		}
		p := nodes[n.parent]
		dc.DrawLine(float64(p.px())*s, float64(p.py())*s, float64(n.px())*s, float64(n.py())*s)
		dc.Stroke()
	}

	for i, n := range nodes {
		x := float64(n.px()) * s
		y := float64(n.py()) * s
		if n.count > 0 {
			dc.SetRGB255(0x7d, 0xb8, 0xe8)
		} else {
			dc.SetRGB255(0xe8, 0xe8, 0xe8)
		}
		dc.DrawCircle(x, y, radius*s)
		dc.FillPreserve()
		if n.count > 0 {
			dc.SetRGB255(0x2c, 0x5d, 0x8a)
		} else {
			dc.SetRGB255(0x55, 0x55, 0x55)
		}
		dc.Stroke()

		dc.SetRGB255(0x22, 0x22, 0x22)
		dc.DrawStringAnchored(n.caption(i), x, y+(radius+16)*s, 0.5, 0.3)
	}

	img := downsample(dc.Image(), width, height)
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("diagram: webp encode: %w", err)
	}
	return nil
}
