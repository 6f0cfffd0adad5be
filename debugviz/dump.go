// Package debugviz rasterizes layer polygons and contact cells to PNG,
// for visually inspecting what the driver produced. It has no part in
// the generator itself; nothing in the interlock package imports it.
package debugviz

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/gekko3d/interlock/polygon"
)

// Scale maps world (micrometer-scale) coordinates down to pixels.
type Scale struct {
	OriginX, OriginY int64
	UnitsPerPixel    int64
}

func (s Scale) px(x, y int64) (float32, float32) {
	return float32(x-s.OriginX) / float32(s.UnitsPerPixel), float32(y-s.OriginY) / float32(s.UnitsPerPixel)
}

// DumpLayer rasterizes one layer's polygon set, filled solid, to w as a
// PNG of the given pixel size, using golang.org/x/image/vector's
// scan-converting rasterizer to fill each closed polygon path.
func DumpLayer(w io.Writer, polys polygon.Polygons, s Scale, width, height int, fill color.Color) error {
	rast := vector.NewRasterizer(width, height)
	for _, poly := range polys {
		if len(poly) < 2 {
			continue
		}
		x0, y0 := s.px(poly[0].X, poly[0].Y)
		rast.MoveTo(x0, y0)
		for _, p := range poly[1:] {
			x, y := s.px(p.X, p.Y)
			rast.LineTo(x, y)
		}
		rast.ClosePath()
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	rast.Draw(mask, mask.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			img.Set(x, y, fill)
		}
	}

	return png.Encode(w, img)
}

// DumpCells rasterizes a set of grid cells (already converted to pixel
// rectangles by the caller) as filled squares, for visualizing a
// CellSet's contact or shell membership.
func DumpCells(w io.Writer, cells [][2]int, cellPx int, width, height int, fill color.Color) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, c := range cells {
		x0, y0 := c[0]*cellPx, c[1]*cellPx
		for y := y0; y < y0+cellPx && y < height; y++ {
			if y < 0 {
				continue
			}
			for x := x0; x < x0+cellPx && x < width; x++ {
				if x < 0 {
					continue
				}
				img.Set(x, y, fill)
			}
		}
	}
	return png.Encode(w, img)
}
