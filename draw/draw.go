// Package draw renders a tour of an instance as a PNG image.
//
// Coordinates are normalised into the unit square with a small margin, then
// scaled to the canvas. Normalisation works on copies and never feeds back
// into the instance or the tour length.
package draw

import (
	"image"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/tsp"
)

const (
	// Margin is the fraction of the canvas left blank on every side.
	Margin = 2.5e-2

	lineWidth = 2e-3
	pointSize = 1e-2

	// DefaultSize is the default canvas width and height in pixels.
	DefaultSize = 2000
)

// Options controls rendering.
type Options struct {
	Width, Height int
	// NoZero skips the legs to and from the origin.
	NoZero bool
}

// DefaultOptions returns a 2000×2000 canvas with origin legs.
func DefaultOptions() Options {
	return Options{Width: DefaultSize, Height: DefaultSize}
}

// Normalize maps points into [Margin, 1-Margin]² preserving their relative
// order on each axis. An axis with no spread maps to 0.5.
func Normalize(points []geom.Node) []geom.Node {
	out := make([]geom.Node, len(points))
	if len(points) == 0 {
		return out
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
	}
	for i, p := range points {
		out[i] = geom.Node{
			X: scale(p.X, lo.X, hi.X),
			Y: scale(p.Y, lo.Y, hi.Y),
		}
	}

	return out
}

func scale(v, lo, hi float64) float64 {
	if hi-lo <= 0 {
		return 0.5
	}

	return Margin + (1-2*Margin)*(v-lo)/(hi-lo)
}

// Render draws t over in and returns the image.
func Render(in *tsp.Instance, t tsp.Tour, opts Options) (image.Image, error) {
	dc, err := render(in, t, opts)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// Encode renders t and writes it to w as PNG.
func Encode(w io.Writer, in *tsp.Instance, t tsp.Tour, opts Options) error {
	dc, err := render(in, t, opts)
	if err != nil {
		return err
	}

	return errors.WithStack(dc.EncodePNG(w))
}

// SaveTour renders t into the PNG file at path.
func SaveTour(path string, in *tsp.Instance, t tsp.Tour, opts Options) error {
	dc, err := render(in, t, opts)
	if err != nil {
		return err
	}

	return errors.WithMessagef(dc.SavePNG(path), "save %s", path)
}

func render(in *tsp.Instance, t tsp.Tour, opts Options) (*gg.Context, error) {
	if in == nil {
		return nil, tsp.ErrNilInstance
	}
	if err := t.Validate(in.Dimension()); err != nil {
		return nil, err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("draw: invalid canvas %dx%d", opts.Width, opts.Height)
	}

	// The origin joins the bounding box when its legs are drawn.
	pts := in.Nodes()
	if !opts.NoZero {
		pts = append(pts, geom.Origin)
	}
	pts = Normalize(pts)

	var (
		w, h   = float64(opts.Width), float64(opts.Height)
		sizing = math.Min(w, h)
		n      = in.Dimension()
		at     = func(i int) (float64, float64) { return pts[i].X * w, pts[i].Y * h }
	)
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetLineWidth(lineWidth * sizing)

	if n > 0 && !opts.NoZero {
		ox, oy := at(n)
		fx, fy := at(t.Nodes[0])
		lx, ly := at(t.Nodes[n-1])
		dc.SetRGB(0, 0, 0)
		dc.DrawLine(ox, oy, fx, fy)
		dc.DrawLine(lx, ly, ox, oy)
		dc.Stroke()
	}

	step := 360.0 / math.Max(float64(n), 1)
	for i := 0; i+1 < n; i++ {
		x1, y1 := at(t.Nodes[i])
		x2, y2 := at(t.Nodes[i+1])
		dc.SetColor(colorful.Hsv(float64(i)*step, 0.9, 0.7))
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	for i := 0; i < n; i++ {
		x, y := at(i)
		dc.DrawCircle(x, y, pointSize*sizing)
		dc.SetRGB(1, 1, 1)
		dc.FillPreserve()
		dc.SetRGB(0.1, 0.2, 1)
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(strconv.Itoa(i+1), x, y, 0.5, 0.5)
	}

	return dc, nil
}
