package signature

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"dispatchdesk/internal/pkg/errs"
	"dispatchdesk/internal/pkg/guard"

	"golang.org/x/image/vector"
)

const (
	// DefaultWidth and DefaultHeight are the canvas size used when none is configured.
	DefaultWidth  = 400
	DefaultHeight = 150

	// MaxSide bounds either canvas side; the blank scan is linear in the area.
	MaxSide = 2048

	// BlankThreshold is the per-channel value at or above which a pixel counts as paper.
	BlankThreshold = 250

	strokeWidth = 2.0
	capSides    = 16
)

// ErrPadIsNotConstructed is returned when a zero Pad is used.
var ErrPadIsNotConstructed = errors.New("Pad must be created via NewPad constructor")

var ink = image.NewUniform(color.Black)

// Point is a canvas-relative pointer position in pixels.
type Point struct {
	X float64
	Y float64
}

// Pad is one freehand signature canvas and its pointer state machine.
//
// Every pointer move while Drawing rasterizes one 2px round-capped segment
// straight into the canvas; nothing is batched. Capture reports a canvas whose
// pixels are all near-white as blank, so the PDF export can leave the box empty.
type Pad struct {
	canvas *image.RGBA
	status Status
	last   Point
	guard  guard.ConstructorGuard
}

// NewPad creates a blank white canvas of the given size.
func NewPad(width, height int) (*Pad, error) {
	if err := errors.Join(
		validateSide("width", width),
		validateSide("height", height),
	); err != nil {
		return nil, err
	}

	p := &Pad{
		canvas: image.NewRGBA(image.Rect(0, 0, width, height)),
		status: Idle,
		guard:  guard.NewConstructorGuard(),
	}
	p.Clear()
	return p, nil
}

// Validate ensures the pad was created through NewPad.
func (p *Pad) Validate() error {
	if p == nil {
		return ErrPadIsNotConstructed
	}
	return p.guard.Validate(ErrPadIsNotConstructed)
}

// Status returns the current pointer state.
func (p *Pad) Status() Status {
	return p.status
}

// Bounds returns the canvas rectangle.
func (p *Pad) Bounds() image.Rectangle {
	return p.canvas.Bounds()
}

// PointerDown starts a path at pt.
func (p *Pad) PointerDown(pt Point) error {
	next, err := p.status.PointerDown()
	if err != nil {
		return err
	}
	p.status = next
	p.last = p.clamp(pt)
	return nil
}

// PointerMove draws a segment from the previous point to pt when Drawing and
// reports whether anything was drawn. Moves while Idle are ignored.
func (p *Pad) PointerMove(pt Point) bool {
	if !p.status.CanDraw() {
		return false
	}
	pt = p.clamp(pt)
	p.strokeSegment(p.last, pt)
	p.last = pt
	return true
}

// PointerUp ends the current path. It is accepted in any state.
func (p *Pad) PointerUp() error {
	next, err := p.status.PointerUp()
	if err != nil {
		return err
	}
	p.status = next
	return nil
}

// Clear repaints the canvas white. The pointer state is left as it is.
func (p *Pad) Clear() {
	draw.Draw(p.canvas, p.canvas.Bounds(), image.White, image.Point{}, draw.Src)
}

// IsBlank scans every pixel and reports whether all of them are near-white.
func (p *Pad) IsBlank() bool {
	pix := p.canvas.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i] < BlankThreshold || pix[i+1] < BlankThreshold || pix[i+2] < BlankThreshold {
			return false
		}
	}
	return true
}

// Capture returns a copy of the canvas, or nil when the pad is blank.
func (p *Pad) Capture() *image.RGBA {
	if p.IsBlank() {
		return nil
	}
	out := image.NewRGBA(p.canvas.Bounds())
	copy(out.Pix, p.canvas.Pix)
	return out
}

func (p *Pad) strokeSegment(a, b Point) {
	const half = strokeWidth / 2

	dx, dy := b.X-a.X, b.Y-a.Y
	if length := math.Hypot(dx, dy); length > 0 {
		nx, ny := -dy/length*half, dx/length*half
		p.fill([]Point{
			{X: a.X + nx, Y: a.Y + ny},
			{X: b.X + nx, Y: b.Y + ny},
			{X: b.X - nx, Y: b.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		})
	}

	p.roundCap(a, half)
	p.roundCap(b, half)
}

// roundCap fills a small polygonal disc at c.
func (p *Pad) roundCap(c Point, radius float64) {
	disc := make([]Point, capSides)
	for i := range disc {
		angle := 2 * math.Pi * float64(i) / capSides
		disc[i] = Point{X: c.X + radius*math.Cos(angle), Y: c.Y + radius*math.Sin(angle)}
	}
	p.fill(disc)
}

// fill rasterizes one closed polygon in ink. Every shape gets its own
// rasterizer so overlapping windings never cancel out, and every vertex is
// clamped to the canvas.
func (p *Pad) fill(polygon []Point) {
	b := p.canvas.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	for i, v := range polygon {
		v = p.clamp(v)
		if i == 0 {
			z.MoveTo(float32(v.X), float32(v.Y))
			continue
		}
		z.LineTo(float32(v.X), float32(v.Y))
	}
	z.ClosePath()
	z.Draw(p.canvas, b, ink, image.Point{})
}

func (p *Pad) clamp(pt Point) Point {
	b := p.canvas.Bounds()
	return Point{
		X: math.Min(math.Max(pt.X, 0), float64(b.Dx())),
		Y: math.Min(math.Max(pt.Y, 0), float64(b.Dy())),
	}
}

func validateSide(name string, v int) error {
	if v < 1 || v > MaxSide {
		return errs.NewValueIsOutOfRangeError(name, v, 1, MaxSide)
	}
	return nil
}
