package ink

import (
	"errors"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ink/internal/blend"
)

// ErrNoStamp reports a DrawStamp call on a surface with no stamp shape
// configured.
var ErrNoStamp = errors.New("ink: software surface has no stamp shape")

// SoftwareSurface is a CPU reference implementation of the Surface
// contract. It composites stamps into a Pixmap: the stamp mask is
// tinted with the current color, pushed through the current affine
// transform with a bilinear resampler, and blended per pixel with the
// current blend mode.
type SoftwareSurface struct {
	pixmap *Pixmap
	stamp  Stamp
	matrix Matrix
	stack  []Matrix
	color  RGBA
	blend  BlendMode
}

// NewSoftwareSurface creates a surface over pm drawing the given stamp
// shape. The initial color is black, the blend mode source-over, the
// transform identity.
func NewSoftwareSurface(pm *Pixmap, stamp Stamp) *SoftwareSurface {
	return &SoftwareSurface{
		pixmap: pm,
		stamp:  stamp,
		matrix: Identity(),
		color:  Black,
		blend:  BlendSourceOver,
	}
}

// SetStamp replaces the stamp shape.
func (s *SoftwareSurface) SetStamp(stamp Stamp) {
	s.stamp = stamp
}

// Pixmap returns the underlying pixel buffer.
func (s *SoftwareSurface) Pixmap() *Pixmap {
	return s.pixmap
}

// Push implements Surface: saves the current transform.
func (s *SoftwareSurface) Push() {
	s.stack = append(s.stack, s.matrix)
}

// Pop implements Surface: restores the last saved transform.
// Unbalanced pops are ignored.
func (s *SoftwareSurface) Pop() {
	if len(s.stack) == 0 {
		return
	}
	s.matrix = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate implements Surface.
func (s *SoftwareSurface) Translate(dx, dy float64) {
	s.matrix = s.matrix.Multiply(Translation(dx, dy))
}

// Rotate implements Surface. deg is in degrees.
func (s *SoftwareSurface) Rotate(deg float64) {
	s.matrix = s.matrix.Multiply(Rotation(deg * math.Pi / 180))
}

// Scale implements Surface.
func (s *SoftwareSurface) Scale(sx, sy float64) {
	s.matrix = s.matrix.Multiply(Scaling(sx, sy))
}

// SetBlend implements Surface.
func (s *SoftwareSurface) SetBlend(mode BlendMode) {
	s.blend = mode
}

// Color implements Surface.
func (s *SoftwareSurface) Color() RGBA {
	return s.color
}

// SetColor implements Surface.
func (s *SoftwareSurface) SetColor(c RGBA) {
	s.color = c
}

// DrawStamp implements Surface. The stamp mask is centered on the
// current origin, so the full local-to-device transform prepends a
// shift by half the mask size.
func (s *SoftwareSurface) DrawStamp(opacity uint8) error {
	if s.stamp == nil {
		return ErrNoStamp
	}
	mask := s.stamp.Mask()
	mb := mask.Bounds()

	m := s.matrix.Multiply(Translation(-float64(mb.Dx())/2, -float64(mb.Dy())/2))

	dstRect := transformedBounds(m, mb).Intersect(s.pixmap.Bounds())
	if dstRect.Empty() {
		Logger().Warn("ink: stamp clipped entirely off the surface")
		return nil
	}

	// Resample the tinted stamp through the affine transform into a
	// transparent staging buffer, then blend the touched region into
	// the pixmap.
	staging := image.NewRGBA(dstRect)
	xdraw.ApproxBiLinear.Transform(staging, m.Aff3(), s.tinted(mask, opacity), mb, xdraw.Src, nil)
	s.composite(staging, dstRect)
	return nil
}

// tinted builds the premultiplied source image: the current color
// modulated by the mask coverage, the stamp opacity, and the color's
// own alpha.
func (s *SoftwareSurface) tinted(mask *image.Alpha, opacity uint8) *image.RGBA {
	b := mask.Bounds()
	src := image.NewRGBA(b)
	cr := clamp255(s.color.R * 255)
	cg := clamp255(s.color.G * 255)
	cb := clamp255(s.color.B * 255)
	ca := clamp01(s.color.A)
	op := float64(opacity) / 255

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cov := float64(mask.AlphaAt(x, y).A) / 255
			a := cov * op * ca
			if a == 0 {
				continue
			}
			i := src.PixOffset(x, y)
			src.Pix[i+0] = uint8(cr * a)
			src.Pix[i+1] = uint8(cg * a)
			src.Pix[i+2] = uint8(cb * a)
			src.Pix[i+3] = uint8(a * 255)
		}
	}
	return src
}

// composite blends the staging buffer into the pixmap over rect with
// the surface's current blend mode.
func (s *SoftwareSurface) composite(staging *image.RGBA, rect image.Rectangle) {
	f := blendFunc(s.blend)
	data := s.pixmap.Data()
	width := s.pixmap.Width()

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			si := staging.PixOffset(x, y)
			sa := staging.Pix[si+3]
			if sa == 0 {
				// All supported modes leave the destination unchanged
				// under zero source coverage.
				continue
			}
			di := (y*width + x) * 4
			data[di+0], data[di+1], data[di+2], data[di+3] = f(
				staging.Pix[si+0], staging.Pix[si+1], staging.Pix[si+2], sa,
				data[di+0], data[di+1], data[di+2], data[di+3],
			)
		}
	}
}

// blendFunc maps the public blend mode to its compositing operator.
// Unknown modes fall back to source-over.
func blendFunc(mode BlendMode) blend.Func {
	switch mode {
	case BlendDestinationOut:
		return blend.DestinationOut
	case BlendMultiply:
		return blend.Multiply
	case BlendScreen:
		return blend.Screen
	default:
		return blend.SourceOver
	}
}

// transformedBounds returns the integer bounding box of rect's corners
// under m.
func transformedBounds(m Matrix, rect image.Rectangle) image.Rectangle {
	corners := [4]Point{
		{X: float64(rect.Min.X), Y: float64(rect.Min.Y)},
		{X: float64(rect.Max.X), Y: float64(rect.Min.Y)},
		{X: float64(rect.Min.X), Y: float64(rect.Max.Y)},
		{X: float64(rect.Max.X), Y: float64(rect.Max.Y)},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		p := m.TransformPoint(c)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}
