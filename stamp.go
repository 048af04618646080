package ink

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// antialiasWidth controls the smoothstep transition width in pixels at
// the disk stamp's edge. 0.7 produces smooth anti-aliasing at standard
// DPI.
const antialiasWidth = 0.7

// Stamp is the brush tip shape: an alpha coverage mask. The mask is
// drawn centered on the stamp origin; the engines never look inside
// it.
type Stamp interface {
	// Mask returns the stamp's coverage mask.
	Mask() *image.Alpha
}

type maskStamp struct {
	mask *image.Alpha
}

func (s maskStamp) Mask() *image.Alpha {
	return s.mask
}

// DiskStamp returns a round, anti-aliased stamp of the given diameter
// in pixels, built from a signed-distance-field coverage function.
func DiskStamp(size int) Stamp {
	if size < 1 {
		size = 1
	}
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	radius := c - antialiasWidth
	if radius < 0.5 {
		radius = 0.5
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cov := diskCoverage(float64(x)+0.5, float64(y)+0.5, c, c, radius)
			mask.SetAlpha(x, y, newAlpha(cov))
		}
	}
	return maskStamp{mask: mask}
}

// TextureStamp converts an arbitrary image into a stamp mask of the
// given size. The image is resized and converted to grayscale; darker
// texels become more opaque, following the usual brush-tip convention
// where black marks full coverage.
func TextureStamp(img image.Image, size int) Stamp {
	if size < 1 {
		size = 1
	}
	gray := imaging.Grayscale(imaging.Resize(img, size, size, imaging.Lanczos))
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := gray.PixOffset(x, y)
			// Grayscale NRGBA has R == G == B; modulate coverage by
			// the texel's own alpha.
			lum := uint32(gray.Pix[i])
			a := uint32(gray.Pix[i+3])
			mask.SetAlpha(x, y, newAlphaByte(uint8((255 - lum) * a / 255)))
		}
	}
	return maskStamp{mask: mask}
}

func newAlpha(coverage float64) color.Alpha {
	return color.Alpha{A: uint8(clamp255(coverage * 255))}
}

func newAlphaByte(a uint8) color.Alpha {
	return color.Alpha{A: a}
}

// diskCoverage computes anti-aliased coverage for a filled circle
// using a signed distance field approach. Returns coverage in [0, 1]
// where 1 means fully inside.
func diskCoverage(px, py, cx, cy, radius float64) float64 {
	sdf := math.Hypot(px-cx, py-cy) - radius
	return smoothstepCoverage(sdf)
}

// smoothstepCoverage converts a signed distance to an anti-aliased
// coverage value using a Hermite smoothstep function.
//
//	sdf < -antialiasWidth => 1.0 (fully inside)
//	sdf > +antialiasWidth => 0.0 (fully outside)
//	otherwise             => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= antialiasWidth {
		return 0
	}
	if sdf <= -antialiasWidth {
		return 1
	}
	t := (sdf + antialiasWidth) / (2 * antialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}
