// Package ink implements a brush stroke rendering pipeline for Go.
//
// # Overview
//
// ink converts a stream of raw touch samples into a continuous painted
// stroke. The pipeline has three stages, composed by the caller:
//
//   - A stroke Smoother (linear or quadratic-Bezier) turns discrete
//     touch points into an evenly spaced sequence of stamp positions
//     plus a direction angle.
//   - A drawing Engine (LiveEngine or CachedEngine) positions, rotates,
//     scales, colors, and blends one brush stamp per emitted position,
//     tracking per-stroke state such as taper progress, speed-derived
//     size/opacity variance, pressure smoothing, and hue oscillation.
//   - A Surface receives the composited stamp draws. SoftwareSurface is
//     a reference CPU implementation on a Pixmap; callers may supply
//     their own Surface to target other rasterizers.
//
// # Quick Start
//
//	import "github.com/gogpu/ink"
//
//	pm := ink.NewPixmap(512, 512)
//	brush := ink.DefaultBrush().WithSize(16).WithColor(ink.RGB(0.1, 0.3, 0.9))
//	surface := ink.NewSoftwareSurface(pm, ink.DiskStamp(brush.Size))
//	painter := ink.NewPainter(ink.NewLiveEngine(nil), surface, &brush)
//
//	painter.BeginStroke(ink.TouchSample{Pos: ink.Pt(50, 400), Pressure: 1})
//	painter.ContinueStroke(ink.TouchSample{Pos: ink.Pt(250, 100), Pressure: 1})
//	if err := painter.EndStroke(ink.TouchSample{Pos: ink.Pt(460, 380), Pressure: 1}); err != nil {
//	    // handle draw error
//	}
//	pm.SavePNG("stroke.png")
//
// # Determinism
//
// LiveEngine draws its jitter from an injected Rand source, so a seeded
// source reproduces a stroke exactly. CachedEngine goes further: it has
// no randomness at draw time at all and renders pixel-identical output
// for identical cached inputs, which is what RenderPreview uses to
// produce brush preview thumbnails.
//
// # Concurrency
//
// The pipeline is single-threaded and synchronous. One engine+smoother
// pair serves one stroke at a time; concurrent strokes need their own
// pair each.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// Angles on the pipeline surface contract are in degrees, normalized
// to [0,360) where noted.
package ink

// Version is the current version of the library.
const Version = "0.1.0"
