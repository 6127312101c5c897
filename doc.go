// Package pixsurf provides software pixel surfaces with blitting, clipped
// drawing primitives and geometric transforms.
//
// # Overview
//
// A Surface is a rectangle of packed pixels in one of several formats:
// 8-bit indexed, 15/16-bit packed RGB, 24-bit RGB and 32-bit RGB with or
// without alpha. Colors are always exchanged as 8-bit RGBA values and
// converted with the surface's PixelFormat.
//
// # Quick Start
//
//	s, err := pixsurf.NewSurface(320, 240)
//	if err != nil {
//	    return err
//	}
//	s.Fill(pixsurf.ColorBlack, nil, pixsurf.BlendNone)
//	s.DrawLine(pixsurf.NewColor(255, 0, 0, 255), pixsurf.Pt(10, 10), pixsurf.Pt(300, 200), 1)
//
//	sprite, _ := pixsurf.NewSurface(16, 16, pixsurf.WithSrcAlpha())
//	s.Blit(sprite, pixsurf.Pt(40, 40), nil, pixsurf.BlendNone)
//
//	big, _ := pixsurf.Scale2x(sprite)
//
// # Clipping
//
// Every surface has a clip rectangle, initially the whole surface. Drawing,
// filling and blitting never touch pixels outside it. PushClip and PopClip
// narrow and restore it.
//
// # Locking
//
// Lock and Unlock maintain a reference count that callers use to bracket
// direct access through Pixels. Subsurfaces share the lock of their root
// surface. Operations on a surface are serialised internally, so separate
// goroutines may draw on the same surface, although the order of their
// effects is unspecified.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, positive angles rotate counter-clockwise
package pixsurf
