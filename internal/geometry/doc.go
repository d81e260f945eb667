// Package geometry lays out the marks of the ruler picker.
//
// [Layout] is a pure function of [Params]: the same inputs always produce the
// same marks in the same order. It reproduces the scrolling ruler:
//
//   - marks wrap around the strip so the ruler appears endless
//   - opacity falls off away from the centre (the spotlight) to a 0.2 floor
//   - marks beyond the range limits are hidden near the ends of the range
//   - mark heights taper away from the centre, always even and at least 20
//
// Renderers paint the returned rectangles with their own primitives.
package geometry
