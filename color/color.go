// Package color holds a single colour as CIE XYZ tristimulus values tagged
// with a reference white, and projects it to L*a*b* and sRGB.
//
// Values are built only through FromXYZ, FromLab and FromSRGB and never
// change afterwards, so a Color is safe to share between goroutines.
package color

import (
	"fmt"
	"math"
)

// XYZ is a tristimulus triple, scaled so that Y = 1 for the reference white.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE L*a*b* triple. Its scaling depends on the LabFormat that
// produced it.
type Lab struct {
	L, A, B float64
}

// RGB is a gamma-encoded sRGB triple, nominally in [0, 1].
type RGB struct {
	R, G, B float64
}

// Color is an immutable XYZ colour under a reference illuminant.
type Color struct {
	xyz        XYZ
	illuminant Illuminant
	observer   Observer
}

// FromXYZ creates a Color from tristimulus values. It is the canonical
// constructor; the others reduce to it. The zero Illuminant means
// DefaultIlluminant.
func FromXYZ(x, y, z float64, ill Illuminant) (Color, error) {
	ill = orDefault(ill)
	for _, v := range []struct {
		name string
		v    float64
	}{{"X", x}, {"Y", y}, {"Z", z}} {
		if e := finite(v.name, v.v); e != nil {
			return Color{}, e
		}
	}
	if _, e := white(Observer2, ill); e != nil {
		return Color{}, e
	}

	return Color{XYZ{x, y, z}, ill, Observer2}, nil
}

// MustXYZ is like FromXYZ but panics on error. Meant for literals.
func MustXYZ(x, y, z float64, ill Illuminant) Color {
	c, e := FromXYZ(x, y, z, ill)
	if e != nil {
		panic(e)
	}
	return c
}

// XYZ returns the tristimulus values.
func (c Color) XYZ() XYZ { return c.xyz }

// Illuminant returns the reference white the colour was built under.
func (c Color) Illuminant() Illuminant { return c.illuminant }

// Observer returns the standard observer, always Observer2.
func (c Color) Observer() Observer { return c.observer }

func (c Color) String() string {
	return fmt.Sprintf("Color(X=%g, Y=%g, Z=%g, %s/%s°)", c.xyz.X, c.xyz.Y, c.xyz.Z, c.illuminant, c.observer)
}

// valid rejects the zero Color and anything not built by a constructor.
func (c Color) valid() error {
	if c.observer == "" {
		return fmt.Errorf("%w: uninitialised color", ErrInvalidInput)
	}
	_, e := white(c.observer, c.illuminant)
	return e
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is not finite: %v", ErrInvalidInput, name, v)
	}
	return nil
}

// within fails if v is not finite or lies outside [lo, hi].
func within(name string, v, lo, hi float64) error {
	if e := finite(name, v); e != nil {
		return e
	}
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s out of range [%g, %g]: %g", ErrInvalidInput, name, lo, hi, v)
	}
	return nil
}
