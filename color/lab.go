package color

import (
	"fmt"
	"strings"

	"github.com/jkl1337/go-chromath"
)

// Lab transformers for every tabulated white, built once. chromath uses the
// CIE epsilon (216/24389) and kappa (24389/27) in both directions.
var lab2Xyz = func() map[Illuminant]*chromath.LabTransformer {
	m := make(map[Illuminant]*chromath.LabTransformer)
	for ill, w := range whites[Observer2] {
		m[ill] = chromath.NewLabTransformer(&chromath.IlluminantRef{
			XYZ:      chromath.XYZ{w.X, w.Y, w.Z},
			Observer: chromath.CIE2,
		})
	}
	return m
}()

// LabFormat selects the scaling of a Lab projection.
type LabFormat int

const (
	// LabCIE is raw CIE units: L in [0, 100], a and b roughly in [-128, 128].
	LabCIE LabFormat = iota + 1
	// LabNormalized maps L to L/100 and a, b to (v+128)/256.
	LabNormalized
)

func (f LabFormat) String() string {
	switch f {
	case LabCIE:
		return "cie"
	case LabNormalized:
		return "normalized"
	}
	return fmt.Sprintf("LabFormat(%d)", int(f))
}

// ParseLabFormat accepts "cie" or "normalized".
func ParseLabFormat(s string) (LabFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cie", "raw", "tuple_upscale":
		return LabCIE, nil
	case "normalized", "normalised", "tuple":
		return LabNormalized, nil
	}
	return 0, fmt.Errorf("%w: lab format %q not in {cie, normalized}", ErrInvalidInput, s)
}

// FromLab creates a Color from CIE L*a*b* values in raw CIE units.
func FromLab(l, a, b float64, ill Illuminant) (Color, error) {
	ill = orDefault(ill)
	tr, e := labTransformer(Observer2, ill)
	if e != nil {
		return Color{}, e
	}
	if e := within("L", l, 0, 100); e != nil {
		return Color{}, e
	}
	if e := within("a", a, -128, 128); e != nil {
		return Color{}, e
	}
	if e := within("b", b, -128, 128); e != nil {
		return Color{}, e
	}

	xyz := tr.Convert(chromath.Lab{l, a, b})
	return FromXYZ(xyz.X(), xyz.Y(), xyz.Z(), ill)
}

// Lab projects c to L*a*b* under its own illuminant.
func (c Color) Lab(f LabFormat) (Lab, error) {
	return c.LabUnder(c.illuminant, f)
}

// LabUnder projects c to L*a*b* relative to the reference white of ill. No
// chromatic adaptation is applied; the XYZ values are simply normalised by
// the other white.
func (c Color) LabUnder(ill Illuminant, f LabFormat) (Lab, error) {
	if f != LabCIE && f != LabNormalized {
		return Lab{}, fmt.Errorf("%w: lab format %v", ErrInvalidInput, f)
	}
	if e := c.valid(); e != nil {
		return Lab{}, e
	}
	tr, e := labTransformer(c.observer, orDefault(ill))
	if e != nil {
		return Lab{}, e
	}

	l := tr.Invert(chromath.XYZ{c.xyz.X, c.xyz.Y, c.xyz.Z})
	lab := Lab{l.L(), l.A(), l.B()}

	if f == LabNormalized {
		lab = Lab{lab.L / 100, (lab.A + 128) / 256, (lab.B + 128) / 256}
	}
	return lab, nil
}

func labTransformer(obs Observer, ill Illuminant) (*chromath.LabTransformer, error) {
	if _, e := white(obs, ill); e != nil {
		return nil, e
	}
	return lab2Xyz[ill], nil
}
