package color

import (
	"fmt"
	"strings"
)

// Illuminant names a reference white.
type Illuminant string

const (
	A   Illuminant = "A"
	C   Illuminant = "C"
	D50 Illuminant = "D50"
	D55 Illuminant = "D55"
	D65 Illuminant = "D65"
	D75 Illuminant = "D75"
	E   Illuminant = "E"

	DefaultIlluminant = D65
)

// Observer names a standard observer. Only the 2 degree observer is tabulated.
type Observer string

const Observer2 Observer = "2"

type matrix [3][3]float64

func (m *matrix) mul(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

var (
	// reference whites for the 2 degree observer, scaled so Y = 1
	whites = map[Observer]map[Illuminant]XYZ{
		Observer2: {
			A:   {1.09850, 1, 0.35585},
			C:   {0.98074, 1, 1.18232},
			D50: {0.964212, 1, 0.825188},
			D55: {0.95682, 1, 0.92149},
			D65: {0.950489, 1, 1.088840},
			D75: {0.94972, 1, 1.22638},
			E:   {1, 1, 1},
		},
	}

	srgb2Xyz = map[Illuminant]*matrix{
		D50: {
			{0.4360747, 0.3850649, 0.1430804},
			{0.2225045, 0.7168786, 0.0606169},
			{0.0139322, 0.0971045, 0.7141733},
		},
		D65: {
			{0.4124564, 0.3575761, 0.1804375},
			{0.2126729, 0.7151522, 0.0721750},
			{0.0193339, 0.1191920, 0.9503041},
		},
	}

	// precomputed inverses of srgb2Xyz
	xyz2Srgb = map[Illuminant]*matrix{
		D50: {
			{3.1338561, -1.6168667, -0.4906146},
			{-0.9787684, 1.9161415, 0.0334540},
			{0.0719453, -0.2289914, 1.4052427},
		},
		D65: {
			{3.2404542, -1.5371385, -0.4985314},
			{-0.9692660, 1.8760108, 0.0415560},
			{0.0556434, -0.2040259, 1.0572252},
		},
	}
)

// Illuminants returns every illuminant with a reference white, in table order.
func Illuminants() []Illuminant {
	return []Illuminant{A, C, D50, D55, D65, D75, E}
}

// ParseIlluminant maps a case-insensitive tag such as "d65" to an Illuminant.
func ParseIlluminant(s string) (Illuminant, error) {
	ill := Illuminant(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := whites[Observer2][ill]; !ok {
		return "", fmt.Errorf("%w: illuminant %q not in %v", ErrInvalidInput, s, Illuminants())
	}
	return ill, nil
}

// SupportsSRGB reports whether ill has an sRGB matrix pair.
func (ill Illuminant) SupportsSRGB() bool {
	_, ok := srgb2Xyz[ill]
	return ok
}

// White returns the reference white of ill for the 2 degree observer.
func (ill Illuminant) White() (XYZ, error) {
	return white(Observer2, ill)
}

func white(obs Observer, ill Illuminant) (XYZ, error) {
	w, ok := whites[obs][ill]
	if !ok {
		return XYZ{}, fmt.Errorf("%w: illuminant %q / observer %q has no reference white", ErrInvalidInput, ill, obs)
	}
	return w, nil
}

// orDefault maps the zero Illuminant to DefaultIlluminant.
func orDefault(ill Illuminant) Illuminant {
	if ill == "" {
		return DefaultIlluminant
	}
	return ill
}
