package color

import (
	"fmt"
	"math"
)

// sRGB projections are rounded to this many decimals to hide the noise left
// by the 7-digit inverse matrices.
const srgbDecimals = 6

// FromSRGB creates a Color from gamma-encoded sRGB channels in [0, 1].
func FromSRGB(r, g, b float64, ill Illuminant) (Color, error) {
	ill = orDefault(ill)
	if _, e := white(Observer2, ill); e != nil {
		return Color{}, e
	}
	m, ok := srgb2Xyz[ill]
	if !ok {
		return Color{}, fmt.Errorf("%w: %w: no sRGB matrix for %s", ErrInvalidInput, ErrUnsupportedIlluminant, ill)
	}
	if e := within("R", r, 0, 1); e != nil {
		return Color{}, e
	}
	if e := within("G", g, 0, 1); e != nil {
		return Color{}, e
	}
	if e := within("B", b, 0, 1); e != nil {
		return Color{}, e
	}

	v := m.mul([3]float64{expand(r), expand(g), expand(b)})
	return FromXYZ(v[0], v[1], v[2], ill)
}

// SRGB projects c to sRGB using its own illuminant's matrix.
func (c Color) SRGB() (RGB, error) {
	return c.SRGBUnder(c.illuminant)
}

// SRGBUnder projects c to sRGB with the inverse matrix registered for ill.
// Channels are not clipped, so out-of-gamut colours come back outside [0, 1].
func (c Color) SRGBUnder(ill Illuminant) (RGB, error) {
	if e := c.valid(); e != nil {
		return RGB{}, e
	}
	ill = orDefault(ill)
	if _, e := white(c.observer, ill); e != nil {
		return RGB{}, e
	}
	m, ok := xyz2Srgb[ill]
	if !ok {
		return RGB{}, fmt.Errorf("%w: no inverse sRGB matrix for %s", ErrUnsupportedIlluminant, ill)
	}

	v := m.mul([3]float64{c.xyz.X, c.xyz.Y, c.xyz.Z})
	return RGB{
		round(compress(v[0]), srgbDecimals),
		round(compress(v[1]), srgbDecimals),
		round(compress(v[2]), srgbDecimals),
	}, nil
}

// Hex returns the sRGB projection as #rrggbb, clamping each channel to [0, 1].
func (c Color) Hex() (string, error) {
	rgb, e := c.SRGB()
	if e != nil {
		return "", e
	}
	return fmt.Sprintf("#%02x%02x%02x", to8(rgb.R), to8(rgb.G), to8(rgb.B)), nil
}

// gamma expansion: encoded -> linear
func expand(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// gamma compression: linear -> encoded
func compress(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if r == 0 {
		// drop negative zero
		return 0
	}
	return r
}

func to8(c float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, c)) * 255))
}
