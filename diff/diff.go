// Package diff computes perceptual distances between two colors.
package diff

import (
	"fmt"
	"math"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
	"github.com/mmuldo/coli/color"
)

// Metric names a Delta E formula.
type Metric string

const (
	CIE1976 Metric = "CIE1976"
	CIE1994 Metric = "CIE1994"
	// CIE2000 is the complete CIEDE2000 formula with unit weights.
	CIE2000 Metric = "CIE2000"
)

// Substrate selects the CIE1994 weighting constants.
type Substrate string

const (
	GraphicArts Substrate = "graphic-arts"
	Textile     Substrate = "textile"
)

// weights94 holds K_L, K_1 and K_2 for CIE1994. K_C and K_H are always 1.
type weights94 struct {
	kL, k1, k2 float64
}

var (
	substrates = map[Substrate]weights94{
		GraphicArts: {1, 0.045, 0.015},
		Textile:     {2, 0.048, 0.014},
	}

	klch = &deltae.KLChDefault
)

// ParseMetric accepts "CIE1976", "cie94", "de2000" and similar spellings.
func ParseMetric(s string) (Metric, error) {
	k := strings.ToUpper(strings.NewReplacer(" ", "", "_", "", "-", "", "(", "", ")", "").Replace(s))
	k = strings.TrimPrefix(strings.TrimPrefix(k, "DELTAE"), "DE")
	switch k {
	case "CIE1976", "CIE76", "76":
		return CIE1976, nil
	case "CIE1994", "CIE94", "94":
		return CIE1994, nil
	case "CIE2000", "CIEDE2000", "2000":
		return CIE2000, nil
	}
	return "", fmt.Errorf("%w: metric %q not in {%s, %s, %s}", color.ErrInvalidInput, s, CIE1976, CIE1994, CIE2000)
}

// ParseSubstrate accepts "graphic arts", "graphic-arts" or "textile". An
// empty string means GraphicArts.
func ParseSubstrate(s string) (Substrate, error) {
	k := Substrate(strings.ToLower(strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "-")))
	switch k {
	case "":
		k = GraphicArts
	case "textiles":
		k = Textile
	}
	if _, ok := substrates[k]; !ok {
		return "", fmt.Errorf("%w: substrate %q not in {%s, %s}", color.ErrInvalidInput, s, GraphicArts, Textile)
	}
	return k, nil
}

// DeltaE returns the distance between a and b under metric m. The substrate
// only matters for CIE1994 and is ignored otherwise; the zero Substrate
// means GraphicArts. Both colors are
// projected to raw CIE L*a*b* under their own illuminants.
func DeltaE(a, b color.Color, m Metric, s Substrate) (float64, error) {
	var w weights94
	switch m {
	case CIE1976, CIE2000:
	case CIE1994:
		if s == "" {
			s = GraphicArts
		}
		var ok bool
		if w, ok = substrates[s]; !ok {
			return 0, fmt.Errorf("%w: substrate %q not in {%s, %s}", color.ErrInvalidInput, s, GraphicArts, Textile)
		}
	default:
		return 0, fmt.Errorf("%w: metric %q not in {%s, %s, %s}", color.ErrInvalidInput, m, CIE1976, CIE1994, CIE2000)
	}

	la, e := a.Lab(color.LabCIE)
	if e != nil {
		return 0, e
	}
	lb, e := b.Lab(color.LabCIE)
	if e != nil {
		return 0, e
	}

	switch m {
	case CIE1994:
		return cie94(la, lb, w), nil
	case CIE2000:
		return cie2000(la, lb), nil
	}
	return cie76(la, lb), nil
}

func cie76(a, b color.Lab) float64 {
	dL, da, db := a.L-b.L, a.A-b.A, a.B-b.B
	return math.Sqrt(dL*dL + da*da + db*db)
}

// cie94 weights chroma and hue by the geometric mean of both chromas, which
// keeps the result symmetric in a and b.
func cie94(a, b color.Lab, w weights94) float64 {
	ca := math.Hypot(a.A, a.B)
	cb := math.Hypot(b.A, b.B)

	dL := a.L - b.L
	dC := ca - cb
	da, db := a.A-b.A, a.B-b.B
	dH2 := da*da + db*db - dC*dC
	if dH2 < 0 {
		// round-off
		dH2 = 0
	}

	c := math.Sqrt(ca * cb)
	sL := 1.0
	sC := 1 + w.k1*c
	sH := 1 + w.k2*c

	l := dL / (w.kL * sL)
	ch := dC / sC
	return math.Sqrt(l*l + ch*ch + dH2/(sH*sH))
}

func cie2000(a, b color.Lab) float64 {
	if a == b {
		return 0
	}
	return deltae.CIE2000(chromath.Lab{a.L, a.A, a.B}, chromath.Lab{b.L, b.A, b.B}, klch)
}
