package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmuldo/coli/color"
	"github.com/mmuldo/coli/palette"
)

// arity returns how many arguments one color takes in representation from.
func arity(from string) (int, error) {
	switch strings.ToLower(from) {
	case "hex":
		return 1, nil
	case "xyz", "lab", "srgb":
		return 3, nil
	}
	return 0, fmt.Errorf("%w: input %q not in {xyz, lab, srgb, hex}", color.ErrInvalidInput, from)
}

// parseColors splits args into colors of the given representation. want is
// the number of colors expected.
func parseColors(from string, args []string, want int, ill color.Illuminant) ([]color.Color, error) {
	n, e := arity(from)
	if e != nil {
		return nil, e
	}
	if len(args) != n*want {
		return nil, fmt.Errorf("%w: %d %s color(s) need %d values, got %d", color.ErrInvalidInput, want, from, n*want, len(args))
	}

	cs := make([]color.Color, 0, want)
	for i := 0; i < len(args); i += n {
		c, e := parseColor(from, args[i:i+n], ill)
		if e != nil {
			return nil, e
		}
		cs = append(cs, c)
	}

	return cs, nil
}

func parseColor(from string, args []string, ill color.Illuminant) (color.Color, error) {
	if strings.ToLower(from) == "hex" {
		return palette.ParseHex(args[0], ill)
	}

	var v [3]float64
	for i, s := range args {
		f, e := strconv.ParseFloat(s, 64)
		if e != nil {
			return color.Color{}, fmt.Errorf("%w: %q is not a number", color.ErrInvalidInput, s)
		}
		v[i] = f
	}

	switch strings.ToLower(from) {
	case "xyz":
		return color.FromXYZ(v[0], v[1], v[2], ill)
	case "lab":
		return color.FromLab(v[0], v[1], v[2], ill)
	default:
		return color.FromSRGB(v[0], v[1], v[2], ill)
	}
}
