package palette

import (
	"testing"

	"github.com/mmuldo/coli/color"
	"github.com/mmuldo/coli/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base16(t *testing.T) Palette {
	t.Helper()
	p, e := FromHex(map[string]string{
		"black":   "#000000",
		"white":   "#ffffff",
		"red":     "#ff0000",
		"crimson": "#dc143c",
		"navy":    "#000080",
		"blue":    "#0000ff",
		"grey":    "#808080",
	}, color.D65)
	require.NoError(t, e)
	return p
}

func names(p Palette) []string {
	s := make([]string, len(p))
	for i, entry := range p {
		s[i] = entry.Name
	}
	return s
}

func TestFromHex(t *testing.T) {
	p := base16(t)
	assert.Equal(t, []string{"black", "blue", "crimson", "grey", "navy", "red", "white"}, names(p))

	h, e := p[6].Color.Hex()
	require.NoError(t, e)
	assert.Equal(t, "#ffffff", h)

	_, e = FromHex(map[string]string{"bad": "#zz0000"}, color.D65)
	assert.ErrorIs(t, e, color.ErrInvalidInput)

	_, e = FromHex(map[string]string{"red": "#ff0000"}, color.A)
	assert.ErrorIs(t, e, color.ErrUnsupportedIlluminant)
}

func TestParseHex(t *testing.T) {
	c, e := ParseHex("#fff", color.D50)
	require.NoError(t, e)
	assert.Equal(t, color.D50, c.Illuminant())
	assert.InDelta(t, 1.0, c.XYZ().Y, 1e-6)
}

func TestNearest(t *testing.T) {
	p := base16(t)

	target, e := ParseHex("#f01010", color.D65)
	require.NoError(t, e)
	for _, m := range []diff.Metric{diff.CIE1976, diff.CIE1994, diff.CIE2000} {
		entry, d, e := p.Nearest(target, m, diff.GraphicArts)
		require.NoError(t, e)
		assert.Equal(t, "red", entry.Name, m)
		assert.Greater(t, d, 0.0)
	}

	entry, d, e := p.Nearest(p[3].Color, diff.CIE1976, "")
	require.NoError(t, e)
	assert.Equal(t, "grey", entry.Name)
	assert.Equal(t, 0.0, d)

	_, _, e = Palette{}.Nearest(target, diff.CIE1976, "")
	assert.ErrorIs(t, e, ErrEmpty)

	_, _, e = p.Nearest(target, diff.CIE1994, "paper")
	assert.ErrorIs(t, e, color.ErrInvalidInput)
}

func TestGroup(t *testing.T) {
	p := base16(t)

	g, e := p.Group(0.5, diff.CIE1976, "")
	require.NoError(t, e)
	assert.Len(t, g, len(p))

	g, e = p.Group(1000, diff.CIE1976, "")
	require.NoError(t, e)
	require.Len(t, g, 1)
	assert.Len(t, g[0], len(p))

	// red and crimson sit close together, everything else stays apart
	g, e = p.Group(15, diff.CIE2000, "")
	require.NoError(t, e)
	var reds Palette
	for _, group := range g {
		if group[0].Name == "crimson" {
			reds = group
		}
	}
	assert.Equal(t, []string{"crimson", "red"}, names(reds))
}

func TestSortByLightness(t *testing.T) {
	p := base16(t)
	require.NoError(t, p.SortByLightness())
	assert.Equal(t, "black", p[0].Name)
	assert.Equal(t, "white", p[len(p)-1].Name)

	bad := Palette{{"zero", color.Color{}}}
	assert.ErrorIs(t, bad.SortByLightness(), color.ErrInvalidInput)
}
