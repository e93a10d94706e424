package palette

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mmuldo/coli/color"
	"github.com/mmuldo/coli/diff"
)

// ErrEmpty is returned when a lookup runs against a palette with no entries.
var ErrEmpty = errors.New("empty palette")

// Entry is a named color.
type Entry struct {
	Name  string
	Color color.Color
}

// Palette is an ordered set of named colors.
type Palette []Entry

type byName Palette

func (p byName) Len() int           { return len(p) }
func (p byName) Less(i, j int) bool { return p[i].Name < p[j].Name }
func (p byName) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

type byLightness struct {
	p Palette
	l []float64
}

func (b byLightness) Len() int           { return len(b.p) }
func (b byLightness) Less(i, j int) bool { return b.l[i] < b.l[j] }
func (b byLightness) Swap(i, j int) {
	b.p[i], b.p[j] = b.p[j], b.p[i]
	b.l[i], b.l[j] = b.l[j], b.l[i]
}

// FromHex builds a palette from name -> "#rrggbb" pairs, sorted by name.
func FromHex(m map[string]string, ill color.Illuminant) (Palette, error) {
	p := make(Palette, 0, len(m))

	for name, hex := range m {
		c, e := ParseHex(hex, ill)
		if e != nil {
			return nil, fmt.Errorf("palette entry %s: %w", name, e)
		}
		p = append(p, Entry{name, c})
	}

	sort.Sort(byName(p))
	return p, nil
}

// ParseHex parses "#rgb" or "#rrggbb" as sRGB under ill.
func ParseHex(hex string, ill color.Illuminant) (color.Color, error) {
	rgb, e := colorful.Hex(hex)
	if e != nil {
		return color.Color{}, fmt.Errorf("%w: %v", color.ErrInvalidInput, e)
	}
	return color.FromSRGB(rgb.R, rgb.G, rgb.B, ill)
}

// Nearest returns the entry closest to target and its distance. Ties go to
// the earlier entry.
func (p Palette) Nearest(target color.Color, m diff.Metric, s diff.Substrate) (Entry, float64, error) {
	if len(p) == 0 {
		return Entry{}, 0, ErrEmpty
	}

	best, dist := 0, 0.0
	for i, entry := range p {
		d, e := diff.DeltaE(target, entry.Color, m, s)
		if e != nil {
			return Entry{}, 0, e
		}
		if i == 0 || d < dist {
			best, dist = i, d
		}
	}

	return p[best], dist, nil
}

// Group partitions p greedily: each entry not yet grouped opens a group and
// pulls in every later ungrouped entry closer than threshold to it.
func (p Palette) Group(threshold float64, m diff.Metric, s diff.Substrate) ([]Palette, error) {
	g := make([]Palette, 0)
	done := make([]bool, len(p))

	for i := range p {
		if done[i] {
			continue
		}
		group := Palette{p[i]}
		done[i] = true

		for j := i + 1; j < len(p); j++ {
			if done[j] {
				continue
			}

			d, e := diff.DeltaE(p[i].Color, p[j].Color, m, s)
			if e != nil {
				return nil, e
			}
			if d < threshold {
				group = append(group, p[j])
				done[j] = true
			}
		}
		g = append(g, group)
	}

	return g, nil
}

// SortByLightness orders p from darkest to lightest by L*.
func (p Palette) SortByLightness() error {
	l := make([]float64, len(p))
	for i, entry := range p {
		lab, e := entry.Color.Lab(color.LabCIE)
		if e != nil {
			return e
		}
		l[i] = lab.L
	}

	sort.Stable(byLightness{p, l})
	return nil
}
