// Package report projects a single color into every representation the
// color package knows and renders the result as text or structured data.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/flosch/pongo2"
	"github.com/mmuldo/coli/color"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrFormat is returned by Encode for an unknown output format.
var ErrFormat = errors.New("unknown output format")

// DefaultTemplate is the text layout used when no template is given.
const DefaultTemplate = `{{ name }} ({{ illuminant }}, {{ observer }} deg)
XYZ  {{ xyz.X|floatformat:6 }} {{ xyz.Y|floatformat:6 }} {{ xyz.Z|floatformat:6 }}
Lab  {{ lab.L|floatformat:4 }} {{ lab.a|floatformat:4 }} {{ lab.b|floatformat:4 }}
Lab' {{ lab_normalized.L|floatformat:6 }} {{ lab_normalized.a|floatformat:6 }} {{ lab_normalized.b|floatformat:6 }}
{% if hex %}sRGB {{ srgb.R|floatformat:6 }} {{ srgb.G|floatformat:6 }} {{ srgb.B|floatformat:6 }} {{ hex }}{% else %}sRGB {{ note }}{% endif %}
`

// Report is a color flattened into named fields.
type Report map[string]interface{}

// Create builds a report for c. Entries in opts are copied over the
// computed fields.
func Create(c color.Color, opts map[string]interface{}) (Report, error) {
	r := make(Report)

	xyz := c.XYZ()
	r["xyz"] = map[string]float64{"X": xyz.X, "Y": xyz.Y, "Z": xyz.Z}
	r["illuminant"] = string(c.Illuminant())
	r["observer"] = string(c.Observer())

	lab, e := c.Lab(color.LabCIE)
	if e != nil {
		return nil, e
	}
	r["lab"] = map[string]float64{"L": lab.L, "a": lab.A, "b": lab.B}

	lab, e = c.Lab(color.LabNormalized)
	if e != nil {
		return nil, e
	}
	r["lab_normalized"] = map[string]float64{"L": lab.L, "a": lab.A, "b": lab.B}

	rgb, e := c.SRGB()
	switch {
	case errors.Is(e, color.ErrUnsupportedIlluminant):
		r["note"] = fmt.Sprintf("not available under %s", c.Illuminant())
	case e != nil:
		return nil, e
	default:
		r["srgb"] = map[string]float64{"R": rgb.R, "G": rgb.G, "B": rgb.B}
		hex, e := c.Hex()
		if e != nil {
			return nil, e
		}
		r["hex"] = hex
	}

	for k, v := range opts {
		r[k] = v
	}

	setDefaults(r)

	return r, nil
}

// Render executes a pongo2 template against the report.
func (r Report) Render(template string) (string, error) {
	tpl, e := pongo2.FromString(template)
	if e != nil {
		return "", e
	}

	return tpl.Execute(pongo2.Context(r))
}

// Encode serialises the report as "text", "json", "yaml" or "toml".
func (r Report) Encode(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "text":
		s, e := r.Render(DefaultTemplate)
		return []byte(s), e
	case "json":
		b, e := json.MarshalIndent(r, "", "  ")
		if e != nil {
			return nil, e
		}
		return append(b, '\n'), nil
	case "yaml", "yml":
		return yaml.Marshal(map[string]interface{}(r))
	case "toml":
		return toml.Marshal(map[string]interface{}(r))
	}

	return nil, fmt.Errorf("%w: %q not in {text, json, yaml, toml}", ErrFormat, format)
}

func setDefaults(r Report) {
	if _, ok := r["name"]; !ok {
		if hex, ok := r["hex"]; ok {
			r["name"] = hex
		} else {
			r["name"] = "color"
		}
	}
}

// RenderFile executes the pongo2 template stored at path.
func (r Report) RenderFile(path string) (string, error) {
	tpl, e := pongo2.FromFile(path)
	if e != nil {
		return "", e
	}

	return tpl.Execute(pongo2.Context(r))
}
