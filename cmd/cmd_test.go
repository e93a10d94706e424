package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmuldo/coli/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func config(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coli.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`illuminant: D65
palette:
  red: "#ff0000"
  crimson: "#dc143c"
  blue: "#0000ff"
`), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--config", config(t), "-i", "D65"}, args...))
	e := rootCmd.Execute()
	return out.String(), e
}

func convert(t *testing.T, args ...string) (string, error) {
	return run(t, append([]string{"convert", "--template=", "--name=", "--swatch=false"}, args...)...)
}

func TestConvert(t *testing.T) {
	out, e := convert(t, "--from", "srgb", "--output", "json", "1", "1", "1")
	require.NoError(t, e)
	assert.Contains(t, out, `"hex": "#ffffff"`)

	out, e = convert(t, "--from", "hex", "--output", "text", "--name", "orange", "#ff8000")
	require.NoError(t, e)
	assert.True(t, strings.HasPrefix(out, "orange (D65, 2 deg)\n"), out)
	assert.Contains(t, out, "#ff8000")

	out, e = convert(t, "--from", "lab", "--output", "yaml", "-i", "A", "50", "10", "10")
	require.NoError(t, e)
	assert.Contains(t, out, "illuminant: A")
	assert.Contains(t, out, "not available under A")
}

func TestConvertRejects(t *testing.T) {
	_, e := convert(t, "--from", "srgb", "1.5", "0", "0")
	assert.ErrorIs(t, e, color.ErrInvalidInput)

	_, e = convert(t, "--from", "lab", "50", "0")
	assert.ErrorIs(t, e, color.ErrInvalidInput)

	_, e = convert(t, "--from", "xyz", "a", "b", "c")
	assert.ErrorIs(t, e, color.ErrInvalidInput)

	_, e = convert(t, "--from", "cmyk", "0", "0", "0", "0")
	assert.ErrorIs(t, e, color.ErrInvalidInput)

	_, e = convert(t, "--from", "hex", "-i", "F2", "#ffffff")
	assert.ErrorIs(t, e, color.ErrInvalidInput)
}

func TestConvertTemplate(t *testing.T) {
	tpl := filepath.Join(t.TempDir(), "color.tpl")
	require.NoError(t, os.WriteFile(tpl, []byte("{{ hex }} L={{ lab.L|floatformat:1 }}"), 0644))

	out, e := convert(t, "--from", "srgb", "--template", tpl, "0", "0", "0")
	require.NoError(t, e)
	assert.Equal(t, "#000000 L=0.0", out)
}

func TestDiff(t *testing.T) {
	out, e := run(t, "diff", "--from", "lab", "--metric", "CIE1976", "50", "0", "0", "53", "4", "0")
	require.NoError(t, e)
	assert.Equal(t, "5.000000\n", out)

	out, e = run(t, "diff", "--from", "hex", "--metric", "cie94", "--substrate", "textile", "#336699", "#336699")
	require.NoError(t, e)
	assert.Equal(t, "0.000000\n", out)

	_, e = run(t, "diff", "--from", "hex", "--metric", "cie94", "--substrate", "unknown", "#336699", "#336699")
	assert.ErrorIs(t, e, color.ErrInvalidInput)

	_, e = run(t, "diff", "--from", "hex", "--metric", "cmc", "--substrate", "textile", "#336699", "#336699")
	assert.ErrorIs(t, e, color.ErrInvalidInput)
}

func TestNearest(t *testing.T) {
	out, e := run(t, "nearest", "--from", "hex", "--metric", "CIE2000", "--substrate", "graphic-arts", "#f01010")
	require.NoError(t, e)
	assert.True(t, strings.HasPrefix(out, "red #ff0000 "), out)

	// the palette cannot be shown in sRGB under A
	_, e = run(t, "nearest", "--from", "lab", "--metric", "CIE1976", "-i", "A", "50", "0", "0")
	assert.ErrorIs(t, e, color.ErrUnsupportedIlluminant)
}

func TestPalette(t *testing.T) {
	out, e := run(t, "palette", "--metric", "CIE2000", "--substrate", "graphic-arts", "--threshold", "15")
	require.NoError(t, e)
	assert.Equal(t, "blue(#0000ff)\ncrimson(#dc143c) red(#ff0000)\n", out)
}
