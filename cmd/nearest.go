package cmd

import (
	"fmt"
	"strings"

	"github.com/mmuldo/coli/color"
	"github.com/mmuldo/coli/diff"
	"github.com/mmuldo/coli/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// the 16 ANSI terminal colors, used when no palette is configured
var defaultPalette = map[string]string{
	"black":          "#000000",
	"red":            "#800000",
	"green":          "#008000",
	"yellow":         "#808000",
	"blue":           "#000080",
	"magenta":        "#800080",
	"cyan":           "#008080",
	"white":          "#c0c0c0",
	"bright-black":   "#808080",
	"bright-red":     "#ff0000",
	"bright-green":   "#00ff00",
	"bright-yellow":  "#ffff00",
	"bright-blue":    "#0000ff",
	"bright-magenta": "#ff00ff",
	"bright-cyan":    "#00ffff",
	"bright-white":   "#ffffff",
}

// nearestCmd represents the nearest command
var nearestCmd = &cobra.Command{
	Use:   "nearest VALUE...",
	Short: "Finds the closest palette entry to a color",
	Long: `Finds the closest entry of the configured palette to a color. The palette
is read from the "palette" key of the config file (name: "#rrggbb") and
defaults to the 16 ANSI terminal colors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, s, e := metric()
		if e != nil {
			return e
		}
		ill, e := illuminant()
		if e != nil {
			return e
		}
		cs, e := parseColors(viper.GetString("from"), args, 1, ill)
		if e != nil {
			return e
		}
		p, e := loadPalette(ill)
		if e != nil {
			return e
		}

		entry, d, e := p.Nearest(cs[0], m, s)
		if e != nil {
			return e
		}

		hex, e := entry.Color.Hex()
		if e != nil {
			return e
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %.6f\n", entry.Name, hex, d)
		return nil
	},
}

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Groups the configured palette by Delta E",
	Long: `Prints the configured palette from darkest to lightest, one line per
group of entries that lie within --threshold of each other.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, s, e := metric()
		if e != nil {
			return e
		}
		ill, e := illuminant()
		if e != nil {
			return e
		}
		p, e := loadPalette(ill)
		if e != nil {
			return e
		}
		if e = p.SortByLightness(); e != nil {
			return e
		}

		groups, e := p.Group(viper.GetFloat64("threshold"), m, s)
		if e != nil {
			return e
		}

		for _, g := range groups {
			names := make([]string, len(g))
			for i, entry := range g {
				hex, e := entry.Color.Hex()
				if e != nil {
					return e
				}
				names[i] = entry.Name + "(" + hex + ")"
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nearestCmd)
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().Float64("threshold", 10, "largest Delta E between members of a group")
	viper.BindPFlag("threshold", paletteCmd.Flags().Lookup("threshold"))
}

func metric() (diff.Metric, diff.Substrate, error) {
	m, e := diff.ParseMetric(viper.GetString("metric"))
	if e != nil {
		return "", "", e
	}
	s, e := diff.ParseSubstrate(viper.GetString("substrate"))
	if e != nil {
		return "", "", e
	}
	return m, s, nil
}

func loadPalette(ill color.Illuminant) (palette.Palette, error) {
	m := viper.GetStringMapString("palette")
	if len(m) == 0 {
		m = defaultPalette
	}
	return palette.FromHex(m, ill)
}
