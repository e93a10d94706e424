package cmd

import (
	"fmt"

	"github.com/mmuldo/coli/report"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	name   string
	swatch bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert VALUE...",
	Short: "Shows a color as XYZ, L*a*b* and sRGB",
	Long: `Shows a color as XYZ, L*a*b* and sRGB. For example:

  coli convert '#ff8000'
  coli convert --from lab --output yaml -- 50 20 -30
  coli convert --from srgb -i D50 0.5 0.2 0.8 --template color.tpl`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ill, e := illuminant()
		if e != nil {
			return e
		}
		cs, e := parseColors(viper.GetString("from"), args, 1, ill)
		if e != nil {
			return e
		}

		opts := make(map[string]interface{})
		if name != "" {
			opts["name"] = name
		}
		r, e := report.Create(cs[0], opts)
		if e != nil {
			return e
		}

		var out []byte
		if tpl := viper.GetString("template"); tpl != "" {
			s, e := r.RenderFile(tpl)
			if e != nil {
				return e
			}
			out = []byte(s)
		} else if out, e = r.Encode(viper.GetString("output")); e != nil {
			return e
		}

		w := cmd.OutOrStdout()
		if hex, ok := r["hex"].(string); ok && swatch {
			fmt.Fprintln(w, colorSwatch(hex))
		}
		_, e = w.Write(out)
		return e
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml, toml)")
	convertCmd.Flags().StringP("template", "t", "", "pongo2 template file used instead of --output")
	convertCmd.Flags().StringVarP(&name, "name", "n", "", "label for the color in the output")
	convertCmd.Flags().BoolVarP(&swatch, "swatch", "s", false, "print a color swatch first")
	viper.BindPFlag("output", convertCmd.Flags().Lookup("output"))
	viper.BindPFlag("template", convertCmd.Flags().Lookup("template"))
}

func colorSwatch(hex string) string {
	p := termenv.ColorProfile()
	return termenv.String("        ").Background(p.Color(hex)).String() + " " + hex
}
