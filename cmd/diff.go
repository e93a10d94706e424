package cmd

import (
	"fmt"

	"github.com/mmuldo/coli/diff"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff VALUE...",
	Short: "Measures the Delta E between two colors",
	Long: `Measures the Delta E between two colors. For example:

  coli diff '#ff0000' '#dc143c'
  coli diff --from lab --metric cie94 --substrate textile 50 0 0 53 4 0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, e := diff.ParseMetric(viper.GetString("metric"))
		if e != nil {
			return e
		}
		var s diff.Substrate
		if m == diff.CIE1994 {
			if s, e = diff.ParseSubstrate(viper.GetString("substrate")); e != nil {
				return e
			}
		}

		ill, e := illuminant()
		if e != nil {
			return e
		}
		cs, e := parseColors(viper.GetString("from"), args, 2, ill)
		if e != nil {
			return e
		}

		d, e := diff.DeltaE(cs[0], cs[1], m, s)
		if e != nil {
			return e
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", d)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)

	rootCmd.PersistentFlags().StringP("metric", "m", "CIE1976", "Delta E formula (CIE1976, CIE1994, CIE2000)")
	rootCmd.PersistentFlags().String("substrate", "graphic-arts", "CIE1994 weighting (graphic-arts, textile)")
	viper.BindPFlag("metric", rootCmd.PersistentFlags().Lookup("metric"))
	viper.BindPFlag("substrate", rootCmd.PersistentFlags().Lookup("substrate"))
}
