/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"log"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/coli/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coli",
	Short: "Converts colors between XYZ, L*a*b* and sRGB",
	Long: `coli converts single colors between CIE XYZ, CIE L*a*b* and sRGB and
measures how far apart two colors are (Delta E 1976, 1994 and 2000).

Defaults for every flag can be kept in $HOME/.coli.yaml or set through
COLI_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if e := rootCmd.Execute(); e != nil {
		log.Fatal(e)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.coli.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log which config file is used")
	rootCmd.PersistentFlags().StringP("illuminant", "i", string(color.DefaultIlluminant), "reference white (A, C, D50, D55, D65, D75, E)")
	rootCmd.PersistentFlags().StringP("from", "f", "hex", "input representation (xyz, lab, srgb, hex)")
	viper.BindPFlag("illuminant", rootCmd.PersistentFlags().Lookup("illuminant"))
	viper.BindPFlag("from", rootCmd.PersistentFlags().Lookup("from"))

	setDefaults()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, e := homedir.Dir()
		if e != nil {
			log.Fatal(e)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".coli")
	}

	viper.SetEnvPrefix("coli")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if e := viper.ReadInConfig(); e == nil {
		if verbose {
			log.Println("Using config file:", viper.ConfigFileUsed())
		}
	} else if cfgFile != "" {
		log.Println(e)
		os.Exit(1)
	}
}

func setDefaults() {
	viper.SetDefault("metric", "CIE1976")
	viper.SetDefault("substrate", "graphic-arts")
	viper.SetDefault("output", "text")
	viper.SetDefault("threshold", 10.0)
	viper.SetDefault("palette", defaultPalette)
}

func illuminant() (color.Illuminant, error) {
	return color.ParseIlluminant(viper.GetString("illuminant"))
}
