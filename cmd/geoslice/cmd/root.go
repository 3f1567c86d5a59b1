package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "geoslice",
	Short: "Windowed raster dataset tooling",
	Long:  "CLI for converting, inspecting, packaging and sampling geoslice raster datasets.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/geoslice/config.yaml)")
	rootCmd.PersistentFlags().Int("zone", 36, "UTM zone for coordinate conversion")

	viper.BindPFlag("zone", rootCmd.PersistentFlags().Lookup("zone"))
}

func initConfig() {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("GEOSLICE")
	viper.AutomaticEnv()
	viper.SetDefault("zone", 36)

	viper.ReadInConfig()
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "geoslice")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "geoslice")
	}
	return ".geoslice"
}

func getZone() int {
	return viper.GetInt("zone")
}
