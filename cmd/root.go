package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bimmerbailey/timegate/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "timegate",
	Short: "Validate stopwatch readings against legal reference times",
	Long: `Timegate checks whether a measured time (hh:mm:ss.ms) lands close
enough to one of a configured set of legal reference times, and if so
reports which one.

Examples:
  timegate check 00:01:30.000
  timegate check --config ./timegate.json 00:00:05.500
  timegate selftest`,
}

// Execute is called by main.main(). It runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./timegate.{json,yaml}, then beside the executable)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "output format (text, json)")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if exe, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(exe))
		}
		viper.SetConfigName("timegate")
	}

	viper.SetEnvPrefix("TIMEGATE")
	viper.AutomaticEnv()

	viper.SetDefault("format", "text")
}

// loadConfig reads the resolved config file and validates it. Any
// failure here is a setup problem, distinct from bad user input.
func loadConfig() (config.Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %v", config.ErrConfig, err)
	}
	return config.Parse(viper.AllSettings())
}
