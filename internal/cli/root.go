package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colmenar/agenda/internal/config"
	"github.com/colmenar/agenda/internal/util"
	"github.com/colmenar/agenda/internal/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Farm work-plan calendar",
	Long: `Agenda shows the year's farm work plans in month, week and Gantt views.
Run it without arguments to open the calendar.`,
	Version: version.String(),
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.agenda.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "", "Set log level. Available: debug, info, warn, error, fatal")
	viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("loglevel"))

	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(typesCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	home, err := homedir.Dir()
	if err != nil {
		util.Log.WithError(err).Warn("failed to find home directory")
		home = "."
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(home)
		viper.SetConfigName(".agenda")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("agenda")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper(), filepath.Join(home, ".agenda"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			util.Log.WithError(err).Warn("failed to read config file")
		}
	}
}

// loadConfig resolves the configuration and applies the log level.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := util.SetLogLevel(cfg.LogLevel); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
