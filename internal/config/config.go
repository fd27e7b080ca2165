// Package config resolves agenda settings from viper.
package config

import (
	"fmt"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/colmenar/agenda/internal/calendar"
	"github.com/colmenar/agenda/internal/plan"
	"github.com/colmenar/agenda/internal/util"
)

// Config keys.
const (
	KeyDataDir         = "data_dir"
	KeyPlansFile       = "plans_file"
	KeyDBFile          = "db_file"
	KeyLogLevel        = "log_level"
	KeyLogFile         = "log_file"
	KeyView            = "calendar.view"
	KeyDefaultModule   = "calendar.default_module"
	KeyColorByModule   = "calendar.color_by_module"
	KeyGroupGantt      = "calendar.group_gantt"
	KeyForceIndicators = "calendar.force_indicators"
)

// Config is the resolved configuration. File paths are absolute.
type Config struct {
	DataDir   string
	PlansFile string
	DBFile    string
	LogLevel  string
	LogFile   string
	Calendar  Calendar
}

// Calendar holds the calendar view settings.
type Calendar struct {
	View            calendar.ViewMode
	DefaultModule   plan.Module
	ColorByModule   bool
	GroupGantt      bool
	ForceIndicators bool
}

// SetDefaults registers the default value of every key. dataDir is the
// default data directory, usually $HOME/.agenda.
func SetDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault(KeyDataDir, dataDir)
	v.SetDefault(KeyPlansFile, "plans.json")
	v.SetDefault(KeyDBFile, "agenda.db")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "agenda.log")
	v.SetDefault(KeyView, "month")
	v.SetDefault(KeyDefaultModule, "")
	v.SetDefault(KeyColorByModule, true)
	v.SetDefault(KeyGroupGantt, true)
	v.SetDefault(KeyForceIndicators, false)
}

// Load reads and validates the configuration from v. Relative file names
// are resolved against the data directory.
func Load(v *viper.Viper) (Config, error) {
	dataDir, err := homedir.Expand(v.GetString(KeyDataDir))
	if err != nil {
		return Config{}, fmt.Errorf("failed to expand %s: %w", KeyDataDir, err)
	}
	if dataDir == "" {
		return Config{}, fmt.Errorf("%s must not be empty", KeyDataDir)
	}

	view, err := calendar.ParseViewMode(v.GetString(KeyView))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyView, err)
	}
	module, err := plan.ParseModule(v.GetString(KeyDefaultModule))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyDefaultModule, err)
	}

	level := v.GetString(KeyLogLevel)
	if err := util.ValidateLogLevel(level); err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	cfg := Config{
		DataDir:  dataDir,
		LogLevel: level,
		Calendar: Calendar{
			View:            view,
			DefaultModule:   module,
			ColorByModule:   v.GetBool(KeyColorByModule),
			GroupGantt:      v.GetBool(KeyGroupGantt),
			ForceIndicators: v.GetBool(KeyForceIndicators),
		},
	}
	if cfg.PlansFile, err = resolve(dataDir, v.GetString(KeyPlansFile)); err != nil {
		return Config{}, err
	}
	if cfg.DBFile, err = resolve(dataDir, v.GetString(KeyDBFile)); err != nil {
		return Config{}, err
	}
	if cfg.LogFile, err = resolve(dataDir, v.GetString(KeyLogFile)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func resolve(dir, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	name, err := homedir.Expand(name)
	if err != nil {
		return "", fmt.Errorf("failed to expand %q: %w", name, err)
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	return filepath.Join(dir, name), nil
}
