package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colmenar/agenda/internal/config"
	"github.com/colmenar/agenda/internal/tui"
	"github.com/colmenar/agenda/internal/util"
)

var (
	calendarYear int
	calendarFlat bool
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Open the planning calendar",
	Long:  `Open the interactive planning calendar in month, week or Gantt view.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opts := tuiOptions(cfg)
		opts.Year = calendarYear
		if cmd.Flags().Changed("flat") {
			opts.GroupGantt = !calendarFlat
		}
		return launch(cfg, opts)
	},
}

func init() {
	calendarCmd.Flags().String("view", "", "Initial view: month|week|gantt")
	calendarCmd.Flags().String("module", "", "Only show plans of this module")
	calendarCmd.Flags().Bool("color-modules", true, "Color plans by module")
	calendarCmd.Flags().Bool("indicators", false, "Show unplanned/rescheduled markers during planning")
	calendarCmd.Flags().IntVar(&calendarYear, "year", 0, "Year to open (default: current year)")
	calendarCmd.Flags().BoolVar(&calendarFlat, "flat", false, "Do not group Gantt rows by action type")

	viper.BindPFlag(config.KeyView, calendarCmd.Flags().Lookup("view"))
	viper.BindPFlag(config.KeyDefaultModule, calendarCmd.Flags().Lookup("module"))
	viper.BindPFlag(config.KeyColorByModule, calendarCmd.Flags().Lookup("color-modules"))
	viper.BindPFlag(config.KeyForceIndicators, calendarCmd.Flags().Lookup("indicators"))
}

// RunCalendar opens the calendar with the configured defaults. It is what
// agenda does when run without arguments.
func RunCalendar() error {
	initConfig()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return launch(cfg, tuiOptions(cfg))
}

func tuiOptions(cfg config.Config) tui.Options {
	return tui.Options{
		View:                    cfg.Calendar.View,
		DefaultModule:           cfg.Calendar.DefaultModule,
		ColorByModule:           cfg.Calendar.ColorByModule,
		GroupGantt:              cfg.Calendar.GroupGantt,
		ForcePlanningIndicators: cfg.Calendar.ForceIndicators,
		PlansFile:               cfg.PlansFile,
		DBFile:                  cfg.DBFile,
	}
}

// launch runs the TUI with logging redirected to the log file.
func launch(cfg config.Config, opts tui.Options) error {
	if cfg.LogFile != "" {
		closer, err := util.SetLogFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer closer.Close()
	}
	util.Log.WithField("plans_file", opts.PlansFile).WithField("view", opts.View.String()).Info("starting calendar")
	return tui.Run(opts)
}
