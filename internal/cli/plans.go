package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/colmenar/agenda/internal/calendar"
	"github.com/colmenar/agenda/internal/config"
	"github.com/colmenar/agenda/internal/kv"
	"github.com/colmenar/agenda/internal/plan"
	"github.com/colmenar/agenda/internal/util"
)

var (
	listYear   int
	listModule string
	importPath string
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Manage work plans",
	Long:  `List, import, activate and delete the work plans shown on the calendar.`,
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plans",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		module, err := plan.ParseModule(listModule)
		if err != nil {
			return err
		}

		plans, err := plan.NewStore(cfg.PlansFile).Load()
		if err != nil {
			return err
		}
		plans = filterPlans(plans, listYear, module)
		if len(plans) == 0 {
			fmt.Println("No plans.")
			return nil
		}

		labels, closer, err := openLabeler(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closer.Close()

		return writePlanTable(os.Stdout, plans, labels)
	},
}

var plansImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import plans from a JSON or YAML file",
	Long: `Import plans from a JSON or YAML file and merge them into the plan store by ID.
For JSON, --path selects the plan array inside a wrapper document (e.g. data.plans).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := plan.NewStore(cfg.PlansFile)
		n, err := importPlans(store, args[0], importPath)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d plans into %s\n", n, store.Path())
		return nil
	},
}

var plansActivateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Start executing the annual plan",
	Long:  `Copy every planning-phase plan into an execution plan that remembers its original date.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		n, err := activatePlans(plan.NewStore(cfg.PlansFile))
		if err != nil {
			return err
		}
		fmt.Printf("Created %d execution plans\n", n)
		return nil
	},
}

var plansDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete plans by ID",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		n, err := deletePlans(plan.NewStore(cfg.PlansFile), args)
		if n > 0 {
			fmt.Printf("Deleted %d plans\n", n)
		}
		return err
	},
}

func init() {
	plansListCmd.Flags().IntVar(&listYear, "year", 0, "Only plans overlapping this year")
	plansListCmd.Flags().StringVar(&listModule, "module", "", "Only plans of this module")
	plansImportCmd.Flags().StringVar(&importPath, "path", "", "gjson path of the plan array in a JSON document")

	plansCmd.AddCommand(plansListCmd)
	plansCmd.AddCommand(plansImportCmd)
	plansCmd.AddCommand(plansActivateCmd)
	plansCmd.AddCommand(plansDeleteCmd)
}

// filterPlans keeps plans overlapping year (0 for any) and of module (empty
// for any; plans without a module always match).
func filterPlans(plans []plan.Plan, year int, module plan.Module) []plan.Plan {
	plans = calendar.FilterByModule(plans, module)
	if year != 0 {
		plans = calendar.PlansInYear(plans, year)
	}
	return plans
}

func writePlanTable(out io.Writer, plans []plan.Plan, labels calendar.Labeler) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTART\tEND\tTYPE\tMODULE\tPHASE\tSTATE\tTITLE")

	for _, p := range plans {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.ScheduledDate,
			p.End(),
			labels.Label(p.ActionType),
			p.TargetModule.Label(),
			p.PlanPhase,
			calendar.Classify(p),
			p.Title,
		)
	}

	return w.Flush()
}

func importPlans(store *plan.Store, file, path string) (int, error) {
	incoming, err := plan.ImportFile(file, path)
	if err != nil {
		return 0, err
	}
	existing, err := store.Load()
	if err != nil {
		return 0, err
	}
	merged, err := plan.Merge(existing, incoming)
	if err != nil {
		return 0, err
	}
	if err := store.Save(merged); err != nil {
		return 0, err
	}
	util.Log.WithField("file", file).WithField("plans", len(incoming)).Info("plans imported")
	return len(incoming), nil
}

func activatePlans(store *plan.Store) (int, error) {
	plans, err := store.Load()
	if err != nil {
		return 0, err
	}
	activated, created, err := plan.Activate(plans)
	if err != nil {
		return 0, err
	}
	if created == 0 {
		return 0, nil
	}
	if err := store.Save(activated); err != nil {
		return 0, err
	}
	return created, nil
}

// deletePlans removes each plan in ids, stopping at the first failure. It
// returns how many were deleted.
func deletePlans(store *plan.Store, ids []string) (int, error) {
	for i, id := range ids {
		if err := store.Delete(id); err != nil {
			return i, err
		}
		util.Log.WithField("plan", id).Info("plan deleted")
	}
	return len(ids), nil
}

// openLabeler loads action type labels, including custom ones from the
// database when one is configured.
func openLabeler(ctx context.Context, cfg config.Config) (*plan.ActionTypeLabeler, io.Closer, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.DBFile == "" {
		labels, err := plan.NewActionTypeLabeler(ctx, kv.NewMemoryStore())
		return labels, io.NopCloser(nil), err
	}

	db, err := kv.OpenSQLite(cfg.DBFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	labels, err := plan.NewActionTypeLabeler(ctx, db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return labels, db, nil
}
