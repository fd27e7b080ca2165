package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/colmenar/agenda/internal/plan"
	"github.com/colmenar/agenda/internal/util"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Manage action types",
	Long:  `List the builtin action types and manage custom ones stored in the database.`,
}

var typesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List action types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		labels, closer, err := openLabeler(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closer.Close()

		return writeTypeTable(os.Stdout, labels.Types())
	},
}

var typesAddCmd = &cobra.Command{
	Use:   "add [key] <label>",
	Short: "Add or relabel a custom action type",
	Long:  `Add or relabel a custom action type. Without a key, one is derived from the label.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, label := typeKeyAndLabel(args)
		if key == "" {
			return fmt.Errorf("cannot derive a key from %q", label)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		labels, closer, err := openLabeler(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closer.Close()

		if err := labels.AddCustom(cmd.Context(), key, label); err != nil {
			return err
		}
		fmt.Printf("Saved action type %s (%s)\n", key, label)
		return nil
	},
}

var typesRemoveCmd = &cobra.Command{
	Use:   "remove <key>",
	Short: "Remove a custom action type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		labels, closer, err := openLabeler(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closer.Close()

		if err := labels.RemoveCustom(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed action type %s\n", args[0])
		return nil
	},
}

func init() {
	typesCmd.AddCommand(typesListCmd)
	typesCmd.AddCommand(typesAddCmd)
	typesCmd.AddCommand(typesRemoveCmd)
}

// typeKeyAndLabel splits "add" arguments. A lone label gets a slug key.
func typeKeyAndLabel(args []string) (key, label string) {
	if len(args) == 1 {
		return util.Slugify(args[0]), args[0]
	}
	return args[0], args[1]
}

func writeTypeTable(out io.Writer, types []plan.ActionType) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tLABEL\tCUSTOM")

	for _, t := range types {
		custom := ""
		if t.Custom {
			custom = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Value, t.Label, custom)
	}

	return w.Flush()
}
