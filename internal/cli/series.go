package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSeriesCommand(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "series <file>",
		Short: "List the plottable series of a log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.load(args[0])
			if err != nil {
				return err
			}

			list := sess.DisplayableSeries()
			if all {
				list = sess.AllSeries()
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tUNIT\tTYPE\tPOINTS")
			for _, s := range list {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", s.ID, s.Name, s.Unit, s.Type, s.Len())
			}

			return tw.Flush()
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include text series")

	return cmd
}
