package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
)

func newValuesCommand(a *app) *cobra.Command {
	var from, to uint64

	cmd := &cobra.Command{
		Use:   "values <file> <series-name>",
		Short: "Print the sorted values of one series",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.load(args[0])
			if err != nil {
				return err
			}

			s, ok := sess.SeriesByName(args[1])
			if !ok {
				return fmt.Errorf("series %q not found in %s", args[1], args[0])
			}

			w := cmd.OutOrStdout()
			for _, p := range s.Range(from, to) {
				fmt.Fprintf(w, "%d\t%s\n", p.Ts, p.Val)
			}

			return nil
		},
	}
	cmd.Flags().Uint64Var(&from, "from", 0, "First timestamp to print")
	cmd.Flags().Uint64Var(&to, "to", math.MaxUint64, "Last timestamp to print")

	return cmd
}
