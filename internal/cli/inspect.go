package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/telelog/series"
)

func newInspectCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the session, every series and its values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.load(args[0])
			if err != nil {
				return err
			}
			writeInspect(cmd.OutOrStdout(), sess, limit)

			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most n values per series (0 shows all)")

	return cmd
}

func writeInspect(w io.Writer, sess *series.Session, limit int) {
	fmt.Fprintln(w, sessionStyle.Render(fmt.Sprintf("%s %d", sess.Name(), sess.StartTime())))

	for _, s := range sess.AllSeries() {
		fmt.Fprintln(w, seriesStyle.Render(s.String()))

		shown := 0
		for ts, v := range s.All() {
			if limit > 0 && shown == limit {
				fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("  ... %d more", s.Len()-shown)))
				break
			}
			fmt.Fprintf(w, "%s [%d]: %s\n", s.Name, ts, v)
			shown++
		}
	}
}
