package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/telelog/export"
)

func newExportCommand(a *app) *cobra.Command {
	var formatName, out string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export every series of a log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatName == "" {
				formatName = a.cfg.Output
			}

			sess, err := a.load(args[0])
			if err != nil {
				return err
			}

			if export.IsFileFormat(formatName) {
				if out == "" {
					return errors.New("--out is required for sqlite exports")
				}
				if err := (&export.SQLiteExporter{}).ExportFile(sess, out); err != nil {
					return fmt.Errorf("export error [%s] %s: %w", formatName, out, err)
				}
				a.logger.Info("exported", "format", formatName, "path", out)

				return nil
			}

			exp, err := export.NewExporter(formatName)
			if err != nil {
				return err
			}

			if out == "" {
				return exp.Export(sess, cmd.OutOrStdout())
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("export error [%s] %s: %w", formatName, out, err)
			}
			if err := exp.Export(sess, f); err != nil {
				_ = f.Close()
				return fmt.Errorf("export error [%s] %s: %w", formatName, out, err)
			}
			a.logger.Info("exported", "format", formatName, "path", out)

			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format: json, yaml, cbor, csv or sqlite")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (stdout when empty; required for sqlite)")

	return cmd
}
