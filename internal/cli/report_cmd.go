package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/levelup/internal/report"
)

func newReportCmd(app *App) *cobra.Command {
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a progress report (json, csv or pdf)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			if f == report.FormatPDF && outPath == "" {
				return errors.New("pdf reports require --out")
			}

			s, err := openSession(cmd.Context(), cmd, app)
			if err != nil {
				return err
			}
			defer s.close()

			data, err := report.NewExporter().Export(s.checklist, f)
			if err != nil {
				return fmt.Errorf("export report: %w", err)
			}
			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if dir := filepath.Dir(outPath); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create report dir: %w", err)
				}
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			s.logger.Debug("report_exported", "format", string(f), "path", outPath)
			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatJSON), "Report format (json|csv|pdf)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (stdout when empty; required for pdf)")
	return cmd
}
