package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/onyxtech/onyx-invoice/services/invoice/infrastructure/pdf"
)

func (c *cli) exportCmd() *cobra.Command {
	var draftPath, outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a draft as an A4 PDF",
		Long: `Export writes Invoice_<number>.pdf, or Invoice_Draft.pdf when the draft
has no invoice number, into the output directory and prints its path.

Set PDF_FONT_PATH to a UTF-8 TrueType font to print Georgian text.`,
		Example: `  invoicectl export --draft draft.json --out ./invoices`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			exporter, err := pdf.NewExporter(pdf.Options{
				FontPath:     c.cfg.PDFFontPath,
				BoldFontPath: c.cfg.PDFBoldFontPath,
			})
			if err != nil {
				return err
			}

			svc, id, err := c.loadDraft(ctx, draftPath, exporter)
			if err != nil {
				return err
			}
			name, data, err := svc.ExportPDF(ctx, id)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", outDir, err)
			}
			path := filepath.Join(outDir, name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			c.log.Info("invoice exported", "path", path, "bytes", len(data))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().StringVar(&draftPath, "draft", "", "draft JSON file (required)")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	_ = cmd.MarkFlagRequired("draft")
	return cmd
}
