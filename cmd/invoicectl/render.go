package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (c *cli) renderCmd() *cobra.Command {
	var draftPath, outPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a draft as a printable HTML page",
		Example: `  # Preview in a browser
  invoicectl render --draft draft.json > invoice.html

  # Use another directory file
  invoicectl render --draft draft.json --companies /srv/companies.json -o invoice.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, id, err := c.loadDraft(ctx, draftPath, nil)
			if err != nil {
				return err
			}
			page, err := svc.RenderHTML(ctx, id)
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(page)
				return err
			}
			if err := os.WriteFile(outPath, page, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			c.log.Info("document rendered", "path", outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&draftPath, "draft", "", "draft JSON file (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the page to this file instead of stdout")
	_ = cmd.MarkFlagRequired("draft")
	return cmd
}
