package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/onyxtech/onyx-invoice/pkg/config"
	"github.com/onyxtech/onyx-invoice/pkg/logger"
	companysvcs "github.com/onyxtech/onyx-invoice/services/company/application/services"
	"github.com/onyxtech/onyx-invoice/services/company/infrastructure/persistence/file"
	invoicesvcs "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
	"github.com/onyxtech/onyx-invoice/services/invoice/infrastructure/directory"
	"github.com/onyxtech/onyx-invoice/services/invoice/infrastructure/persistence/memory"
)

// cli carries what every subcommand shares.
type cli struct {
	cfg           *config.Config
	companiesPath string
	log           logger.Logger
	now           func() time.Time
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	c := &cli{cfg: cfg, now: time.Now}

	root := &cobra.Command{
		Use:   "invoicectl",
		Short: "Render and export Onyx invoices from the command line",
		Long: `invoicectl works on invoice drafts stored as JSON files and on the
file-backed company directory, without the API server, Redis or Postgres.

Logs go to stderr; rendered documents go to stdout or the given file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.log = logger.NewWithWriter(cfg, cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&c.companiesPath, "companies", cfg.CompaniesFile, "company directory JSON file")

	root.AddCommand(c.renderCmd(), c.exportCmd(), c.companiesCmd())
	return root
}

func (c *cli) companyService() *companysvcs.CompanyService {
	return companysvcs.NewCompanyService(file.NewCompanyRepository(c.companiesPath), nil, c.log, nil)
}

// loadDraft reads the draft file, stores it in a throwaway repository and
// returns a service able to render it, with the draft's id.
func (c *cli) loadDraft(ctx context.Context, path string, exporter invoicesvcs.Exporter) (*invoicesvcs.DraftService, string, error) {
	df, err := readDraftFile(path)
	if err != nil {
		return nil, "", err
	}

	dir := directory.NewCompanyDirectory(c.companyService())
	companies, err := dir.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load companies: %w", err)
	}

	state, err := df.state(c.now(), companies)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	repo := memory.NewDraftRepository()
	id, err := repo.Create(ctx, state)
	if err != nil {
		return nil, "", err
	}
	svc := invoicesvcs.NewDraftService(repo, dir, exporter, invoicesvcs.SupplierFromConfig(c.cfg), c.log, nil)
	return svc, id, nil
}
