package services

import (
	"context"
	"fmt"

	"github.com/onyxtech/onyx-invoice/pkg/app"
	"github.com/onyxtech/onyx-invoice/pkg/config"
	companysvcs "github.com/onyxtech/onyx-invoice/services/company/application/services"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/repositories"
	"github.com/onyxtech/onyx-invoice/services/invoice/infrastructure/directory"
	"github.com/onyxtech/onyx-invoice/services/invoice/infrastructure/pdf"
	"github.com/onyxtech/onyx-invoice/services/invoice/infrastructure/persistence/memory"
	draftredis "github.com/onyxtech/onyx-invoice/services/invoice/infrastructure/persistence/redis"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Draft *DraftService
}

// New wires the draft service against the company directory. Drafts live in
// Redis when a.Redis is set, otherwise in process memory. Deletions in the
// directory are reconciled into stored drafts as they happen.
func New(a *app.Application, companies *companysvcs.Services) (*Services, error) {
	exporter, err := pdf.NewExporter(pdf.Options{
		FontPath:     a.Config.PDFFontPath,
		BoldFontPath: a.Config.PDFBoldFontPath,
	})
	if err != nil {
		return nil, fmt.Errorf("pdf exporter: %w", err)
	}

	dir := directory.NewCompanyDirectory(companies.Company)
	drafts := NewDraftService(newDraftRepository(a), dir, exporter, SupplierFromConfig(a.Config), a.Logger, a.Metrics)

	dir.OnDelete(func(ctx context.Context, deletedID string, remaining []models.CompanyRecord) {
		if _, err := drafts.ReconcileCompanyDeletion(ctx, deletedID, remaining); err != nil {
			a.Logger.ErrorContext(ctx, "draft reconciliation failed", "company_id", deletedID, "error", err)
		}
	})

	return &Services{Draft: drafts}, nil
}

func newDraftRepository(a *app.Application) repositories.DraftRepository {
	if a.Redis != nil {
		return draftredis.NewDraftRepository(a.Redis.Client(), a.Config.DraftTTL)
	}
	return memory.NewDraftRepository()
}

// SupplierFromConfig applies the SUPPLIER_* overrides to the built-in supplier.
func SupplierFromConfig(cfg *config.Config) models.SupplierInfo {
	return models.DefaultSupplier().Override(models.SupplierInfo{
		Name:     cfg.SupplierName,
		TaxID:    cfg.SupplierTaxID,
		Address:  cfg.SupplierAddress,
		Bank:     cfg.SupplierBank,
		BankCode: cfg.SupplierBankCode,
		Account:  cfg.SupplierAccount,
	})
}
