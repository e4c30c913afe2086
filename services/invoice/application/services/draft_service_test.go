package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/onyxtech/onyx-invoice/pkg/app"
	"github.com/onyxtech/onyx-invoice/pkg/config"
	"github.com/onyxtech/onyx-invoice/pkg/logger"
	companysvcs "github.com/onyxtech/onyx-invoice/services/company/application/services"
	companymodels "github.com/onyxtech/onyx-invoice/services/company/domain/models"
	companymemory "github.com/onyxtech/onyx-invoice/services/company/infrastructure/persistence/memory"
	invoicedomain "github.com/onyxtech/onyx-invoice/services/invoice/domain"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/document"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
	"github.com/onyxtech/onyx-invoice/services/invoice/infrastructure/persistence/memory"
)

type stubDirectory struct {
	companies []models.CompanyRecord
	err       error
}

func (d *stubDirectory) List(context.Context) ([]models.CompanyRecord, error) {
	return d.companies, d.err
}

type stubExporter struct {
	err error
	got *document.Document
}

func (e *stubExporter) Write(w io.Writer, doc *document.Document) error {
	if e.err != nil {
		return e.err
	}
	e.got = doc
	_, err := io.WriteString(w, "%PDF-stub")
	return err
}

var (
	toyota = models.CompanyRecord{ID: "toyota", Name: "TOYOTA CAUCASUS LLC", TaxID: "404567890", Address: "Tbilisi"}
	cic    = models.CompanyRecord{ID: "cic", Name: "CIC", TaxID: "205123456", Address: "Batumi"}
)

func newTestService(dir Directory, exporter Exporter) (*DraftService, *memory.DraftRepository) {
	repo := memory.NewDraftRepository()
	log := logger.New(&config.Config{LogLevel: "error"})
	svc := NewDraftService(repo, dir, exporter, models.DefaultSupplier(), log, nil)
	svc.now = func() time.Time { return time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC) }
	return svc, repo
}

func TestDraftService_Create(t *testing.T) {
	svc, _ := newTestService(&stubDirectory{companies: []models.CompanyRecord{toyota, cic}}, nil)

	id, state, err := svc.Create(context.Background())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatal("expected an id")
	}
	if state.SelectedCompanyID != toyota.ID {
		t.Errorf("expected first company selected, got %q", state.SelectedCompanyID)
	}
	if got := state.Date.Format(models.DateLayout); got != "2024-03-05" {
		t.Errorf("date: got %s", got)
	}
	if len(state.Items) != 1 || state.UnitPriceExclTax != "0" || state.Currency != models.USD {
		t.Errorf("unexpected initial state: %+v", state)
	}
}

func TestDraftService_CreateWithoutDirectory(t *testing.T) {
	svc, _ := newTestService(&stubDirectory{err: errors.New("unreachable")}, nil)

	_, state, err := svc.Create(context.Background())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if state.SelectedCompanyID != "" {
		t.Errorf("expected no selection, got %q", state.SelectedCompanyID)
	}
}

func TestDraftService_Current(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&stubDirectory{}, nil)

	id, _, err := svc.Current(ctx, "")
	if err != nil {
		t.Fatalf("current: %v", err)
	}

	t.Run("existing id kept", func(t *testing.T) {
		got, _, err := svc.Current(ctx, id)
		if err != nil {
			t.Fatalf("current: %v", err)
		}
		if got != id {
			t.Fatalf("expected %s, got %s", id, got)
		}
	})

	t.Run("expired id replaced", func(t *testing.T) {
		got, _, err := svc.Current(ctx, "gone")
		if err != nil {
			t.Fatalf("current: %v", err)
		}
		if got == "gone" || got == "" {
			t.Fatalf("expected a fresh id, got %q", got)
		}
	})
}

func TestDraftService_Edits(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&stubDirectory{companies: []models.CompanyRecord{toyota}}, nil)
	id, _, _ := svc.Create(ctx)

	t.Run("header field", func(t *testing.T) {
		state, err := svc.SetHeaderField(ctx, id, models.FieldInvoiceNumber, "INV-7")
		if err != nil {
			t.Fatalf("set: %v", err)
		}
		if state.InvoiceNumber != "INV-7" {
			t.Fatalf("got %q", state.InvoiceNumber)
		}
	})

	t.Run("header errors", func(t *testing.T) {
		tests := []struct {
			field models.HeaderField
			value string
			want  error
		}{
			{"nope", "x", invoicedomain.ErrUnknownHeaderField},
			{models.FieldCurrency, "EUR", invoicedomain.ErrInvalidHeaderValue},
			{models.FieldDate, "05/03/2024", invoicedomain.ErrInvalidHeaderValue},
		}
		for _, tt := range tests {
			if _, err := svc.SetHeaderField(ctx, id, tt.field, tt.value); !errors.Is(err, tt.want) {
				t.Errorf("%s=%q: expected %v, got %v", tt.field, tt.value, tt.want, err)
			}
		}
		state, _ := svc.Get(ctx, id)
		if state.Currency != models.USD {
			t.Errorf("failed edit changed the draft: %+v", state)
		}
	})

	t.Run("unit price", func(t *testing.T) {
		state, accepted, err := svc.SetUnitPrice(ctx, id, "1250.5")
		if err != nil || !accepted || state.UnitPriceExclTax != "1250.5" {
			t.Fatalf("valid price: accepted=%v err=%v state=%+v", accepted, err, state)
		}
		state, accepted, err = svc.SetUnitPrice(ctx, id, "-3")
		if err != nil || accepted || state.UnitPriceExclTax != "1250.5" {
			t.Fatalf("invalid price: accepted=%v err=%v state=%+v", accepted, err, state)
		}
	})

	t.Run("items", func(t *testing.T) {
		state, err := svc.AddItem(ctx, id)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if len(state.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(state.Items))
		}
		added := state.Items[1].ID

		state, err = svc.UpdateItemDescription(ctx, id, added, "Support")
		if err != nil || state.Items[1].Description != "Support" {
			t.Fatalf("update: err=%v items=%+v", err, state.Items)
		}

		state, err = svc.UpdateItemDescription(ctx, id, "unknown", "x")
		if err != nil || len(state.Items) != 2 {
			t.Fatalf("unknown item should be a no-op: err=%v items=%+v", err, state.Items)
		}

		state, err = svc.RemoveItem(ctx, id, added)
		if err != nil || len(state.Items) != 1 {
			t.Fatalf("remove: err=%v items=%+v", err, state.Items)
		}
	})

	t.Run("reset", func(t *testing.T) {
		state, err := svc.Reset(ctx, id)
		if err != nil {
			t.Fatalf("reset: %v", err)
		}
		if state.InvoiceNumber != "" || state.UnitPriceExclTax != "0" || len(state.Items) != 1 {
			t.Fatalf("unexpected reset state: %+v", state)
		}
		stored, _ := svc.Get(ctx, id)
		if stored.InvoiceNumber != "" {
			t.Fatal("reset was not stored under the same id")
		}
	})

	t.Run("unknown draft", func(t *testing.T) {
		if _, err := svc.AddItem(ctx, "missing"); !errors.Is(err, invoicedomain.ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound, got %v", err)
		}
	})
}

func TestDraftService_Document(t *testing.T) {
	ctx := context.Background()
	dir := &stubDirectory{companies: []models.CompanyRecord{toyota}}
	svc, _ := newTestService(dir, nil)
	id, _, _ := svc.Create(ctx)
	if _, _, err := svc.SetUnitPrice(ctx, id, "100"); err != nil {
		t.Fatalf("price: %v", err)
	}

	doc, err := svc.Document(ctx, id)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if !doc.BuyerResolved || doc.Buyer.Name != toyota.Name {
		t.Errorf("buyer not resolved: %+v", doc.Buyer)
	}
	if doc.Subtotal != "100.00" || doc.Tax != "18.00" || doc.Total != "118.00" {
		t.Errorf("totals: %s %s %s", doc.Subtotal, doc.Tax, doc.Total)
	}

	dir.err = errors.New("unreachable")
	doc, err = svc.Document(ctx, id)
	if err != nil {
		t.Fatalf("document with directory down: %v", err)
	}
	if doc.BuyerResolved {
		t.Error("expected unresolved buyer when the directory is down")
	}

	html, err := svc.RenderHTML(ctx, id)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Contains(html, []byte("118.00")) {
		t.Error("rendered page is missing the total")
	}
}

func TestDraftService_ExportPDF(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		exp := &stubExporter{}
		svc, _ := newTestService(&stubDirectory{}, exp)
		id, _, _ := svc.Create(ctx)
		before, _ := svc.SetHeaderField(ctx, id, models.FieldInvoiceNumber, "INV 7/2024")

		name, data, err := svc.ExportPDF(ctx, id)
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		if name != "Invoice_INV_7_2024.pdf" {
			t.Errorf("file name: %s", name)
		}
		if string(data) != "%PDF-stub" {
			t.Errorf("data: %q", data)
		}
		after, _ := svc.Get(ctx, id)
		if after.InvoiceNumber != before.InvoiceNumber || len(after.Items) != len(before.Items) {
			t.Error("export modified the draft")
		}
	})

	t.Run("blank number", func(t *testing.T) {
		svc, _ := newTestService(&stubDirectory{}, &stubExporter{})
		id, _, _ := svc.Create(ctx)
		name, _, err := svc.ExportPDF(ctx, id)
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		if name != "Invoice_Draft.pdf" {
			t.Errorf("file name: %s", name)
		}
	})

	t.Run("exporter failure", func(t *testing.T) {
		svc, _ := newTestService(&stubDirectory{}, &stubExporter{err: errors.New("boom")})
		id, _, _ := svc.Create(ctx)
		if _, _, err := svc.ExportPDF(ctx, id); !errors.Is(err, invoicedomain.ErrExportFailed) {
			t.Fatalf("expected ErrExportFailed, got %v", err)
		}
	})

	t.Run("no exporter", func(t *testing.T) {
		svc, _ := newTestService(&stubDirectory{}, nil)
		id, _, _ := svc.Create(ctx)
		if _, _, err := svc.ExportPDF(ctx, id); !errors.Is(err, invoicedomain.ErrExportFailed) {
			t.Fatalf("expected ErrExportFailed, got %v", err)
		}
	})
}

func TestDraftService_ReconcileCompanyDeletion(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(&stubDirectory{companies: []models.CompanyRecord{toyota, cic}}, nil)

	onToyota, _, _ := svc.Create(ctx)
	onCIC, _, _ := svc.Create(ctx)
	if _, err := svc.SetHeaderField(ctx, onCIC, models.FieldSelectedCompanyID, cic.ID); err != nil {
		t.Fatalf("select: %v", err)
	}

	changed, err := svc.ReconcileCompanyDeletion(ctx, toyota.ID, []models.CompanyRecord{cic})
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if changed != 1 {
		t.Fatalf("expected 1 changed draft, got %d", changed)
	}
	if s, _ := repo.Get(ctx, onToyota); s.SelectedCompanyID != cic.ID {
		t.Errorf("expected selection moved to %s, got %q", cic.ID, s.SelectedCompanyID)
	}
	if s, _ := repo.Get(ctx, onCIC); s.SelectedCompanyID != cic.ID {
		t.Errorf("unrelated draft changed: %q", s.SelectedCompanyID)
	}

	changed, err = svc.ReconcileCompanyDeletion(ctx, toyota.ID, []models.CompanyRecord{cic})
	if err != nil || changed != 0 {
		t.Fatalf("second run: changed=%d err=%v", changed, err)
	}

	changed, err = svc.ReconcileCompanyDeletion(ctx, cic.ID, nil)
	if err != nil || changed != 2 {
		t.Fatalf("last company: changed=%d err=%v", changed, err)
	}
	for _, id := range []string{onToyota, onCIC} {
		if s, _ := repo.Get(ctx, id); s.SelectedCompanyID != "" {
			t.Errorf("draft %s: expected no selection, got %q", id, s.SelectedCompanyID)
		}
	}
}

func TestNew_ReconcilesOnCompanyDelete(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{LogLevel: "error"}
	log := logger.New(cfg)
	companies := &companysvcs.Services{
		Company: companysvcs.NewCompanyService(companymemory.NewCompanyRepository(
			&companymodels.Company{ID: "toyota", Name: "TOYOTA"},
			&companymodels.Company{ID: "cic", Name: "CIC"},
		), nil, log, nil),
	}

	svcs, err := New(&app.Application{Config: cfg, Logger: log}, companies)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	id, state, err := svcs.Draft.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if state.SelectedCompanyID != "toyota" {
		t.Fatalf("expected toyota selected, got %q", state.SelectedCompanyID)
	}

	if _, err := companies.Company.Delete(ctx, "toyota"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := svcs.Draft.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SelectedCompanyID != "cic" {
		t.Fatalf("expected selection moved to cic, got %q", got.SelectedCompanyID)
	}
}

func TestSupplierFromConfig(t *testing.T) {
	got := SupplierFromConfig(&config.Config{SupplierName: "Other LLC"})
	def := models.DefaultSupplier()
	if got.Name != "Other LLC" {
		t.Errorf("name: got %q", got.Name)
	}
	if got.Account != def.Account || got.TaxID != def.TaxID {
		t.Errorf("unset fields must keep defaults: %+v", got)
	}
}
