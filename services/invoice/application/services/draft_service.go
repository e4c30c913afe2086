package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/onyxtech/onyx-invoice/pkg/logger"
	"github.com/onyxtech/onyx-invoice/pkg/telemetry"
	invoicedomain "github.com/onyxtech/onyx-invoice/services/invoice/domain"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/document"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/repositories"
)

// Directory is the read side of the company directory.
type Directory interface {
	List(ctx context.Context) ([]models.CompanyRecord, error)
}

// Exporter writes a document as a file.
type Exporter interface {
	Write(w io.Writer, doc *document.Document) error
}

// DraftService orchestrates edits, preview and export of invoice drafts.
// Drafts only change through the repository's Update, so concurrent edits
// of one draft are applied one at a time.
type DraftService struct {
	repo     repositories.DraftRepository
	dir      Directory
	exporter Exporter
	supplier models.SupplierInfo
	log      logger.Logger
	metrics  *telemetry.Metrics
	now      func() time.Time
}

// NewDraftService returns a DraftService. exporter and metrics may be nil;
// without an exporter ExportPDF fails with ErrExportFailed.
func NewDraftService(
	repo repositories.DraftRepository,
	dir Directory,
	exporter Exporter,
	supplier models.SupplierInfo,
	log logger.Logger,
	metrics *telemetry.Metrics,
) *DraftService {
	return &DraftService{
		repo:     repo,
		dir:      dir,
		exporter: exporter,
		supplier: supplier,
		log:      log,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Create stores a fresh initial draft.
func (s *DraftService) Create(ctx context.Context) (string, models.InvoiceState, error) {
	state := models.NewInvoiceState(s.now(), s.companies(ctx))
	id, err := s.repo.Create(ctx, state)
	if err != nil {
		return "", models.InvoiceState{}, fmt.Errorf("create draft: %w", err)
	}
	s.log.DebugContext(ctx, "draft created", "draft_id", id)
	return id, state, nil
}

// Get returns the draft stored under id.
func (s *DraftService) Get(ctx context.Context, id string) (models.InvoiceState, error) {
	state, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.InvoiceState{}, wrap("get draft", err)
	}
	return state, nil
}

// Current returns the draft stored under id, creating a fresh one when id
// is empty or the draft has expired. The returned id is the one to keep.
func (s *DraftService) Current(ctx context.Context, id string) (string, models.InvoiceState, error) {
	if id != "" {
		state, err := s.repo.Get(ctx, id)
		if err == nil {
			return id, state, nil
		}
		if !errors.Is(err, invoicedomain.ErrDraftNotFound) {
			return "", models.InvoiceState{}, fmt.Errorf("get draft: %w", err)
		}
	}
	return s.Create(ctx)
}

// SetHeaderField replaces one header value.
func (s *DraftService) SetHeaderField(ctx context.Context, id string, field models.HeaderField, value string) (models.InvoiceState, error) {
	state, err := s.repo.Update(ctx, id, func(cur models.InvoiceState) (models.InvoiceState, error) {
		return cur.SetHeaderField(field, value)
	})
	if err != nil {
		return models.InvoiceState{}, wrap("set header field", err)
	}
	return state, nil
}

// SetUnitPrice stores text when it is a non-negative decimal or empty.
// Rejected text leaves the draft as it was and reports accepted=false.
func (s *DraftService) SetUnitPrice(ctx context.Context, id, text string) (state models.InvoiceState, accepted bool, err error) {
	state, err = s.repo.Update(ctx, id, func(cur models.InvoiceState) (models.InvoiceState, error) {
		var next models.InvoiceState
		next, accepted = cur.SetUnitPrice(text)
		return next, nil
	})
	if err != nil {
		return models.InvoiceState{}, false, wrap("set unit price", err)
	}
	return state, accepted, nil
}

// AddItem appends a blank line. The new item is the last in the returned state.
func (s *DraftService) AddItem(ctx context.Context, id string) (models.InvoiceState, error) {
	return s.apply(ctx, id, "add item", models.InvoiceState.AddItem)
}

// UpdateItemDescription replaces one line's description. Unknown item ids are a no-op.
func (s *DraftService) UpdateItemDescription(ctx context.Context, id, itemID, description string) (models.InvoiceState, error) {
	return s.apply(ctx, id, "update item", func(cur models.InvoiceState) models.InvoiceState {
		return cur.UpdateItemDescription(itemID, description)
	})
}

// RemoveItem drops one line. Unknown item ids are a no-op.
func (s *DraftService) RemoveItem(ctx context.Context, id, itemID string) (models.InvoiceState, error) {
	return s.apply(ctx, id, "remove item", func(cur models.InvoiceState) models.InvoiceState {
		return cur.RemoveItem(itemID)
	})
}

// Reset replaces the draft with a fresh initial state under the same id.
func (s *DraftService) Reset(ctx context.Context, id string) (models.InvoiceState, error) {
	state := models.NewInvoiceState(s.now(), s.companies(ctx))
	if err := s.repo.Replace(ctx, id, state); err != nil {
		return models.InvoiceState{}, fmt.Errorf("reset draft: %w", err)
	}
	return state, nil
}

func (s *DraftService) apply(ctx context.Context, id, op string, edit func(models.InvoiceState) models.InvoiceState) (models.InvoiceState, error) {
	state, err := s.repo.Update(ctx, id, func(cur models.InvoiceState) (models.InvoiceState, error) {
		return edit(cur), nil
	})
	if err != nil {
		return models.InvoiceState{}, wrap(op, err)
	}
	return state, nil
}

// Document builds the printable view of the draft. When the directory is
// unreachable the buyer block is left empty rather than failing the preview.
func (s *DraftService) Document(ctx context.Context, id string) (*document.Document, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	doc, err := document.Compose(state, s.companies(ctx), s.supplier)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordRender(ctx, time.Since(start))
	return doc, nil
}

// RenderHTML returns the standalone HTML preview of the draft.
func (s *DraftService) RenderHTML(ctx context.Context, id string) ([]byte, error) {
	doc, err := s.Document(ctx, id)
	if err != nil {
		return nil, err
	}
	return document.RenderHTML(doc)
}

// ExportPDF renders the draft to PDF and returns the download file name with
// the file bytes. The draft itself is never modified by an export.
func (s *DraftService) ExportPDF(ctx context.Context, id string) (filename string, data []byte, err error) {
	defer func() { s.metrics.RecordExport(ctx, err) }()

	doc, err := s.Document(ctx, id)
	if err != nil {
		return "", nil, err
	}
	data, err = s.export(doc)
	if err != nil {
		s.log.ErrorContext(ctx, "pdf export failed", "draft_id", id, "error", err)
		return "", nil, err
	}
	return document.FileName(doc.InvoiceNumber), data, nil
}

func (s *DraftService) export(doc *document.Document) ([]byte, error) {
	if s.exporter == nil {
		return nil, fmt.Errorf("%w: no exporter configured", invoicedomain.ErrExportFailed)
	}
	var buf bytes.Buffer
	if err := s.exporter.Write(&buf, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", invoicedomain.ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}

// ReconcileCompanyDeletion moves every stored draft that selected deletedID
// onto the first remaining company, or clears the selection when none
// remain. It returns how many drafts changed. It is safe to run more than
// once for the same deletion.
func (s *DraftService) ReconcileCompanyDeletion(ctx context.Context, deletedID string, remaining []models.CompanyRecord) (int, error) {
	ids, err := s.repo.IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list drafts: %w", err)
	}

	var (
		changed int
		errs    []error
	)
	for _, id := range ids {
		state, err := s.repo.Get(ctx, id)
		if err != nil {
			if !errors.Is(err, invoicedomain.ErrDraftNotFound) {
				errs = append(errs, fmt.Errorf("draft %s: %w", id, err))
			}
			continue
		}
		if state.SelectedCompanyID != deletedID {
			continue
		}
		_, err = s.repo.Update(ctx, id, func(cur models.InvoiceState) (models.InvoiceState, error) {
			return cur.ReconcileCompanyDeletion(deletedID, remaining), nil
		})
		if err != nil {
			if !errors.Is(err, invoicedomain.ErrDraftNotFound) {
				errs = append(errs, fmt.Errorf("draft %s: %w", id, err))
			}
			continue
		}
		changed++
	}

	if changed > 0 {
		s.log.InfoContext(ctx, "drafts reconciled after company deletion",
			"company_id", deletedID, "drafts", changed)
	}
	return changed, errors.Join(errs...)
}

// companies lists the directory, degrading to an empty list when it is
// unreachable.
func (s *DraftService) companies(ctx context.Context) []models.CompanyRecord {
	if s.dir == nil {
		return nil
	}
	companies, err := s.dir.List(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "company directory unavailable", "error", err)
		return nil
	}
	return companies
}

func wrap(op string, err error) error {
	if errors.Is(err, invoicedomain.ErrDraftNotFound) ||
		errors.Is(err, invoicedomain.ErrUnknownHeaderField) ||
		errors.Is(err, invoicedomain.ErrInvalidHeaderValue) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
