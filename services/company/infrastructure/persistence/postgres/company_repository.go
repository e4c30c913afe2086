package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/onyxtech/onyx-invoice/pkg/database"
	"github.com/onyxtech/onyx-invoice/pkg/events"
	companydomain "github.com/onyxtech/onyx-invoice/services/company/domain"
	domainevents "github.com/onyxtech/onyx-invoice/services/company/domain/events"
	"github.com/onyxtech/onyx-invoice/services/company/domain/models"
	"github.com/onyxtech/onyx-invoice/services/company/infrastructure/persistence/postgres/db"
)

const uniqueViolation = "23505"

// CompanyRepository implements repositories.CompanyRepository against PostgreSQL.
type CompanyRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewCompanyRepository returns a CompanyRepository backed by the given pool.
// When bus is non-nil, deletes publish a CompanyDeletedEvent in the same transaction.
func NewCompanyRepository(database *database.Database, bus *events.EventBus) *CompanyRepository {
	return &CompanyRepository{db: database, bus: bus}
}

// List returns all companies ordered by creation time.
func (r *CompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	rows, err := db.New(r.db.DB()).ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	companies := make([]*models.Company, len(rows))
	for i, row := range rows {
		companies[i] = rowToCompany(row)
	}
	return companies, nil
}

// Add inserts a company. Returns ErrCompanyAlreadyExists on a duplicate id.
func (r *CompanyRepository) Add(ctx context.Context, company *models.Company) error {
	err := db.New(r.db.DB()).InsertCompany(ctx, db.InsertCompanyParams{
		ID:        company.ID,
		Name:      company.Name,
		TaxID:     company.TaxID,
		Address:   company.Address,
		CreatedAt: company.CreatedAt,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return companydomain.ErrCompanyAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// Delete removes a company and publishes CompanyDeletedEvent within the same transaction.
func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteCompany(ctx, id)
		if err != nil {
			return fmt.Errorf("delete company: %w", err)
		}
		if n == 0 {
			return companydomain.ErrCompanyNotFound
		}

		if r.bus != nil {
			if err := r.publishDeleted(ctx, tx, id); err != nil {
				return fmt.Errorf("publish company deleted: %w", err)
			}
		}
		return nil
	})
}

func (r *CompanyRepository) publishDeleted(ctx context.Context, tx *sql.Tx, id string) error {
	event := domainevents.CompanyDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		CompanyID:  id,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := events.NewMessage(ctx, event.EventID.String(), event.Version, payload)
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicCompanyDeleted, msg)
}

func rowToCompany(row db.Company) *models.Company {
	return &models.Company{
		ID:        row.ID,
		Name:      row.Name,
		TaxID:     row.TaxID,
		Address:   row.Address,
		CreatedAt: row.CreatedAt,
	}
}
