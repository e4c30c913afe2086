// Package file stores the company directory as a JSON document on local disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/onyxtech/onyx-invoice/services/company/domain/models"
	"github.com/onyxtech/onyx-invoice/services/company/infrastructure/persistence/jsondoc"
)

// CompanyRepository reads and rewrites the whole document on every call.
// A missing file is an empty directory; the first Add creates it.
type CompanyRepository struct {
	mu   sync.Mutex
	path string
}

// NewCompanyRepository returns a repository over the document at path.
func NewCompanyRepository(path string) *CompanyRepository {
	return &CompanyRepository{path: path}
}

func (r *CompanyRepository) List(_ context.Context) ([]*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *CompanyRepository) Add(_ context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	companies, err := r.read()
	if err != nil {
		return err
	}
	next, err := jsondoc.Append(companies, company)
	if err != nil {
		return err
	}
	return r.write(next)
}

func (r *CompanyRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	companies, err := r.read()
	if err != nil {
		return err
	}
	next, err := jsondoc.Remove(companies, id)
	if err != nil {
		return err
	}
	return r.write(next)
}

// Ping reports whether the document's directory is reachable.
func (r *CompanyRepository) Ping(_ context.Context) error {
	if _, err := os.Stat(filepath.Dir(r.path)); err != nil {
		return fmt.Errorf("stat companies dir: %w", err)
	}
	return nil
}

func (r *CompanyRepository) read() ([]*models.Company, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return jsondoc.Decode(data)
}

// write replaces the document through a temp file and rename, so readers
// never observe a partial document and a failed write leaves the old one.
func (r *CompanyRepository) write(companies []*models.Company) error {
	data, err := jsondoc.Encode(companies)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".companies-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	return nil
}
