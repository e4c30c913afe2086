package services

import (
	"context"
	"fmt"

	"github.com/onyxtech/onyx-invoice/pkg/app"
	"github.com/onyxtech/onyx-invoice/pkg/cache"
	"github.com/onyxtech/onyx-invoice/pkg/config"
	"github.com/onyxtech/onyx-invoice/services/company/domain/repositories"
	"github.com/onyxtech/onyx-invoice/services/company/infrastructure/persistence/file"
	"github.com/onyxtech/onyx-invoice/services/company/infrastructure/persistence/github"
	"github.com/onyxtech/onyx-invoice/services/company/infrastructure/persistence/postgres"
)

// Pinger is implemented by backends that can report their own health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Company *CompanyService
	// Backend is the configured repository when it can be health-checked
	// on its own; nil for postgres, whose pool is probed directly.
	Backend Pinger
}

// New wires the company directory with the backend named by DIRECTORY_BACKEND.
func New(a *app.Application) (*Services, error) {
	repo, err := NewRepository(a)
	if err != nil {
		return nil, err
	}

	var dirCache *cache.DirectoryCache
	if a.Redis != nil {
		dirCache = cache.NewDirectoryCache(a.Redis)
	}

	svcs := &Services{Company: NewCompanyService(repo, dirCache, a.Logger, a.Metrics)}
	if p, ok := repo.(Pinger); ok && a.Config.DirectoryBackend != config.BackendPostgres {
		svcs.Backend = p
	}
	return svcs, nil
}

// NewRepository returns the CompanyRepository for the configured backend.
func NewRepository(a *app.Application) (repositories.CompanyRepository, error) {
	cfg := a.Config
	switch cfg.DirectoryBackend {
	case config.BackendPostgres:
		if a.Db == nil {
			return nil, fmt.Errorf("directory backend %q requires a database", cfg.DirectoryBackend)
		}
		return postgres.NewCompanyRepository(a.Db, a.EventBus), nil
	case config.BackendGitHub:
		if cfg.GitHubToken == "" {
			return nil, fmt.Errorf("directory backend %q requires GITHUB_PAT", cfg.DirectoryBackend)
		}
		return github.NewCompanyRepository(github.NewClient(cfg.GitHubToken), github.Location{
			Owner:  cfg.GitHubOwner,
			Repo:   cfg.GitHubRepo,
			Path:   cfg.GitHubPath,
			Branch: cfg.GitHubBranch,
		}), nil
	case config.BackendFile, "":
		return file.NewCompanyRepository(cfg.CompaniesFile), nil
	default:
		return nil, fmt.Errorf("unknown directory backend %q", cfg.DirectoryBackend)
	}
}
