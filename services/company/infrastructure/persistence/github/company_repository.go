// Package github stores the company directory as a JSON document committed to
// a GitHub repository through the contents API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	gh "github.com/google/go-github/v66/github"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	companydomain "github.com/onyxtech/onyx-invoice/services/company/domain"
	"github.com/onyxtech/onyx-invoice/services/company/domain/models"
	"github.com/onyxtech/onyx-invoice/services/company/infrastructure/persistence/jsondoc"
)

// CommitMessage is used for every commit that rewrites the document.
const CommitMessage = "Update companies.json via API"

const requestTimeout = 15 * time.Second

// Location identifies the document inside a repository. An empty Branch
// means the repository's default branch.
type Location struct {
	Owner  string
	Repo   string
	Path   string
	Branch string
}

// NewClient returns a go-github client authenticated with token whose
// requests are traced by otelhttp.
func NewClient(token string) *gh.Client {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   requestTimeout,
	}
	return gh.NewClient(httpClient).WithAuthToken(token)
}

// CompanyRepository reads the document and its blob SHA, then writes the
// new content guarded by that SHA. A concurrent commit makes the write fail
// with ErrDirectoryConflict instead of overwriting it.
type CompanyRepository struct {
	mu     sync.Mutex
	client *gh.Client
	loc    Location
}

// NewCompanyRepository returns a repository over the document at loc.
func NewCompanyRepository(client *gh.Client, loc Location) *CompanyRepository {
	return &CompanyRepository{client: client, loc: loc}
}

func (r *CompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	companies, _, err := r.fetch(ctx)
	return companies, err
}

func (r *CompanyRepository) Add(ctx context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	companies, sha, err := r.fetch(ctx)
	if err != nil {
		return err
	}
	next, err := jsondoc.Append(companies, company)
	if err != nil {
		return err
	}
	return r.commit(ctx, next, sha)
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	companies, sha, err := r.fetch(ctx)
	if err != nil {
		return err
	}
	next, err := jsondoc.Remove(companies, id)
	if err != nil {
		return err
	}
	return r.commit(ctx, next, sha)
}

// Ping checks that the repository is reachable with the configured token.
func (r *CompanyRepository) Ping(ctx context.Context) error {
	if _, _, err := r.client.Repositories.Get(ctx, r.loc.Owner, r.loc.Repo); err != nil {
		return fmt.Errorf("github: get repository: %w", err)
	}
	return nil
}

// fetch returns the decoded document and its blob SHA. A missing document
// is an empty directory with an empty SHA.
func (r *CompanyRepository) fetch(ctx context.Context) ([]*models.Company, string, error) {
	var opts *gh.RepositoryContentGetOptions
	if r.loc.Branch != "" {
		opts = &gh.RepositoryContentGetOptions{Ref: r.loc.Branch}
	}
	file, _, resp, err := r.client.Repositories.GetContents(ctx, r.loc.Owner, r.loc.Repo, r.loc.Path, opts)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("github: get %s: %w", r.loc.Path, err)
	}
	if file == nil {
		return nil, "", fmt.Errorf("github: %s is a directory", r.loc.Path)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, "", fmt.Errorf("github: decode %s: %w", r.loc.Path, err)
	}
	companies, err := jsondoc.Decode([]byte(content))
	if err != nil {
		return nil, "", err
	}
	return companies, file.GetSHA(), nil
}

func (r *CompanyRepository) commit(ctx context.Context, companies []*models.Company, sha string) error {
	data, err := jsondoc.Encode(companies)
	if err != nil {
		return err
	}

	opts := &gh.RepositoryContentFileOptions{
		Message: gh.String(CommitMessage),
		Content: data,
	}
	if sha != "" {
		opts.SHA = gh.String(sha)
	}
	if r.loc.Branch != "" {
		opts.Branch = gh.String(r.loc.Branch)
	}

	var resp *gh.Response
	if sha == "" {
		_, resp, err = r.client.Repositories.CreateFile(ctx, r.loc.Owner, r.loc.Repo, r.loc.Path, opts)
	} else {
		_, resp, err = r.client.Repositories.UpdateFile(ctx, r.loc.Owner, r.loc.Repo, r.loc.Path, opts)
	}
	if err != nil {
		if isConflict(resp) {
			return fmt.Errorf("%w: %w", companydomain.ErrDirectoryConflict, err)
		}
		return fmt.Errorf("github: commit %s: %w", r.loc.Path, err)
	}
	return nil
}

// isConflict reports a stale or missing SHA. GitHub answers 409 for a SHA
// mismatch and 422 when a SHA is required but absent.
func isConflict(resp *gh.Response) bool {
	if resp == nil {
		return false
	}
	return resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity
}
