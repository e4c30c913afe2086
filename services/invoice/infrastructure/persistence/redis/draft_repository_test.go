package redis

import (
	"context"
	"errors"
	"os"
	"slices"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	invoicedomain "github.com/onyxtech/onyx-invoice/services/invoice/domain"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
)

// Integration tests: skipped unless REDIS_URL is set.
func TestDraftRepositoryIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	client := goredis.NewClient(opts)
	defer client.Close() //nolint:errcheck

	ctx := context.Background()
	repo := NewDraftRepository(client, time.Minute)
	initial := models.NewInvoiceState(time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
		[]models.CompanyRecord{{ID: "c1", Name: "TOYOTA"}})

	id, err := repo.Create(ctx, initial)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { client.Del(context.Background(), key(id)) })

	t.Run("Get round trip", func(t *testing.T) {
		got, err := repo.Get(ctx, id)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !got.Date.Equal(initial.Date) || got.SelectedCompanyID != "c1" || len(got.Items) != 1 {
			t.Fatalf("unexpected draft: %+v", got)
		}
	})

	t.Run("Get missing", func(t *testing.T) {
		if _, err := repo.Get(ctx, "does-not-exist"); !errors.Is(err, invoicedomain.ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound, got %v", err)
		}
	})

	t.Run("Update aborted by mutation error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := repo.Update(ctx, id, func(s models.InvoiceState) (models.InvoiceState, error) {
			return s.WithInvoiceNumber("never"), boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected mutation error, got %v", err)
		}
		got, _ := repo.Get(ctx, id)
		if got.InvoiceNumber == "never" {
			t.Fatal("aborted update was stored")
		}
	})

	t.Run("Concurrent updates are serialized", func(t *testing.T) {
		const n = 10
		var wg sync.WaitGroup
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = repo.Update(ctx, id, func(s models.InvoiceState) (models.InvoiceState, error) {
					return s.AddItem(), nil
				})
			}()
		}
		wg.Wait()

		got, _ := repo.Get(ctx, id)
		if len(got.Items) < 2 {
			t.Fatalf("expected concurrent adds to accumulate, got %d items", len(got.Items))
		}
	})

	t.Run("IDs lists the draft", func(t *testing.T) {
		ids, err := repo.IDs(ctx)
		if err != nil {
			t.Fatalf("ids: %v", err)
		}
		if !slices.Contains(ids, id) {
			t.Fatalf("draft %s not in %v", id, ids)
		}
	})

	t.Run("TTL set", func(t *testing.T) {
		ttl, err := client.TTL(ctx, key(id)).Result()
		if err != nil {
			t.Fatalf("ttl: %v", err)
		}
		if ttl <= 0 || ttl > time.Minute {
			t.Fatalf("unexpected ttl %v", ttl)
		}
	})
}
