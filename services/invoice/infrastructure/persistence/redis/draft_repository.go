// Package redis stores invoice drafts in Redis as JSON values with a TTL.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	invoicedomain "github.com/onyxtech/onyx-invoice/services/invoice/domain"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/repositories"
)

const (
	draftKeyPrefix   = "draft:"
	maxUpdateRetries = 5
	scanBatch        = 100
)

// DraftRepository implements repositories.DraftRepository on Redis.
// Key format: "draft:{id}". Every write refreshes the TTL, so a draft
// expires only after ttl without edits.
type DraftRepository struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewDraftRepository returns a DraftRepository. A zero ttl keeps drafts forever.
func NewDraftRepository(client *goredis.Client, ttl time.Duration) *DraftRepository {
	return &DraftRepository{client: client, ttl: ttl}
}

func (r *DraftRepository) Create(ctx context.Context, s models.InvoiceState) (string, error) {
	id := uuid.NewString()
	payload, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode draft: %w", err)
	}
	ok, err := r.client.SetNX(ctx, key(id), payload, r.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("create draft: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("create draft: id %s already taken", id)
	}
	return id, nil
}

func (r *DraftRepository) Get(ctx context.Context, id string) (models.InvoiceState, error) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return models.InvoiceState{}, invoicedomain.ErrDraftNotFound
	}
	if err != nil {
		return models.InvoiceState{}, fmt.Errorf("get draft: %w", err)
	}
	return decode(data)
}

// Update runs fn inside WATCH/MULTI so concurrent edits of the same draft
// are applied one after another instead of overwriting each other.
func (r *DraftRepository) Update(ctx context.Context, id string, fn repositories.DraftMutation) (models.InvoiceState, error) {
	k := key(id)
	var next models.InvoiceState

	txf := func(tx *goredis.Tx) error {
		data, err := tx.Get(ctx, k).Bytes()
		if errors.Is(err, goredis.Nil) {
			return invoicedomain.ErrDraftNotFound
		}
		if err != nil {
			return fmt.Errorf("get draft: %w", err)
		}
		current, err := decode(data)
		if err != nil {
			return err
		}
		next, err = fn(current)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode draft: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, k, payload, r.ttl)
			return nil
		})
		return err
	}

	for range maxUpdateRetries {
		err := r.client.Watch(ctx, txf, k)
		if err == nil {
			return next, nil
		}
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return models.InvoiceState{}, err
	}
	return models.InvoiceState{}, fmt.Errorf("update draft %s: too many concurrent edits", id)
}

func (r *DraftRepository) Replace(ctx context.Context, id string, s models.InvoiceState) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := r.client.Set(ctx, key(id), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("replace draft: %w", err)
	}
	return nil
}

func (r *DraftRepository) IDs(ctx context.Context) ([]string, error) {
	var ids []string
	iter := r.client.Scan(ctx, 0, draftKeyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), draftKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan drafts: %w", err)
	}
	return ids, nil
}

func key(id string) string {
	return draftKeyPrefix + id
}

func decode(data []byte) (models.InvoiceState, error) {
	var s models.InvoiceState
	if err := json.Unmarshal(data, &s); err != nil {
		return models.InvoiceState{}, fmt.Errorf("decode draft: %w", err)
	}
	return s, nil
}
