// Package redis persists in-progress questionnaire drafts. A draft is one
// JSON document keyed by its session id with a sliding TTL; submission or
// expiry removes it.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"candidate-intake-api/internal/storage"
	"candidate-intake-api/internal/wizard"

	goredis "github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "questionnaire:draft:"

// DraftStore implements storage.DraftStore on a redis client.
type DraftStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewDraftStore creates a DraftStore. A non-positive ttl defaults to 24h.
func NewDraftStore(client *goredis.Client, ttl time.Duration) *DraftStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &DraftStore{client: client, ttl: ttl}
}

var _ storage.DraftStore = (*DraftStore)(nil)

func draftKey(sessionID string) string {
	return draftKeyPrefix + sessionID
}

// Create stores a new draft; an existing session id is a conflict.
func (s *DraftStore) Create(ctx context.Context, d *wizard.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	ok, err := s.client.SetNX(ctx, draftKey(d.SessionID), payload, s.ttl).Result()
	if err != nil {
		log.Printf("Error creating draft %s: %v", d.SessionID, err)
		return fmt.Errorf("failed to create draft: %w", err)
	}
	if !ok {
		return storage.ErrConflict
	}
	return nil
}

// Get loads a draft and refreshes its TTL.
func (s *DraftStore) Get(ctx context.Context, sessionID string) (*wizard.Draft, error) {
	payload, err := s.client.Get(ctx, draftKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error loading draft %s: %v", sessionID, err)
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	var d wizard.Draft
	if err := json.Unmarshal(payload, &d); err != nil {
		return nil, fmt.Errorf("failed to decode draft %s: %w", sessionID, err)
	}
	// Sliding expiry: activity keeps the session alive.
	if err := s.client.Expire(ctx, draftKey(sessionID), s.ttl).Err(); err != nil {
		log.Printf("Error refreshing TTL for draft %s: %v", sessionID, err)
	}
	return &d, nil
}

// Save overwrites an existing draft, resetting the TTL.
func (s *DraftStore) Save(ctx context.Context, d *wizard.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(d.SessionID), payload, s.ttl).Err(); err != nil {
		log.Printf("Error saving draft %s: %v", d.SessionID, err)
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Delete removes a draft, typically after successful submission.
func (s *DraftStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		log.Printf("Error deleting draft %s: %v", sessionID, err)
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
