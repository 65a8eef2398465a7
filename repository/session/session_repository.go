package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/repository/storage"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository tracks admin tokens that have been issued and not revoked.
// An entry stops resolving once its expiry passes and is removed on that read.
type SessionRepository interface {
	SetSession(ctx context.Context, tokenID, username string, expiresAt time.Time) error
	GetSession(ctx context.Context, tokenID string) (string, error)
	DeleteSession(ctx context.Context, tokenID string) error
}

type adminSession struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

type repo struct {
	store storage.Storage
}

func NewSessionRepository(store storage.Storage) SessionRepository {
	return &repo{store: store}
}

func (r *repo) SetSession(ctx context.Context, tokenID, username string, expiresAt time.Time) error {
	b, err := json.Marshal(adminSession{Username: username, ExpiresAt: expiresAt.UTC()})
	if err != nil {
		return err
	}
	return r.store.Set(ctx, constant.AdminTokenPrefix+tokenID, string(b))
}

func (r *repo) GetSession(ctx context.Context, tokenID string) (string, error) {
	key := constant.AdminTokenPrefix + tokenID
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrSessionNotFound
		}
		return "", err
	}

	var s adminSession
	if err := json.Unmarshal([]byte(raw), &s); err != nil || !time.Now().Before(s.ExpiresAt) {
		if err := r.store.Remove(ctx, key); err != nil {
			return "", err
		}
		return "", ErrSessionNotFound
	}
	return s.Username, nil
}

func (r *repo) DeleteSession(ctx context.Context, tokenID string) error {
	return r.store.Remove(ctx, constant.AdminTokenPrefix+tokenID)
}
