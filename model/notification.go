package model

import (
	"time"

	"github.com/muhammadheryan/sanitary-shop/constant"
)

type Toast struct {
	ID        uint64            `json:"id"`
	Text      string            `json:"text"`
	Severity  constant.Severity `json:"severity"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// ToastExpiration identifies a toast due for removal.
type ToastExpiration struct {
	SessionID string    `json:"session_id"`
	ToastID   uint64    `json:"toast_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type NotificationListResponse struct {
	Items []Toast `json:"items"`
}
