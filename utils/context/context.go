package context

import (
	"context"

	"github.com/muhammadheryan/sanitary-shop/constant"
)

func GetAdminUser(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(constant.AdminUserKey).(string)
	return v, ok && v != ""
}

func WithAdminUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, constant.AdminUserKey, username)
}

func GetSessionID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(constant.SessionIDKey).(string)
	return v, ok && v != ""
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, constant.SessionIDKey, sessionID)
}
