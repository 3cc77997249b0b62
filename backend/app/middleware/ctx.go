package middleware

import (
	"context"

	"ztna-portal/backend/app/models"
)

type ctxKey int

const UserKey ctxKey = 1

func GetUser(ctx context.Context) *models.User {
	if v := ctx.Value(UserKey); v != nil {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
