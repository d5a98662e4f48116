package context

import (
	"context"

	"github.com/muhammadheryan/car-market/constant"
	"github.com/muhammadheryan/car-market/model"
)

func WithClaims(ctx context.Context, claims *model.SessionClaims) context.Context {
	return context.WithValue(ctx, constant.ClaimsKey, claims)
}

func GetClaims(ctx context.Context) (*model.SessionClaims, bool) {
	v := ctx.Value(constant.ClaimsKey)
	if v == nil {
		return nil, false
	}
	claims, ok := v.(*model.SessionClaims)
	return claims, ok && claims != nil
}

func GetUserID(ctx context.Context) (uint64, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return 0, false
	}
	return claims.ID, true
}

// CanActOn reports whether the session owns the resource of ownerID or is an admin.
func CanActOn(ctx context.Context, ownerID uint64) bool {
	claims, ok := GetClaims(ctx)
	if !ok {
		return false
	}
	return claims.Admin || claims.ID == ownerID
}
