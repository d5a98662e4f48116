package context_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/car-market/model"
	utilsContext "github.com/muhammadheryan/car-market/utils/context"
	"github.com/stretchr/testify/assert"
)

func TestClaimsRoundTrip(t *testing.T) {
	_, ok := utilsContext.GetClaims(context.Background())
	assert.False(t, ok)

	ctx := utilsContext.WithClaims(context.Background(), &model.SessionClaims{ID: 3, Email: "a@b.fr"})
	claims, ok := utilsContext.GetClaims(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint64(3), claims.ID)

	id, ok := utilsContext.GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint64(3), id)
}

func TestCanActOn(t *testing.T) {
	user := utilsContext.WithClaims(context.Background(), &model.SessionClaims{ID: 3})
	admin := utilsContext.WithClaims(context.Background(), &model.SessionClaims{ID: 9, Admin: true})

	assert.True(t, utilsContext.CanActOn(user, 3))
	assert.False(t, utilsContext.CanActOn(user, 4))
	assert.True(t, utilsContext.CanActOn(admin, 4))
	assert.False(t, utilsContext.CanActOn(context.Background(), 3))
}
