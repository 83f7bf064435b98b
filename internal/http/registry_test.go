package http

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"bibliophile/internal/entity"
	"bibliophile/internal/session"
	"bibliophile/internal/testutil"
)

func TestRegistryFor_CachesScopePerUser(t *testing.T) {
	registry, libRepo, listRepo := newTestRegistry(t)
	expectScopeLoad(libRepo, listRepo, []entity.Book{testutil.TestBook})

	user := testutil.TestIdentity
	first := registry.For(context.Background(), &user)
	second := registry.For(context.Background(), &user)

	// Same scope object, loaded once.
	assert.Same(t, first, second)
}

func TestRegistryFor_IsolatesUsers(t *testing.T) {
	registry, libRepo, listRepo := newTestRegistry(t)

	libRepo.EXPECT().ListByUser(gomock.Any(), "user-a").Return([]entity.Book{testutil.TestBook}, nil)
	listRepo.EXPECT().ListByUser(gomock.Any(), "user-a").Return(nil, nil)
	libRepo.EXPECT().ListByUser(gomock.Any(), "user-b").Return(nil, nil)
	listRepo.EXPECT().ListByUser(gomock.Any(), "user-b").Return(nil, nil)

	scopeA := registry.For(context.Background(), &session.Identity{ID: "user-a"})
	scopeB := registry.For(context.Background(), &session.Identity{ID: "user-b"})

	assert.NotSame(t, scopeA, scopeB)
	assert.Len(t, scopeA.Library.Books(), 1)
	assert.Empty(t, scopeB.Library.Books())
}

func TestSessionSubscriber_TearsDownOnLogout(t *testing.T) {
	registry, libRepo, listRepo := newTestRegistry(t)
	// Built once by the subscriber, rebuilt after the nil broadcast drops it.
	expectScopeLoad(libRepo, listRepo, nil)
	expectScopeLoad(libRepo, listRepo, nil)

	subscriber := registry.SessionSubscriber()
	user := testutil.TestIdentity

	subscriber(&user)
	first := registry.For(context.Background(), &user)

	subscriber(nil)
	second := registry.For(context.Background(), &user)

	assert.NotSame(t, first, second)
}
