package booklist_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bibliophile/internal/booklist"
	"bibliophile/internal/entity"
	"bibliophile/internal/notify"
	"bibliophile/internal/store/mocks"
	"bibliophile/internal/testutil"
)

func newService(t *testing.T) (*booklist.Service, *mocks.MockBookListRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockBookListRepository(ctrl)
	return booklist.NewService(repo, notify.NewLogNotifier()), repo
}

func signedIn(t *testing.T, svc *booklist.Service, repo *mocks.MockBookListRepository, lists []entity.BookList) {
	t.Helper()
	repo.EXPECT().
		ListByUser(gomock.Any(), testutil.TestIdentity.ID).
		Return(lists, nil)
	for _, l := range lists {
		repo.EXPECT().CountBooks(gomock.Any(), l.ID).Return(l.BookCount, nil)
	}
	user := testutil.TestIdentity
	svc.SetIdentity(context.Background(), &user)
}

func TestReload_PopulatesPerListCounts(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().
		ListByUser(gomock.Any(), testutil.TestIdentity.ID).
		Return([]entity.BookList{{ID: "list-1", Name: "Favorites"}, {ID: "list-2", Name: "To Read"}}, nil)
	repo.EXPECT().CountBooks(gomock.Any(), "list-1").Return(3, nil)
	repo.EXPECT().CountBooks(gomock.Any(), "list-2").Return(0, nil)

	user := testutil.TestIdentity
	svc.SetIdentity(context.Background(), &user)

	lists := svc.Lists()
	require.Len(t, lists, 2)
	assert.Equal(t, 3, lists[0].BookCount)
	assert.Equal(t, 0, lists[1].BookCount)
}

func TestReload_CountFailureKeepsList(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().
		ListByUser(gomock.Any(), testutil.TestIdentity.ID).
		Return([]entity.BookList{{ID: "list-1", Name: "Favorites"}}, nil)
	repo.EXPECT().CountBooks(gomock.Any(), "list-1").Return(0, errors.New("timeout"))

	user := testutil.TestIdentity
	svc.SetIdentity(context.Background(), &user)

	lists := svc.Lists()
	require.Len(t, lists, 1)
	assert.Equal(t, 0, lists[0].BookCount)
}

func TestCreate(t *testing.T) {
	svc, repo := newService(t)
	signedIn(t, svc, repo, nil)

	repo.EXPECT().
		Insert(gomock.Any(), testutil.TestIdentity.ID, "Summer Reads", "Beach books", false).
		Return(entity.BookList{ID: "list-new", Name: "Summer Reads", Description: "Beach books"}, nil)

	id, n := svc.Create(context.Background(), "Summer Reads", "Beach books", false)

	assert.Equal(t, "list-new", id)
	assert.Equal(t, notify.LevelSuccess, n.Level)

	created, ok := svc.Get("list-new")
	require.True(t, ok)
	assert.Equal(t, 0, created.BookCount)
}

func TestCreate_RequiresSession(t *testing.T) {
	svc, _ := newService(t)

	id, n := svc.Create(context.Background(), "Summer Reads", "", false)

	assert.Empty(t, id)
	assert.Equal(t, notify.CodeAuthRequired, n.Code)
}

func TestUpdate_PartialFields(t *testing.T) {
	svc, repo := newService(t)
	signedIn(t, svc, repo, []entity.BookList{{ID: "list-1", Name: "Favorites", Description: "old"}})

	name := "Essentials"
	fields := booklist.UpdateFields{Name: &name}

	repo.EXPECT().
		Update(gomock.Any(), testutil.TestIdentity.ID, "list-1", fields).
		Return(nil)

	n := svc.Update(context.Background(), "list-1", fields)

	assert.Equal(t, notify.LevelSuccess, n.Level)
	updated, _ := svc.Get("list-1")
	assert.Equal(t, "Essentials", updated.Name)
	assert.Equal(t, "old", updated.Description)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestDelete(t *testing.T) {
	svc, repo := newService(t)
	signedIn(t, svc, repo, []entity.BookList{{ID: "list-1", Name: "Favorites"}})

	repo.EXPECT().
		Delete(gomock.Any(), testutil.TestIdentity.ID, "list-1").
		Return(nil)

	n := svc.Delete(context.Background(), "list-1")

	assert.Equal(t, notify.LevelSuccess, n.Level)
	_, ok := svc.Get("list-1")
	assert.False(t, ok)
}

func TestAddBook(t *testing.T) {
	svc, repo := newService(t)
	signedIn(t, svc, repo, []entity.BookList{{ID: "list-1", Name: "Favorites", BookCount: 2}})

	repo.EXPECT().MembershipExists(gomock.Any(), "list-1", "vol-1").Return(false, nil)
	repo.EXPECT().InsertMembership(gomock.Any(), "list-1", "vol-1").Return(nil)

	n := svc.AddBook(context.Background(), "list-1", "vol-1")

	assert.Equal(t, notify.LevelSuccess, n.Level)
	list, _ := svc.Get("list-1")
	assert.Equal(t, 3, list.BookCount)
}

func TestAddBook_ExistingMembershipIsNoop(t *testing.T) {
	svc, repo := newService(t)
	signedIn(t, svc, repo, []entity.BookList{{ID: "list-1", Name: "Favorites", BookCount: 2}})

	// Existence is checked first; no insert goes out.
	repo.EXPECT().MembershipExists(gomock.Any(), "list-1", "vol-1").Return(true, nil)

	n := svc.AddBook(context.Background(), "list-1", "vol-1")

	assert.Equal(t, notify.LevelInfo, n.Level)
	assert.Equal(t, notify.CodeDuplicate, n.Code)
	list, _ := svc.Get("list-1")
	assert.Equal(t, 2, list.BookCount)
}

func TestAddBook_InsertFailureLeavesCount(t *testing.T) {
	svc, repo := newService(t)
	signedIn(t, svc, repo, []entity.BookList{{ID: "list-1", Name: "Favorites", BookCount: 2}})

	repo.EXPECT().MembershipExists(gomock.Any(), "list-1", "vol-1").Return(false, nil)
	repo.EXPECT().InsertMembership(gomock.Any(), "list-1", "vol-1").Return(errors.New("timeout"))

	n := svc.AddBook(context.Background(), "list-1", "vol-1")

	assert.Equal(t, notify.CodeRemoteError, n.Code)
	list, _ := svc.Get("list-1")
	assert.Equal(t, 2, list.BookCount)
}

func TestRemoveBook_CountFloorsAtZero(t *testing.T) {
	svc, repo := newService(t)
	signedIn(t, svc, repo, []entity.BookList{{ID: "list-1", Name: "Favorites", BookCount: 0}})

	repo.EXPECT().DeleteMembership(gomock.Any(), "list-1", "vol-1").Return(nil)

	n := svc.RemoveBook(context.Background(), "list-1", "vol-1")

	assert.Equal(t, notify.LevelSuccess, n.Level)
	list, _ := svc.Get("list-1")
	assert.Equal(t, 0, list.BookCount)
}

func TestBookIDs_FailureYieldsEmptySlice(t *testing.T) {
	svc, repo := newService(t)
	signedIn(t, svc, repo, []entity.BookList{{ID: "list-1", Name: "Favorites"}})

	repo.EXPECT().ListBookIDs(gomock.Any(), "list-1").Return(nil, errors.New("timeout"))

	ids := svc.BookIDs(context.Background(), "list-1")

	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestBookIDs(t *testing.T) {
	svc, repo := newService(t)
	signedIn(t, svc, repo, []entity.BookList{{ID: "list-1", Name: "Favorites"}})

	repo.EXPECT().ListBookIDs(gomock.Any(), "list-1").Return([]string{"vol-1", "vol-2"}, nil)

	ids := svc.BookIDs(context.Background(), "list-1")

	assert.Equal(t, []string{"vol-1", "vol-2"}, ids)
}
