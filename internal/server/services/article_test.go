package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avolkovs/clippings/internal/common"
	"github.com/avolkovs/clippings/internal/server/models"
)

func TestArticleCreate_AssignsCallerAsOwner(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeArticlesRepo{}
	svc := NewArticleService(db, &fakeRepoManager{articles: repo})

	caller := &models.User{ID: 12}
	got, err := svc.Create(context.Background(), caller, &models.Article{Title: "Notes", SourceURL: "https://example.com/notes"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.UserID != 12 {
		t.Fatalf("article owner: got %d want 12", got.UserID)
	}
}

func TestArticleUpdate_OwnerSucceedsOtherIsForbidden(t *testing.T) {
	stored := &models.Article{ID: 1, UserID: 1, Title: "Original", Description: "old", SourceURL: "https://example.com/a"}

	t.Run("owner", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeArticlesRepo{byIDOut: stored}
		svc := NewArticleService(db, &fakeRepoManager{articles: repo})

		owner := &models.User{ID: 1}
		got, err := svc.Update(context.Background(), owner, 1, &models.Article{Title: "Revised", Description: "new", SourceURL: "https://example.com/b"})
		if err != nil {
			t.Fatalf("Update error: %v", err)
		}
		if got.Title != "Revised" || got.UserID != 1 {
			t.Fatalf("unexpected result: %+v", got)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("tx expectations: %v", err)
		}
	})

	t.Run("other user", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeArticlesRepo{byIDOut: stored}
		svc := NewArticleService(db, &fakeRepoManager{articles: repo})

		other := &models.User{ID: 2}
		_, err := svc.Update(context.Background(), other, 1, &models.Article{Title: "Hijacked"})
		if !errors.Is(err, common.ErrorForbidden) {
			t.Fatalf("expected common.ErrorForbidden, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("tx expectations: %v", err)
		}
	})
}

func TestArticleUpdate_MissingArticle(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeArticlesRepo{byIDErr: common.ErrorNotFound}
	svc := NewArticleService(db, &fakeRepoManager{articles: repo})

	_, err := svc.Update(context.Background(), &models.User{ID: 1}, 99, &models.Article{Title: "x"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestArticleDelete_OwnerSucceedsOtherIsForbidden(t *testing.T) {
	stored := &models.Article{ID: 7, UserID: 1}

	t.Run("owner", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeArticlesRepo{byIDOut: stored}
		svc := NewArticleService(db, &fakeRepoManager{articles: repo})

		if err := svc.Delete(context.Background(), &models.User{ID: 1}, 7); err != nil {
			t.Fatalf("Delete error: %v", err)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != 7 {
			t.Fatalf("delete must reach the repository, got %v", repo.deleted)
		}
	})

	t.Run("other user", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeArticlesRepo{byIDOut: stored}
		svc := NewArticleService(db, &fakeRepoManager{articles: repo})

		err := svc.Delete(context.Background(), &models.User{ID: 2}, 7)
		if !errors.Is(err, common.ErrorForbidden) {
			t.Fatalf("expected common.ErrorForbidden, got %v", err)
		}
		if len(repo.deleted) != 0 {
			t.Fatalf("forbidden delete must not reach the repository")
		}
	})
}

func TestArticleAdminIsNotOwner(t *testing.T) {
	// Admin status grants user management rights, not article ownership.
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeArticlesRepo{byIDOut: &models.Article{ID: 1, UserID: 5}}
	svc := NewArticleService(db, &fakeRepoManager{articles: repo})

	admin := &models.User{ID: 2, Admin: true}
	err := svc.Delete(context.Background(), admin, 1)
	if !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("expected common.ErrorForbidden, got %v", err)
	}
}
