package services

import (
	"context"
	"database/sql"

	"github.com/avolkovs/clippings/internal/common"
	"github.com/avolkovs/clippings/internal/dbx"
	"github.com/avolkovs/clippings/internal/server/models"
	"github.com/avolkovs/clippings/internal/server/repositories/repomanager"
)

// ArticleService provides article CRUD. Reads are open; create assigns the
// caller as owner; update and delete are ownership-gated.
type ArticleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewArticleService constructs an ArticleService.
func NewArticleService(db *sql.DB, m repomanager.RepositoryManager) *ArticleService {
	return &ArticleService{db: db, repomanager: m}
}

// Create stores a new article owned by the caller.
func (s *ArticleService) Create(ctx context.Context, caller *models.User, article *models.Article) (*models.Article, error) {
	article.UserID = caller.ID
	return s.repomanager.Articles(s.db).Create(ctx, article)
}

// Get returns a single article by ID.
func (s *ArticleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	return s.repomanager.Articles(s.db).GetByID(ctx, id)
}

// List returns all articles.
func (s *ArticleService) List(ctx context.Context) ([]*models.Article, error) {
	return s.repomanager.Articles(s.db).List(ctx)
}

// Update replaces the mutable fields of an article. Only the owner may
// update; the ownership check and the write run in one transaction so the
// row checked is the row written.
func (s *ArticleService) Update(ctx context.Context, caller *models.User, id int64, article *models.Article) (*models.Article, error) {
	var updated *models.Article
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Articles(tx)

		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := authorizeOwnership(caller, current.UserID); err != nil {
			return err
		}

		current.Title = article.Title
		current.Description = article.Description
		current.SourceURL = article.SourceURL

		updated, err = repo.Update(ctx, current)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an article. Only the owner may delete.
func (s *ArticleService) Delete(ctx context.Context, caller *models.User, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Articles(tx)

		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := authorizeOwnership(caller, current.UserID); err != nil {
			return err
		}

		return repo.Delete(ctx, id)
	})
}

// authorizeOwnership fails with common.ErrorForbidden unless the caller owns
// the resource.
func authorizeOwnership(caller *models.User, ownerID int64) error {
	if caller.ID != ownerID {
		return common.ErrorForbidden
	}
	return nil
}
