// Package articles provides PostgreSQL-backed persistence for article
// records.
package articles

import (
	"context"

	"github.com/avolkovs/clippings/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, article *models.Article) (*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	List(ctx context.Context) ([]*models.Article, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Article, error)
	Update(ctx context.Context, article *models.Article) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
}
