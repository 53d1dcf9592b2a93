package articles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkovs/clippings/internal/common"
	"github.com/avolkovs/clippings/internal/dbx"
	"github.com/avolkovs/clippings/internal/server/models"
)

// PostgresRepository implements article storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, article *models.Article) (*models.Article, error) {

	query :=
		`INSERT INTO articles (user_id, title, description, source_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		article.UserID, article.Title, article.Description, article.SourceURL).
		Scan(&article.ID, &article.CreatedAt)

	if err != nil {
		if dbx.IsIntegrityViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return article, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	query :=
		`SELECT id, user_id, title, description, source_url, created_at FROM articles
		 WHERE id = $1
		 `

	article := &models.Article{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.UserID, &article.Title, &article.Description, &article.SourceURL, &article.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return article, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Article, error) {
	query :=
		`SELECT id, user_id, title, description, source_url, created_at FROM articles
		 ORDER BY id
		 `
	return r.selectMany(ctx, query)
}

// ListByUser selects the articles owned by userID with an explicit query;
// nothing is lazily loaded off the user record.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Article, error) {
	query :=
		`SELECT id, user_id, title, description, source_url, created_at FROM articles
		 WHERE user_id = $1
		 ORDER BY id
		 `
	return r.selectMany(ctx, query, userID)
}

func (r *PostgresRepository) selectMany(ctx context.Context, query string, args ...any) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select articles: %w", err)
	}
	defer rows.Close()

	var result []*models.Article
	for rows.Next() {
		var item models.Article
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Description, &item.SourceURL, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, article *models.Article) (*models.Article, error) {
	query :=
		`UPDATE articles
		 SET title = $2, description = $3, source_url = $4
		 WHERE id = $1
		 RETURNING user_id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		article.ID, article.Title, article.Description, article.SourceURL).
		Scan(&article.UserID, &article.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		if dbx.IsIntegrityViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return article, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM articles
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
