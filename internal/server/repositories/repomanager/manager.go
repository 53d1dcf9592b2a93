// Package repomanager hands out repositories bound to a DB handle or an open
// transaction, and runs schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avolkovs/clippings/internal/dbx"
	"github.com/avolkovs/clippings/internal/server/repositories/articles"
	"github.com/avolkovs/clippings/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Articles(db dbx.DBTX) articles.Repository
}
