package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/unsaid/internal/dbx"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/checkins"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/entries"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/usage"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to either the pool or an
// open transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Entries(db dbx.DBTX) entries.Repository
	Usage(db dbx.DBTX) usage.Repository
	CheckIns(db dbx.DBTX) checkins.Repository
}
