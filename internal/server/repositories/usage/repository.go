package usage

import "github.com/dmitrijs2005/unsaid/internal/quota"

// Repository is the server-side usage store: the quota contract plus the
// atomic increment.
type Repository interface {
	quota.Repository
	quota.Incrementer
}
