package ports

import "context"

// UnitOfWork scopes a group of repository calls to one transaction. fn runs
// with a transactional context; if it returns an error the whole unit is
// rolled back and no write is visible. There is no partial-commit path.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
