package unitofwork

import (
	"context"

	"github.com/YoussefAz2/elenashop-sub001/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	StoreThemeRepository() contract.StoreThemeRepository
}
