package uow

import (
	"context"

	"github.com/vendas/backend/internal/domain/catalog"
	"github.com/vendas/backend/internal/domain/inventory"
	"github.com/vendas/backend/internal/domain/partner"
	"github.com/vendas/backend/internal/domain/trade"
)

// Repositories provides access to all repositories scoped to one
// transaction. Everything written through them commits or rolls back
// together.
type Repositories interface {
	Customers() partner.CustomerRepository
	Products() catalog.ProductRepository
	Stock() inventory.StockRepository
	Sales() trade.SaleRepository
}

// TransactionScope executes a function atomically. When fn returns an
// error every write made through its repositories is discarded; a nil
// return commits them all.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}
