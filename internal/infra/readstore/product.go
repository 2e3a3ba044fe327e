package readstore

import (
	"context"
	"log/slog"

	"storefront-orders/internal/infra"
	"storefront-orders/internal/infra/db"
	"storefront-orders/internal/usecase/shared"
)

const getProductsByRefs = `
SELECT ref, name, unit_price, stock_quantity
FROM products
WHERE ref = ANY($1::text[])`

type ProductReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewProductReadStore(dbtx db.DBTX, logger *slog.Logger) *ProductReadStore {
	return &ProductReadStore{db: dbtx, logger: logger}
}

// FindByRefs omits refs that are not in the catalog.
func (r *ProductReadStore) FindByRefs(ctx context.Context, refs []string) (map[string]shared.ProductSnapshot, error) {
	rows, err := r.db.Query(ctx, getProductsByRefs, refs)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load products", err)
	}
	defer rows.Close()

	result := make(map[string]shared.ProductSnapshot, len(refs))
	for rows.Next() {
		var p shared.ProductSnapshot
		if err := rows.Scan(&p.Ref, &p.Name, &p.UnitPrice, &p.StockQuantity); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan product", err)
		}
		result[p.Ref] = p
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate products", err)
	}
	return result, nil
}
