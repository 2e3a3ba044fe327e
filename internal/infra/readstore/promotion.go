package readstore

import (
	"context"
	"log/slog"

	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/infra"
	"storefront-orders/internal/infra/converter"
	"storefront-orders/internal/infra/db"
	"storefront-orders/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	getPromotionByID   = `SELECT ` + converter.PromotionColumns + ` FROM promotions WHERE id = $1`
	getPromotionByCode = `SELECT ` + converter.PromotionColumns + ` FROM promotions WHERE upper(code) = upper($1)`

	listPromotions = `SELECT ` + converter.PromotionColumns + `
FROM promotions
WHERE $1 = '' OR strpos(upper(code), upper($1)) > 0
ORDER BY start_date DESC, code ASC`
)

type PromotionReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPromotionReadStore(dbtx db.DBTX, logger *slog.Logger) *PromotionReadStore {
	return &PromotionReadStore{db: dbtx, logger: logger}
}

func (r *PromotionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	return r.findOne(ctx, getPromotionByID, id)
}

func (r *PromotionReadStore) FindByCode(ctx context.Context, code string) (*promotion.Promotion, error) {
	return r.findOne(ctx, getPromotionByCode, code)
}

// FindAll matches search as a code substring, newest start date first.
func (r *PromotionReadStore) FindAll(ctx context.Context, search string) ([]*promotion.Promotion, error) {
	rows, err := r.db.Query(ctx, listPromotions, search)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list promotions", err)
	}
	defer rows.Close()

	result := make([]*promotion.Promotion, 0)
	for rows.Next() {
		p, err := converter.ScanPromotion(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan promotion", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate promotions", err)
	}
	return result, nil
}

func (r *PromotionReadStore) findOne(ctx context.Context, query string, arg any) (*promotion.Promotion, error) {
	p, err := converter.ScanPromotion(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "promotion not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find promotion", err)
	}
	return p, nil
}
