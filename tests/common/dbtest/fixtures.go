//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/promotion"
	"storefront-orders/internal/infra/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func InsertPromotion(t *testing.T, pool *pgxpool.Pool, p *promotion.Promotion) {
	t.Helper()
	err := repository.NewPromotionRepository(pool, quietLogger).Create(context.Background(), p)
	require.NoError(t, err)
}

func InsertOrder(t *testing.T, pool *pgxpool.Pool, o *order.Order) {
	t.Helper()
	err := repository.NewOrderRepository(pool, quietLogger).Create(context.Background(), o)
	require.NoError(t, err)
}

func PromotionUsage(t *testing.T, db DBLike, code string) int32 {
	t.Helper()
	var count int32
	err := db.QueryRow(context.Background(),
		"SELECT usage_count FROM promotions WHERE upper(code) = upper($1)", code).Scan(&count)
	require.NoError(t, err)
	return count
}

func OrderCount(t *testing.T, db DBLike) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM orders").Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData restores the catalog rows the seed migration inserts.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO products (ref, name, unit_price, stock_quantity) VALUES
		    ('kurta-01', 'Lawn Kurta', 2500, 50),
		    ('shawl-02', 'Pashmina Shawl', 1500, 30),
		    ('dupatta', 'Chiffon Dupatta', 1000, 80)
		ON CONFLICT (ref) DO UPDATE SET stock_quantity = EXCLUDED.stock_quantity;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
