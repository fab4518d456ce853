//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront-pricing/internal/pkg/pgconv"
	"storefront-pricing/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email string, isMember bool) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, is_member, member_since) VALUES ($1, $2, $3, CASE WHEN $3 THEN now() END) ON CONFLICT (email) DO NOTHING",
		userID, email, isMember)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreatePendingMembership(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO pending_memberships (user_id, order_ref) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING",
		userID, "order-"+userID.String()[:8])
	require.NoError(t, err)
}

func ActivateMembership(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "DELETE FROM pending_memberships WHERE user_id = $1", userID)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "UPDATE users SET is_member = TRUE, member_since = now() WHERE id = $1", userID)
	require.NoError(t, err)
}

func CreateTestCategory(t *testing.T, db DBLike, name string, qualifying bool) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO categories (id, name, is_qualifying_category) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING",
		categoryID, name, qualifying)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM categories WHERE name = $1", name).Scan(&categoryID)
	}

	return categoryID
}

// CreateTestProduct persists the builder's product. categoryID may be uuid.Nil.
func CreateTestProduct(t *testing.T, db DBLike, b *builder.ProductBuilder, categoryID uuid.UUID) uuid.UUID {
	t.Helper()

	var category any
	if categoryID != uuid.Nil {
		category = categoryID
	}

	_, err := db.Exec(context.Background(), `
		INSERT INTO products (
		    id, category_id, name, regular_price, member_price,
		    is_promotional, promotional_price, promotion_start_date, promotion_end_date,
		    is_qualifying_for_membership, member_only_until, early_access_start,
		    stock_quantity, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		b.ID, category, b.Name, pgconv.NumericFromDecimal(b.RegularPrice), pgconv.NumericFromDecimal(b.MemberPrice),
		b.IsPromotional, promotionalPriceArg(b), b.PromotionStartDate, b.PromotionEndDate,
		b.IsQualifyingForMembership, b.MemberOnlyUntil, b.EarlyAccessStart,
		b.Stock, string(b.Status),
	)
	require.NoError(t, err)

	return b.ID
}

func promotionalPriceArg(b *builder.ProductBuilder) any {
	if b.PromotionalPrice == nil {
		return nil
	}
	return pgconv.NumericFromDecimal(*b.PromotionalPrice)
}

func SetSystemConfig(t *testing.T, db DBLike, key, value string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO system_config (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	require.NoError(t, err)
}

func CountCartItems(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM cart_items WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (name, is_qualifying_category) VALUES
		    ('Groceries', TRUE),
		    ('Gift Cards', FALSE)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO system_config (key, value) VALUES ('membership_threshold', '80.00')
		ON CONFLICT (key) DO NOTHING;
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
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
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
