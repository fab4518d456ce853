//go:build unit

package pgconv

import (
	"database/sql"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFromNumeric(t *testing.T) {
	tests := []struct {
		name    string
		input   pgtype.Numeric
		want    string
		wantErr bool
	}{
		{name: "通常値", input: pgtype.Numeric{Int: big.NewInt(12345), Exp: -2, Valid: true}, want: "123.45"},
		{name: "ゼロ", input: pgtype.Numeric{Int: big.NewInt(0), Exp: 0, Valid: true}, want: "0"},
		{name: "NULL", input: pgtype.Numeric{}, wantErr: true},
		{name: "NaN", input: pgtype.Numeric{NaN: true, Valid: true}, wantErr: true},
		{name: "無限大", input: pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecimalFromNumeric(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNumericValue)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestDecimalPtrFromNumeric(t *testing.T) {
	got, err := DecimalPtrFromNumeric(pgtype.Numeric{})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = DecimalPtrFromNumeric(pgtype.Numeric{Int: big.NewInt(50), Exp: 0, Valid: true})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, decimal.NewFromInt(50).Equal(*got))

	_, err = DecimalPtrFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
	assert.Error(t, err)
}

func TestNumericFromDecimal_RoundTrip(t *testing.T) {
	d := decimal.RequireFromString("79.99")
	back, err := DecimalFromNumeric(NumericFromDecimal(d))
	require.NoError(t, err)
	assert.True(t, d.Equal(back))
}

func TestTimeConversions(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.Nil(t, TimePtrFromPgtype(pgtype.Timestamptz{}))
	assert.Equal(t, now, *TimePtrFromPgtype(TimeToPgtype(now)))
	assert.False(t, TimePtrToPgtype(nil).Valid)
	assert.Equal(t, now, TimeFromPgtype(TimePtrToPgtype(&now)))
}

func TestUUIDConversions(t *testing.T) {
	id := uuid.New()

	assert.Nil(t, UUIDPtrFromPgtype(pgtype.UUID{}))
	assert.Equal(t, id, *UUIDPtrFromPgtype(UUIDToPgtype(id)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(sql.ErrNoRows))
	assert.False(t, IsNoRows(assert.AnError))
}
