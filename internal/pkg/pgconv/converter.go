package pgconv

import (
	"database/sql"
	"errors"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var ErrNonFiniteNumeric = errors.New("numeric value is NaN or infinite")

func DecimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// DecimalFromNumeric maps SQL NULL to zero.
func DecimalFromNumeric(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid {
		return decimal.Zero, nil
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Zero, ErrNonFiniteNumeric
	}
	coef := n.Int
	if coef == nil {
		coef = new(big.Int)
	}
	return decimal.NewFromBigInt(coef, n.Exp), nil
}

func DateToPgtype(t time.Time) pgtype.Date {
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) time.Time {
	if !pd.Valid {
		return time.Time{}
	}
	y, m, d := pd.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// OptionalText stores an empty string as NULL.
func OptionalText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func TextOrEmpty(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
