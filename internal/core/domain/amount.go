package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a lenient money value. Input that cannot be read as a decimal
// (non-numeric strings, NaN, infinities, unsupported types) yields an invalid
// zero Amount instead of an error, so a bad row never breaks a whole listing.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// NewAmount wraps a decimal as a valid Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Value: d, Valid: true}
}

// ParseAmount reads v as a decimal amount.
func ParseAmount(v any) Amount {
	switch t := v.(type) {
	case nil:
		return Amount{}
	case Amount:
		return t
	case decimal.Decimal:
		return NewAmount(t)
	case *decimal.Decimal:
		if t == nil {
			return Amount{}
		}
		return NewAmount(*t)
	case decimal.NullDecimal:
		if !t.Valid {
			return Amount{}
		}
		return NewAmount(t.Decimal)
	case string:
		return parseAmountString(t)
	case json.Number:
		return parseAmountString(t.String())
	case float64:
		return amountFromFloat(t)
	case float32:
		return amountFromFloat(float64(t))
	case int:
		return NewAmount(decimal.NewFromInt(int64(t)))
	case int32:
		return NewAmount(decimal.NewFromInt32(t))
	case int64:
		return NewAmount(decimal.NewFromInt(t))
	default:
		return Amount{}
	}
}

func parseAmountString(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return NewAmount(d)
}

func amountFromFloat(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}
	}
	return NewAmount(decimal.NewFromFloat(f))
}

// UnmarshalJSON accepts JSON numbers, numeric strings and null. It never fails;
// anything unreadable decodes to an invalid Amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = Amount{}
			return nil
		}
		*a = parseAmountString(s)
		return nil
	}
	*a = parseAmountString(string(data))
	return nil
}

// MarshalJSON writes the decimal value, or null for an invalid Amount.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return a.Value.MarshalJSON()
}

// String returns the decimal representation, or an empty string when invalid.
func (a Amount) String() string {
	if !a.Valid {
		return ""
	}
	return a.Value.String()
}
