package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantValid bool
		want      string
	}{
		{name: "json number", body: `{"amount": 4000}`, wantValid: true, want: "4000"},
		{name: "numeric string", body: `{"amount": "4000.50"}`, wantValid: true, want: "4000.5"},
		{name: "non-numeric string", body: `{"amount": "abc"}`, wantValid: false},
		{name: "null", body: `{"amount": null}`, wantValid: false},
		{name: "missing", body: `{}`, wantValid: false},
		{name: "boolean", body: `{"amount": true}`, wantValid: false},
		{name: "object", body: `{"amount": {"v": 1}}`, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Amount domain.Amount `json:"amount"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &payload))
			assert.Equal(t, tt.wantValid, payload.Amount.Valid)
			if tt.wantValid {
				assert.True(t, decimal.RequireFromString(tt.want).Equal(payload.Amount.Value))
			} else {
				assert.True(t, payload.Amount.Value.IsZero())
			}
		})
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(domain.NewAmount(decimal.RequireFromString("12.5")))
	require.NoError(t, err)
	assert.Equal(t, `"12.5"`, string(b))

	b, err = json.Marshal(domain.Amount{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestParseAmount(t *testing.T) {
	assert.True(t, domain.ParseAmount(json.Number("7")).Valid)
	assert.True(t, domain.ParseAmount(int64(7)).Valid)
	assert.False(t, domain.ParseAmount("  ").Valid)
	assert.False(t, domain.ParseAmount("NaN").Valid)
	assert.False(t, domain.ParseAmount(decimal.NullDecimal{}).Valid)
	assert.Equal(t, "", domain.Amount{}.String())
}
