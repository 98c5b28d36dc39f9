package handler

import (
	"encoding/json"
	"testing"

	domainerrors "organico/internal/domain/errors"
	"organico/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAddress_PlainObject(t *testing.T) {
	raw := json.RawMessage(`{"street":"Largo da Ordem","city":"Curitiba","state":"PR","latitude":-25.4284}`)

	var address usecase.AddressInput
	err := decodeAddress(raw, &address)
	require.NoError(t, err)
	assert.Equal(t, "Curitiba", address.City)
	assert.Equal(t, "PR", address.State)
	require.NotNil(t, address.Latitude)
	assert.InDelta(t, -25.4284, *address.Latitude, 0.0001)
}

// Some clients double-encode the address as a JSON string inside the JSON
// body. The decoder unwraps one level of quoting before parsing.
func TestDecodeAddress_QuotedJSONString(t *testing.T) {
	raw := json.RawMessage(`"{\"street\":\"Largo da Ordem\",\"city\":\"Curitiba\",\"state\":\"PR\"}"`)

	var address usecase.AddressInput
	err := decodeAddress(raw, &address)
	require.NoError(t, err)
	assert.Equal(t, "Largo da Ordem", address.Street)
	assert.Equal(t, "Curitiba", address.City)
}

func TestDecodeAddress_Malformed(t *testing.T) {
	for name, raw := range map[string]json.RawMessage{
		"truncated":     json.RawMessage(`{"city":`),
		"quoted-broken": json.RawMessage(`"{\"city\":"`),
		"empty":         json.RawMessage(``),
		"blank-string":  json.RawMessage(`"   "`),
	} {
		t.Run(name, func(t *testing.T) {
			var address usecase.AddressInput
			err := decodeAddress(raw, &address)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "INVALID_ADDRESS_PAYLOAD", appErr.ErrorCode())
			assert.Equal(t, "address", appErr.Details())
		})
	}
}

func TestParseOrdering(t *testing.T) {
	orderBy, descending := parseOrdering("")
	assert.Empty(t, orderBy)
	assert.False(t, descending)

	orderBy, descending = parseOrdering("name")
	assert.Equal(t, "name", orderBy)
	assert.False(t, descending)

	orderBy, descending = parseOrdering("-created_at")
	assert.Equal(t, "created_at", orderBy)
	assert.True(t, descending)
}
