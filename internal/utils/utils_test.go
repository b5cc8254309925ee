package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCOP(t *testing.T) {
	formatted := FormatCOP(decimal.RequireFromString("1234567.89"))
	assert.Contains(t, formatted, "1.234.567")
	assert.Contains(t, formatted, "89")

	assert.Contains(t, FormatCOP(decimal.Zero), "0")
}

func TestFoldText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Débito", "debito"},
		{"  CRÉDITO ", "credito"},
		{"Compañía Ñandú", "compania nandu"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldText(tt.in))
		})
	}
}

func TestMatchesFolded(t *testing.T) {
	assert.True(t, MatchesFolded("", "anything"))
	assert.True(t, MatchesFolded("bogota", "Bogotá D.C."))
	assert.True(t, MatchesFolded("9001", "Proveedor", "900123456"))
	assert.False(t, MatchesFolded("medellin", "Cali", "800"))
}

func TestGenerateJWT(t *testing.T) {
	tokenString, err := GenerateJWT("user-1", "Ana", "secret", time.Hour, "issuer")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "issuer", claims.Issuer)
}

func TestPosthogWrapperDisabled(t *testing.T) {
	var nilWrapper *PosthogClientWrapper
	assert.False(t, nilWrapper.IsInitialized())

	w := &PosthogClientWrapper{}
	assert.False(t, w.IsInitialized())
	// Must not panic when disabled
	w.Enqueue("user", "event", nil)
	w.Close()
}

func TestFormatTaxID(t *testing.T) {
	assert.Equal(t, "800.197.268-4", FormatTaxID("800197268", 4))
	assert.Equal(t, "1-8", FormatTaxID("1", 8))
	assert.Equal(t, "12.345-6", FormatTaxID("12345", 6))
	assert.Equal(t, "", FormatTaxID("", 0))
}
