package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseCode_EncodeParse(t *testing.T) {
	code := PurchaseCode{PurchaseID: "5b0c6a3e-0a56-4c4f-9a2a-1f3c1f0c9e11", BusinessID: 7, Token: "V1StGXR8_Z5jdHi6B-myT"}

	raw, err := code.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"purchaseId":"5b0c6a3e-0a56-4c4f-9a2a-1f3c1f0c9e11","businessId":7,"token":"V1StGXR8_Z5jdHi6B-myT"}`, raw)

	parsed, err := ParsePurchaseCode("  " + raw + "\n")
	require.NoError(t, err)
	assert.Equal(t, code, parsed)
}

func TestParsePurchaseCode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "Not json", raw: "hello"},
		{name: "Empty", raw: ""},
		{name: "Missing token", raw: `{"purchaseId":"p-1","businessId":1}`},
		{name: "Missing purchase", raw: `{"businessId":1,"token":"t"}`},
		{name: "Zero business", raw: `{"purchaseId":"p-1","businessId":0,"token":"t"}`},
		{name: "Business as string", raw: `{"purchaseId":"p-1","businessId":"1","token":"t"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePurchaseCode(tt.raw)
			assert.ErrorIs(t, err, ErrMalformedCode)
		})
	}
}
