package codegen

import (
	"testing"

	"github.com/GlebRadaev/loyalty/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityToken(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token := SecurityToken()
		assert.Len(t, token, securityTokenLength)
		_, dup := seen[token]
		assert.False(t, dup, "token repeated")
		seen[token] = struct{}{}
	}
}

func TestTicketNumber(t *testing.T) {
	for i := 0; i < 100; i++ {
		number, err := TicketNumber()
		require.NoError(t, err)
		assert.Len(t, number, ticketDigits+1)
		assert.NotEqual(t, byte('0'), number[0])
		assert.True(t, validate.IsLuna(number), "ticket %s must pass the Luhn check", number)
	}
}
