package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashService_HashPassword(t *testing.T) {
	hashService := &HashService{Cost: bcrypt.MinCost}

	tests := []struct {
		name     string
		password string
		err      error
	}{
		{name: "Owner password", password: "cafe-owner-2024"},
		{name: "Staff password at minimum length", password: "pass1234"},
		{name: "Exactly 72 bytes", password: strings.Repeat("a", 72)},
		{name: "Empty password", password: "", err: ErrEmptyPassword},
		{name: "Longer than bcrypt reads", password: strings.Repeat("a", 73), err: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := hashService.HashPassword(tt.password)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Empty(t, hashed)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hashed)

			cost, err := bcrypt.Cost([]byte(hashed))
			require.NoError(t, err)
			assert.Equal(t, bcrypt.MinCost, cost)
		})
	}
}

func TestHashService_DefaultCost(t *testing.T) {
	hashed, err := (&HashService{}).HashPassword("client-secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestHashService_ComparePassword(t *testing.T) {
	hashService := &HashService{Cost: bcrypt.MinCost}
	hashed, err := hashService.HashPassword("waiter-pass")
	require.NoError(t, err)

	tests := []struct {
		name     string
		hashed   string
		password string
		match    bool
	}{
		{name: "Same password", hashed: hashed, password: "waiter-pass", match: true},
		{name: "Wrong password", hashed: hashed, password: "waiter-pas", match: false},
		{name: "Not a bcrypt hash", hashed: "plain", password: "plain", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, hashService.ComparePassword(tt.hashed, tt.password))
		})
	}
}
