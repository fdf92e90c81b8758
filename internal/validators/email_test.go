package validators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ttsbooking/consult-platform/internal/validators"
)

func TestIsEmailValid(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"user.name+tag@example.co.uk", true},
		{"", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"user@nodot", false},
		{"has space@example.com", false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.valid, validators.IsEmailValid(tc.email), "email %q", tc.email)
	}
}
