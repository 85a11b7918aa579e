package users

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"user.name+tag@sub.domain.org", true},
		{"emailasstring", false},
		{"@nodomain.com", false},
		{"nolocal@", false},
		{"spaces in@mail.com", false},
		{"a@b", false},
		{"a@b.c", false},
		{"", false},
	}

	for _, testCase := range cases {
		t.Run(testCase.email, func(t *testing.T) {
			require.Equal(t, testCase.valid, IsValidEmail(testCase.email))
		})
	}
}
