package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("Hash and check roundtrip", func(t *testing.T) {
		hash, err := HashPassword("pw123456")
		require.NoError(t, err)
		require.NotEqual(t, "pw123456", hash)
		require.NoError(t, CheckPasswordHash(hash, "pw123456"))
	})

	t.Run("Wrong password returns invalid credentials", func(t *testing.T) {
		hash, err := HashPassword("pw123456")
		require.NoError(t, err)
		require.ErrorIs(t, CheckPasswordHash(hash, "wrongpass"), ErrInvalidCredentials)
	})
}

func TestJWT(t *testing.T) {
	const secret = "test-secret"

	t.Run("Make and validate roundtrip", func(t *testing.T) {
		token, err := MakeJWT("user-123", secret, time.Hour)
		require.NoError(t, err)

		subject, err := ValidateJWT(token, secret)
		require.NoError(t, err)
		require.Equal(t, "user-123", subject)
	})

	t.Run("Wrong secret is rejected", func(t *testing.T) {
		token, err := MakeJWT("user-123", secret, time.Hour)
		require.NoError(t, err)

		_, err = ValidateJWT(token, "other-secret")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		token, err := MakeJWT("user-123", secret, -time.Minute)
		require.NoError(t, err)

		_, err = ValidateJWT(token, secret)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage token is rejected", func(t *testing.T) {
		_, err := ValidateJWT("not.a.token", secret)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestGetBearerToken(t *testing.T) {
	cases := []struct {
		name          string
		header        string
		tokenExpected string
		errExpected   error
	}{
		{
			name:          "Valid bearer token",
			header:        "Bearer abc123",
			tokenExpected: "abc123",
		},
		{
			name:        "Missing header",
			header:      "",
			errExpected: ErrNoAuthorizationHeader,
		},
		{
			name:        "Wrong scheme",
			header:      "Basic abc123",
			errExpected: ErrMalformedAuthHeader,
		},
		{
			name:        "Bearer with no token",
			header:      "Bearer ",
			errExpected: ErrNoTokenInAuthHeader,
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			headers := http.Header{}
			if testCase.header != "" {
				headers.Set("Authorization", testCase.header)
			}

			token, err := GetBearerToken(headers)
			if testCase.errExpected != nil {
				require.ErrorIs(t, err, testCase.errExpected)
				return
			}
			require.NoError(t, err)
			require.Equal(t, testCase.tokenExpected, token)
		})
	}
}
