package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/alhDiallo2018/nextBiblio/internal/auth"
	"github.com/alhDiallo2018/nextBiblio/internal/mongodb"
	"github.com/alhDiallo2018/nextBiblio/internal/services/users"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func registerUser(t *testing.T, user users.RegisterRequest) (mongodb.UserDb, string) {
	t.Helper()

	postBody, err := json.Marshal(user)
	require.NoError(t, err)

	resp, err := http.Post(
		testServer.URL+"/auth/register",
		"application/json",
		bytes.NewBuffer(postBody),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var respBody auth.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
	require.NotEmpty(t, respBody.AccessToken, "register should return a token")

	return getUserFromDb(t, user.Email), respBody.AccessToken
}

func getUserToken(t *testing.T, authUser auth.LoginRequest) string {
	t.Helper()

	postBody, err := json.Marshal(authUser)
	require.NoError(t, err)

	resp, err := http.Post(
		testServer.URL+"/auth/login",
		"application/json",
		bytes.NewBuffer(postBody),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var respBody auth.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))

	return respBody.AccessToken
}

// Check if a user exists directly in the database
func checkUserExists(userId string) (bool, error) {
	ctx := context.Background()
	db := testClient.Database(TEST_DB_NAME)
	coll := db.Collection(mongodb.UsersCollection)
	count, err := coll.CountDocuments(ctx, bson.M{"_id": userId})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func getUserFromDb(t *testing.T, email string) mongodb.UserDb {
	t.Helper()

	ctx := context.Background()
	db := testClient.Database(TEST_DB_NAME)
	coll := db.Collection(mongodb.UsersCollection)
	var userDb mongodb.UserDb
	err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&userDb)
	require.NoError(t, err, "error querying a user from db")
	return userDb
}

// doAuthRequest sends a request with a bearer token and an optional JSON body.
func doAuthRequest(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		postBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(postBody)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}
