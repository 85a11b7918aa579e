package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/alhDiallo2018/nextBiblio/internal/mongodb"
	"github.com/alhDiallo2018/nextBiblio/internal/services/books"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func addBook(t *testing.T, token, userId string, req books.NewBookRequest) books.Book {
	t.Helper()

	resp := doAuthRequest(t, http.MethodPost, testServer.URL+"/book?userId="+userId, token, req)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var respBody books.BookResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
	require.NotEmpty(t, respBody.Book.Id, "book id should not be empty")

	return respBody.Book
}

func getBookFromDb(t *testing.T, bookId string) mongodb.BookDb {
	t.Helper()

	ctx := context.Background()
	db := testClient.Database(TEST_DB_NAME)
	coll := db.Collection(mongodb.BooksCollection)
	var bookDb mongodb.BookDb
	err := coll.FindOne(ctx, bson.M{"_id": bookId}).Decode(&bookDb)
	require.NoError(t, err, "error querying a book from db")
	return bookDb
}

func checkBookExists(bookId string) (bool, error) {
	ctx := context.Background()
	db := testClient.Database(TEST_DB_NAME)
	coll := db.Collection(mongodb.BooksCollection)
	count, err := coll.CountDocuments(ctx, bson.M{"_id": bookId})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
