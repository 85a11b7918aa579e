package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alhDiallo2018/nextBiblio/internal/logx"
	"github.com/alhDiallo2018/nextBiblio/internal/services/books"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// checkUserExists resolves the userId query parameter into a 400/404 response
// when it is malformed or unknown. Returns false when a response was written.
func (api *API) checkUserExists(w http.ResponseWriter, r *http.Request, userId string) bool {
	logger := logx.FromContext(r.Context())

	if userId == "" || !primitive.IsValidObjectID(userId) {
		respondWithError(w, http.StatusBadRequest, "Invalid or missing userId")
		return false
	}

	ok, err := api.Db.UserExists(r.Context(), userId)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while checking user")
		return false
	}
	if !ok {
		respondWithError(w, http.StatusNotFound, fmt.Sprintf("User with id %s not found", userId))
		return false
	}

	return true
}

func (api *API) CreateBook(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	userId := r.URL.Query().Get("userId")
	if !authorizeOwner(w, r, userId) {
		return
	}
	if !api.checkUserExists(w, r, userId) {
		return
	}

	var req books.NewBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	book, err := books.AddBook(api.Db, r.Context(), userId, req)
	if err != nil {
		if statusCode, ok := books.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while creating book")
		return
	}

	respondWithJSON(w, http.StatusCreated, books.BookResponse{Message: "Book created successfully", Book: book})
}

func (api *API) GetBooks(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	userId := r.URL.Query().Get("userId")
	if !api.checkUserExists(w, r, userId) {
		return
	}

	userBooks, err := books.GetBooksByUser(api.Db, r.Context(), userId)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error fetching books")
		return
	}

	respondWithJSON(w, http.StatusOK, books.AllBooksResponse{Books: userBooks})
}

func (api *API) SearchBooks(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	query := r.URL.Query()
	userId := query.Get("userId")
	if !authorizeOwner(w, r, userId) {
		return
	}

	params := books.SearchParams{
		Title:     query.Get("title"),
		Author:    query.Get("author"),
		Category:  query.Get("category"),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}

	foundBooks, err := books.SearchBooks(api.Db, r.Context(), params)
	if err != nil {
		if statusCode, ok := books.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error searching books")
		return
	}

	respondWithJSON(w, http.StatusOK, books.AllBooksResponse{Books: foundBooks})
}

func (api *API) UpdateBook(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	userId := r.URL.Query().Get("userId")
	if !authorizeOwner(w, r, userId) {
		return
	}
	if !api.checkUserExists(w, r, userId) {
		return
	}

	var req books.UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	book, err := books.UpdateBook(api.Db, r.Context(), req)
	if err != nil {
		if statusCode, ok := books.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error updating book")
		return
	}

	respondWithJSON(w, http.StatusOK, books.BookResponse{Message: "Book updated successfully", Book: book})
}

func (api *API) DeleteBook(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	query := r.URL.Query()
	userId := query.Get("userId")
	bookId := query.Get("bookId")

	if !authorizeOwner(w, r, userId) {
		return
	}
	if !api.checkUserExists(w, r, userId) {
		return
	}

	if err := books.DeleteBook(api.Db, r.Context(), bookId); err != nil {
		if statusCode, ok := books.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error deleting book")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
