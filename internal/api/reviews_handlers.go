package api

import (
	"encoding/json"
	"net/http"

	"github.com/alhDiallo2018/nextBiblio/internal/logx"
	"github.com/alhDiallo2018/nextBiblio/internal/services/books"
)

func (api *API) AddReview(w http.ResponseWriter, r *http.Request) {
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

	var req books.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	book, updated, err := books.MergeReview(api.Db, r.Context(), bookId, userId, req)
	if err != nil {
		if statusCode, ok := books.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while adding review")
		return
	}

	message := "Comment and rating successfully added"
	if updated {
		message = "Comment and rating successfully updated"
	}
	respondWithJSON(w, http.StatusOK, books.BookResponse{Message: message, Book: book})
}

func (api *API) UpdateReview(w http.ResponseWriter, r *http.Request) {
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

	var req books.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	book, err := books.UpdateReview(api.Db, r.Context(), bookId, userId, req)
	if err != nil {
		if statusCode, ok := books.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while updating review")
		return
	}

	respondWithJSON(w, http.StatusOK, books.BookResponse{Message: "Comment and rating successfully updated", Book: book})
}

func (api *API) DeleteReview(w http.ResponseWriter, r *http.Request) {
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

	book, err := books.DeleteReview(api.Db, r.Context(), bookId, userId)
	if err != nil {
		if statusCode, ok := books.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while deleting review")
		return
	}

	respondWithJSON(w, http.StatusOK, books.BookResponse{Message: "Comment successfully deleted", Book: book})
}
