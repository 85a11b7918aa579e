package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alhDiallo2018/nextBiblio/internal/logx"
	"github.com/alhDiallo2018/nextBiblio/internal/services/users"
)

func (api *API) GetUsers(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	allUsers, err := users.GetAllUsers(api.Db, r.Context())
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, users.AllUsersResponse{Users: allUsers})
}

func (api *API) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req users.UpdateUsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if !authorizeOwner(w, r, req.UserId) {
		return
	}

	if err := users.RenameUser(api.Db, r.Context(), req); err != nil {
		if statusCode, ok := users.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update username")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: "Username updated successfully"})
}

func (api *API) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	userId := r.URL.Query().Get("userId")
	if userId == "" {
		respondWithError(w, http.StatusBadRequest, "Query parameter userId is required")
		return
	}

	if !authorizeOwner(w, r, userId) {
		return
	}

	if err := users.DeleteUser(api.Db, r.Context(), userId); err != nil {
		if statusCode, ok := users.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while deleting user")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("User with id %s deleted successfully", userId)})
}
