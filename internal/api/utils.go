package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/alhDiallo2018/nextBiblio/internal/auth"
)

var ErrForbidden = errors.New("you do not have permission to perform this action")

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) error {
	response, err := json.Marshal(&payload)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)

	return nil
}

func respondWithError(w http.ResponseWriter, code int, msg string) error {
	messageBody := ErrorResponse{
		StatusCode:   code,
		ErrorMessage: msg,
	}
	return respondWithJSON(w, code, messageBody)
}

func respondWithForbidden(w http.ResponseWriter) error {
	statusCode := http.StatusForbidden
	messageBody := ErrorResponse{
		StatusCode:   statusCode,
		ErrorMessage: formatErrorMessage(ErrForbidden),
	}
	return respondWithJSON(w, statusCode, messageBody)
}

func RespondWithUnauthorized(w http.ResponseWriter, err error) error {
	statusCode := http.StatusUnauthorized
	messageBody := ErrorResponse{
		StatusCode:   statusCode,
		ErrorMessage: formatErrorMessage(err),
	}
	return respondWithJSON(w, statusCode, messageBody)
}

func formatErrorMessage(err error) string {
	errorMsg := err.Error()
	if len(errorMsg) > 0 {
		return strings.ToUpper(errorMsg[:1]) + errorMsg[1:]
	}
	return ""
}

// authorizeOwner checks that the authenticated identity matches the user id
// the request acts upon. On mismatch it writes a 403 response and returns
// false; a request that somehow reached a handler without an identity gets 401.
func authorizeOwner(w http.ResponseWriter, r *http.Request, targetUserId string) bool {
	currentUserId := auth.GetUserIdFromContext(r.Context())
	if currentUserId == "" {
		RespondWithUnauthorized(w, auth.ErrInvalidToken)
		return false
	}
	if currentUserId != targetUserId {
		respondWithForbidden(w)
		return false
	}
	return true
}
