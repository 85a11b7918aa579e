package server

import (
	"net/http"
	"os"

	"github.com/alhDiallo2018/nextBiblio/internal/api"
	"github.com/alhDiallo2018/nextBiblio/internal/mongodb"
)

// NewServer builds the route table and wraps it with the request-id and
// authentication middlewares. The database handle and token secret are
// injected here; nothing route-related holds global state.
func NewServer(db *mongodb.DB, tokenSecret string) http.Handler {
	handlers := api.NewAPI(db, &tokenSecret)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", handlers.RegisterHandler)
	mux.HandleFunc("POST /auth/login", handlers.LoginHandler)

	mux.HandleFunc("GET /users", handlers.GetUsers)
	mux.HandleFunc("PATCH /users", handlers.UpdateUsername)
	mux.HandleFunc("DELETE /users", handlers.DeleteUser)

	mux.HandleFunc("POST /book", handlers.CreateBook)
	mux.HandleFunc("GET /book", handlers.GetBooks)
	mux.HandleFunc("GET /book/search", handlers.SearchBooks)
	mux.HandleFunc("PATCH /book", handlers.UpdateBook)
	mux.HandleFunc("DELETE /book", handlers.DeleteBook)

	mux.HandleFunc("POST /book/review", handlers.AddReview)
	mux.HandleFunc("PATCH /book/review", handlers.UpdateReview)
	mux.HandleFunc("DELETE /book/review", handlers.DeleteReview)

	wrapped := AuthMiddleware(tokenSecret)(mux)
	return RequestIdMiddleware(wrapped)
}

func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
