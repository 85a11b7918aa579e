package api

import (
	"github.com/alhDiallo2018/nextBiblio/internal/mongodb"
)

type API struct {
	Db     *mongodb.DB
	Secret *string
}

func NewAPI(db *mongodb.DB, secret *string) *API {
	return &API{Db: db, Secret: secret}
}

// PublicPaths lists the routes the auth middleware lets through without a
// bearer token. Everything else requires a valid token.
var PublicPaths = map[string]bool{
	"POST /auth/register": true,
	"POST /auth/login":    true,
}
