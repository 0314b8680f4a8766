package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CompressHandler gzips responses when the client accepts it.
func CompressHandler(next http.Handler) http.Handler {
	return handlers.CompressHandler(next)
}
