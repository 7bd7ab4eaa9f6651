package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestID devuelve el id que chimw.RequestID dejó en el contexto ("" si no corre ese middleware).
func RequestID(r *http.Request) string {
	return chimw.GetReqID(r.Context())
}

// EchoRequestID copia el request id al header X-Request-Id de la respuesta.
func EchoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := RequestID(r); id != "" {
			w.Header().Set(chimw.RequestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}
