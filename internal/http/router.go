package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgervoice/internal/encoding"
	"github.com/MrJamesThe3rd/ledgervoice/internal/http/auth"
	assetHandler "github.com/MrJamesThe3rd/ledgervoice/internal/http/asset"
	foodHandler "github.com/MrJamesThe3rd/ledgervoice/internal/http/food"
	navigateHandler "github.com/MrJamesThe3rd/ledgervoice/internal/http/navigate"
	stockHandler "github.com/MrJamesThe3rd/ledgervoice/internal/http/stock"
	txHandler "github.com/MrJamesThe3rd/ledgervoice/internal/http/transaction"
)

// Options carries the cross-cutting router settings.
type Options struct {
	// AuthSecret enables bearer-token verification when non-empty.
	AuthSecret     string
	AllowedOrigins []string
}

func New(
	opts Options,
	transactionV1 *txHandler.Handler,
	assetV1 *assetHandler.Handler,
	foodV1 *foodHandler.Handler,
	stockV1 *stockHandler.Handler,
	navigateV1 *navigateHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		if opts.AuthSecret != "" {
			r.Use(auth.Middleware(opts.AuthSecret))
		}

		r.Use(decodeBody)

		r.Route("/transaction", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionV1.Routes(r)
		})

		r.Route("/asset", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			assetV1.Routes(r)
		})

		r.Route("/food", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			foodV1.Routes(r)
		})

		r.Route("/stock", stockV1.Routes)

		r.Route("/navigate", navigateV1.Routes)
	})

	return router
}

// requestID tags every request so webhook calls can be correlated with the
// voice platform's own logs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// decodeBody re-encodes non-UTF-8 request bodies to UTF-8 before the JSON
// decoder sees them. Older handsets still post EUC-KR.
func decodeBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil && r.Body != http.NoBody {
			decoded, err := encoding.NewUTF8Reader(r.Body)
			if err != nil {
				http.Error(w, "unreadable body", http.StatusBadRequest)
				return
			}

			r.Body = io.NopCloser(decoded)
		}

		next.ServeHTTP(w, r)
	})
}
