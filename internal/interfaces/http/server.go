package httpinterface

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/ratelimit"

	"github.com/galleria-network/galleria-daemon/internal/core/application"
)

// Server exposes the marketplace operations over a JSON/HTTP surface.
// Signature verification is a platform concern outside this daemon: callers
// are identified by the identity fields of the request payloads.
type Server struct {
	operatorSvc application.OperatorService
	tradeSvc    application.TradeService
	limiter     ratelimit.Limiter
}

func NewServer(
	operatorSvc application.OperatorService,
	tradeSvc application.TradeService,
	requestsPerSecond int,
) *Server {
	return &Server{
		operatorSvc: operatorSvc,
		tradeSvc:    tradeSvc,
		limiter:     ratelimit.New(requestsPerSecond),
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.throttle)

	r.HandleFunc("/v1/config", s.handleInitConfig).Methods("POST")
	r.HandleFunc("/v1/config", s.handleGetConfig).Methods("GET")

	r.HandleFunc("/v1/listings", s.handleCreateListing).Methods("POST")
	r.HandleFunc("/v1/listings", s.handleListListings).Methods("GET")
	r.HandleFunc(
		"/v1/listings/{seller}/{listingId}", s.handleGetListing,
	).Methods("GET")
	r.HandleFunc(
		"/v1/listings/{seller}/{listingId}", s.handleCancelListing,
	).Methods("DELETE")
	r.HandleFunc(
		"/v1/listings/{seller}/{listingId}/price", s.handleSetPrice,
	).Methods("PUT")
	r.HandleFunc(
		"/v1/listings/{seller}/{listingId}/bids", s.handlePlaceBid,
	).Methods("POST")
	r.HandleFunc(
		"/v1/listings/{seller}/{listingId}/buy", s.handleBuy,
	).Methods("POST")
	r.HandleFunc(
		"/v1/listings/{seller}/{listingId}/settle", s.handleSettle,
	).Methods("POST")
	r.HandleFunc(
		"/v1/listings/{seller}/{listingId}/receipts", s.handleListingReceipts,
	).Methods("GET")
	r.HandleFunc("/v1/receipts", s.handleAllReceipts).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusNotFound, "not found")
		},
	)
	return r
}

func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.limiter.Take()
		next.ServeHTTP(w, r)
	})
}
