package httpinterface

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/thanhpk/randstr"

	"github.com/galleria-network/galleria-daemon/internal/core/application"
	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

type initConfigRequest struct {
	Owner       string `json:"owner"`
	OwnerCutBps uint16 `json:"owner_cut_bps"`
}

func (s *Server) handleInitConfig(w http.ResponseWriter, r *http.Request) {
	var req initConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	owner, err := domain.ParseIdentity(req.Owner)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.operatorSvc.InitConfig(
		r.Context(), owner, req.OwnerCutBps,
	); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, configView{req.Owner, req.OwnerCutBps})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	config, err := s.operatorSvc.GetConfig(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newConfigView(*config))
}

type createListingRequest struct {
	Seller       string `json:"seller"`
	ListingID    string `json:"listing_id"`
	AssetID      string `json:"asset_id"`
	PaymentAsset string `json:"payment_asset"`
	AskingPrice  uint64 `json:"asking_price"`
	StartAt      int64  `json:"start_at"`
	EndAt        int64  `json:"end_at"`
	IsAuction    bool   `json:"is_auction"`
}

func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seller, err := domain.ParseIdentity(req.Seller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	assetID, err := domain.ParseAssetID(req.AssetID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var paymentAsset domain.AssetID
	if req.PaymentAsset != "" {
		if paymentAsset, err = domain.ParseAssetID(req.PaymentAsset); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	listingID := req.ListingID
	if listingID == "" {
		listingID = randstr.Hex(8)
	}

	listing, err := s.operatorSvc.CreateListing(
		r.Context(), application.CreateListingArgs{
			Seller:       seller,
			ListingID:    listingID,
			AssetID:      assetID,
			PaymentAsset: paymentAsset,
			AskingPrice:  req.AskingPrice,
			StartAt:      req.StartAt,
			EndAt:        req.EndAt,
			IsAuction:    req.IsAuction,
		},
	)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newListingView(*listing))
}

func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	onlyOpen := r.URL.Query().Get("open") == "true"

	listings, err := s.operatorSvc.ListListings(r.Context(), onlyOpen)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newListingViews(listings))
}

func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	key, err := listingKeyFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := s.operatorSvc.GetListing(r.Context(), key)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newListingView(*listing))
}

type callerRequest struct {
	Caller string `json:"caller"`
}

func (s *Server) handleCancelListing(w http.ResponseWriter, r *http.Request) {
	key, err := listingKeyFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req callerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	caller, err := domain.ParseIdentity(req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	receipt, err := s.operatorSvc.CancelListing(r.Context(), caller, key)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReceiptView(*receipt))
}

type setPriceRequest struct {
	Caller   string `json:"caller"`
	NewPrice uint64 `json:"new_price"`
}

func (s *Server) handleSetPrice(w http.ResponseWriter, r *http.Request) {
	key, err := listingKeyFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req setPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	caller, err := domain.ParseIdentity(req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.operatorSvc.SetListingPrice(
		r.Context(), caller, key, req.NewPrice,
	); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint64{"asking_price": req.NewPrice})
}

type placeBidRequest struct {
	Bidder string `json:"bidder"`
	Amount uint64 `json:"amount"`
}

func (s *Server) handlePlaceBid(w http.ResponseWriter, r *http.Request) {
	key, err := listingKeyFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req placeBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	bidder, err := domain.ParseIdentity(req.Bidder)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := s.tradeSvc.PlaceBid(r.Context(), bidder, key, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newListingView(*listing))
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	key, err := listingKeyFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req callerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	buyer, err := domain.ParseIdentity(req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	receipt, err := s.tradeSvc.BuyFixedPrice(r.Context(), buyer, key)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReceiptView(*receipt))
}

func (s *Server) handleSettle(w http.ResponseWriter, r *http.Request) {
	key, err := listingKeyFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req callerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	caller, err := domain.ParseIdentity(req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	receipt, err := s.tradeSvc.SettleAuction(r.Context(), caller, key)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReceiptView(*receipt))
}

func (s *Server) handleListingReceipts(w http.ResponseWriter, r *http.Request) {
	key, err := listingKeyFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	receipts, err := s.operatorSvc.ListReceipts(r.Context(), &key)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReceiptViews(receipts))
}

func (s *Server) handleAllReceipts(w http.ResponseWriter, r *http.Request) {
	receipts, err := s.operatorSvc.ListReceipts(r.Context(), nil)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReceiptViews(receipts))
}

func listingKeyFromRequest(r *http.Request) (domain.ListingKey, error) {
	vars := mux.Vars(r)
	seller, err := domain.ParseIdentity(vars["seller"])
	if err != nil {
		return domain.ListingKey{}, err
	}
	return domain.ListingKey{
		Seller: seller, ListingID: vars["listingId"],
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warn("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeDomainError(w http.ResponseWriter, err error) {
	writeError(w, statusFromError(err), err.Error())
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotAuthorized),
		errors.Is(err, domain.ErrNotWinner),
		errors.Is(err, domain.ErrInvalidBid):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrStateAlreadyInitialized),
		errors.Is(err, domain.ErrListingAlreadyExists),
		errors.Is(err, domain.ErrListingClosed),
		errors.Is(err, domain.ErrAuctionCanceled),
		errors.Is(err, domain.ErrAuctionOn),
		errors.Is(err, domain.ErrListingNotOn):
		return http.StatusConflict
	case errors.Is(err, application.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidOwnerCut),
		errors.Is(err, domain.ErrNoWinner),
		errors.Is(err, domain.ErrNotAuction),
		errors.Is(err, domain.ErrNotOnSell),
		errors.Is(err, domain.ErrInvalidStateAccount),
		errors.Is(err, application.ErrMarketplaceNotInitialized):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
