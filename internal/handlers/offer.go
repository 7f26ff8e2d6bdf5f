package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/services"
)

type OfferHandler struct {
	offers services.OfferStore
}

func NewOfferHandler(offers services.OfferStore) *OfferHandler {
	return &OfferHandler{offers: offers}
}

// CreateOffer handles POST /offers. New offers always start pending.
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var offer models.Offer
	if !decodeBody(w, r, &offer) {
		return
	}
	offer.Status = models.StatusPending

	id, err := h.offers.Insert(r.Context(), &offer)
	if err != nil {
		writeFailure(w, "create offer", err)
		return
	}
	writeJSON(w, http.StatusOK, inserted(id))
}

// GetBuyerOffers handles GET /offers/{email}.
func (h *OfferHandler) GetBuyerOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.offers.ListByBuyer(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeFailure(w, "fetch offers", err)
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

// GetAgentOffers handles GET /agentOffers/{email}.
func (h *OfferHandler) GetAgentOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.offers.ListByAgent(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeFailure(w, "fetch agent offers", err)
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

type offerStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

// UpdateOfferStatus handles PATCH /offers/{id}.
func (h *OfferHandler) UpdateOfferStatus(w http.ResponseWriter, r *http.Request) {
	var req offerStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	respondUpdate(w, "update offer")(h.offers.SetStatus(r.Context(), mux.Vars(r)["id"], req.Status))
}

type autoRejectRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
}

// AutoRejectOffers handles PATCH /offersAutoReject, sent after an offer on
// the property was accepted.
func (h *OfferHandler) AutoRejectOffers(w http.ResponseWriter, r *http.Request) {
	var req autoRejectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	respondUpdate(w, "reject offers")(h.offers.RejectPending(r.Context(), req.PropertyID))
}
