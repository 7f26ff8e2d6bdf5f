package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/services"
)

type PaymentHandler struct {
	gateway    PaymentGateway
	properties services.PropertyStore
}

func NewPaymentHandler(gateway PaymentGateway, properties services.PropertyStore) *PaymentHandler {
	return &PaymentHandler{gateway: gateway, properties: properties}
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentIntentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	amount, err := services.PaymentAmount(req.Price)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	secret, err := h.gateway.CreatePaymentIntent(r.Context(), amount, services.PaymentCurrency)
	if err != nil {
		writeFailure(w, "create payment intent", err)
		return
	}
	writeJSON(w, http.StatusOK, models.PaymentIntentResponse{ClientSecret: secret})
}

// MarkPropertyBought handles PATCH /propertyBought/{id} once the front end
// has confirmed the payment. The buyer defaults to the caller.
func (h *PaymentHandler) MarkPropertyBought(w http.ResponseWriter, r *http.Request) {
	var info models.PaymentInfo
	if !decodeBody(w, r, &info) {
		return
	}
	if claims, ok := ClaimsFrom(r.Context()); ok && info.BuyerEmail == "" {
		info.BuyerEmail = claims.Email
	}
	respondUpdate(w, "record purchase")(h.properties.MarkBought(r.Context(), mux.Vars(r)["id"], info))
}
