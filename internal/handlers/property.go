package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/services"
)

// PropertyHandler serves the listing routes.
type PropertyHandler struct {
	properties services.PropertyStore
}

func NewPropertyHandler(properties services.PropertyStore) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

// CreateProperty handles POST /properties. The agent defaults to the
// caller.
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var property models.Property
	if !decodeBody(w, r, &property) {
		return
	}
	if claims, ok := ClaimsFrom(r.Context()); ok && property.AgentEmail == "" {
		property.AgentEmail = claims.Email
	}

	id, err := h.properties.Insert(r.Context(), &property)
	if err != nil {
		writeFailure(w, "create property", err)
		return
	}
	writeJSON(w, http.StatusOK, inserted(id))
}

// GetProperties handles GET /properties.
func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	h.list(w, "fetch properties")(h.properties.List(r.Context()))
}

// GetAgentProperties handles GET /properties/{email}.
func (h *PropertyHandler) GetAgentProperties(w http.ResponseWriter, r *http.Request) {
	h.list(w, "fetch agent properties")(h.properties.ListByAgent(r.Context(), mux.Vars(r)["email"]))
}

// GetProperty handles GET /property?id=. An unknown id yields null.
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	property, err := h.properties.FindByID(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		writeFailure(w, "fetch property", err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

// EditProperty handles PATCH /property/{id}.
func (h *PropertyHandler) EditProperty(w http.ResponseWriter, r *http.Request) {
	var edit models.PropertyEdit
	if !decodeBody(w, r, &edit) {
		return
	}
	respondUpdate(w, "edit property")(h.properties.Edit(r.Context(), mux.Vars(r)["id"], edit))
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending verified rejected"`
}

// VerifyProperty handles PATCH /propertyVerify/{id}.
func (h *PropertyHandler) VerifyProperty(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	respondUpdate(w, "update property status")(h.properties.SetStatus(r.Context(), mux.Vars(r)["id"], req.Status))
}

// AdvertiseProperty handles PATCH /advertiseProperty/{id}.
func (h *PropertyHandler) AdvertiseProperty(w http.ResponseWriter, r *http.Request) {
	respondUpdate(w, "advertise property")(h.properties.Advertise(r.Context(), mux.Vars(r)["id"]))
}

// GetDisplayProperties handles GET /displayProperties.
func (h *PropertyHandler) GetDisplayProperties(w http.ResponseWriter, r *http.Request) {
	h.list(w, "fetch advertised properties")(h.properties.ListAdvertised(r.Context()))
}

// GetVerifiedProperties handles GET /advertiseProperties, the pool admins
// pick advertisements from.
func (h *PropertyHandler) GetVerifiedProperties(w http.ResponseWriter, r *http.Request) {
	h.list(w, "fetch verified properties")(h.properties.ListVerified(r.Context()))
}

// SearchProperties handles GET /allProperties?location=&sort=.
func (h *PropertyHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.list(w, "search properties")(h.properties.Search(r.Context(), q.Get("location"), q.Get("sort")))
}

// DeleteProperty handles DELETE /properties/{id}.
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	respondDelete(w, "delete property")(h.properties.Delete(r.Context(), mux.Vars(r)["id"]))
}

// DeleteAgentProperties handles DELETE /deleteProperties/{email}.
func (h *PropertyHandler) DeleteAgentProperties(w http.ResponseWriter, r *http.Request) {
	respondDelete(w, "delete agent properties")(h.properties.DeleteByAgent(r.Context(), mux.Vars(r)["email"]))
}

// GetSoldProperties handles GET /soldProperties/{email}.
func (h *PropertyHandler) GetSoldProperties(w http.ResponseWriter, r *http.Request) {
	sold, err := h.properties.Sold(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeFailure(w, "fetch sold properties", err)
		return
	}
	writeJSON(w, http.StatusOK, sold)
}

func (h *PropertyHandler) list(w http.ResponseWriter, op string) func([]models.Property, error) {
	return func(properties []models.Property, err error) {
		if err != nil {
			writeFailure(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, properties)
	}
}
