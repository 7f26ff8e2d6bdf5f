package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/services"
)

const latestReviewsLimit = 6

type ReviewHandler struct {
	reviews services.ReviewStore
}

func NewReviewHandler(reviews services.ReviewStore) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// CreateReview handles POST /reviews.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if !decodeBody(w, r, &review) {
		return
	}

	id, err := h.reviews.Insert(r.Context(), &review)
	if err != nil {
		writeFailure(w, "create review", err)
		return
	}
	writeJSON(w, http.StatusOK, inserted(id))
}

// GetReviews handles GET /reviews.
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	h.list(w, "fetch reviews")(h.reviews.List(r.Context()))
}

// GetUserReviews handles GET /reviews/{email}.
func (h *ReviewHandler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	h.list(w, "fetch user reviews")(h.reviews.ListByReviewer(r.Context(), mux.Vars(r)["email"]))
}

// GetPropertyReviews handles GET /propertyReviews/{id}.
func (h *ReviewHandler) GetPropertyReviews(w http.ResponseWriter, r *http.Request) {
	h.list(w, "fetch property reviews")(h.reviews.ListByProperty(r.Context(), mux.Vars(r)["id"]))
}

// GetLatestReviews handles GET /latestReviews.
func (h *ReviewHandler) GetLatestReviews(w http.ResponseWriter, r *http.Request) {
	h.list(w, "fetch latest reviews")(h.reviews.Latest(r.Context(), latestReviewsLimit))
}

// DeleteReview handles DELETE /reviews/{id}.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	respondDelete(w, "delete review")(h.reviews.Delete(r.Context(), mux.Vars(r)["id"]))
}

func (h *ReviewHandler) list(w http.ResponseWriter, op string) func([]models.Review, error) {
	return func(reviews []models.Review, err error) {
		if err != nil {
			writeFailure(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, reviews)
	}
}
