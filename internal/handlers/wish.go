package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/services"
)

type WishHandler struct {
	wishes services.WishStore
}

func NewWishHandler(wishes services.WishStore) *WishHandler {
	return &WishHandler{wishes: wishes}
}

// CreateWish handles POST /wishList.
func (h *WishHandler) CreateWish(w http.ResponseWriter, r *http.Request) {
	var wish models.Wish
	if !decodeBody(w, r, &wish) {
		return
	}

	id, err := h.wishes.Insert(r.Context(), &wish)
	if err != nil {
		writeFailure(w, "add to wish list", err)
		return
	}
	writeJSON(w, http.StatusOK, inserted(id))
}

// GetUserWishes handles GET /wishList/{email}.
func (h *WishHandler) GetUserWishes(w http.ResponseWriter, r *http.Request) {
	wishes, err := h.wishes.ListByUser(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeFailure(w, "fetch wish list", err)
		return
	}
	writeJSON(w, http.StatusOK, wishes)
}

// GetWish handles GET /wishListItem/{id}. An unknown id yields null.
func (h *WishHandler) GetWish(w http.ResponseWriter, r *http.Request) {
	wish, err := h.wishes.FindByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, "fetch wish", err)
		return
	}
	writeJSON(w, http.StatusOK, wish)
}

// DeleteWish handles DELETE /wishList/{id}.
func (h *WishHandler) DeleteWish(w http.ResponseWriter, r *http.Request) {
	respondDelete(w, "remove from wish list")(h.wishes.Delete(r.Context(), mux.Vars(r)["id"]))
}
