package handlers

import (
	"context"
	"net/http"

	muxhandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/services"
)

// Stores are the five collections the routes read and write.
type Stores struct {
	Users      services.UserStore
	Properties services.PropertyStore
	Wishes     services.WishStore
	Offers     services.OfferStore
	Reviews    services.ReviewStore
}

type TokenVerifier interface {
	Verify(token string) (*services.Claims, error)
}

type TokenIssuer interface {
	TokenVerifier
	Issue(claims map[string]any) (string, error)
}

type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type Options struct {
	// StrictAuth guards the mutating routes that were historically public.
	StrictAuth  bool
	CORSOrigins []string
}

type route struct {
	method  string
	path    string
	auth    Auth
	open    bool // public when StrictAuth is off
	handler http.HandlerFunc
}

func (rt route) level(strict bool) Auth {
	if rt.open && !strict {
		return AuthNone
	}
	return rt.auth
}

// NewRouter binds every route to its guard and handler and wraps the result
// in the CORS policy.
func NewRouter(stores Stores, tokens TokenIssuer, gateway PaymentGateway, opts Options) http.Handler {
	g := &guard{tokens: tokens, users: stores.Users}

	router := mux.NewRouter()
	for _, rt := range routes(stores, tokens, gateway, opts.StrictAuth) {
		router.HandleFunc(rt.path, g.wrap(rt.level(opts.StrictAuth), rt.handler)).Methods(rt.method)
	}

	return muxhandlers.CORS(
		muxhandlers.AllowedOrigins(opts.CORSOrigins),
		muxhandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}),
		muxhandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		muxhandlers.OptionStatusCode(http.StatusOK),
	)(router)
}

func routes(stores Stores, tokens TokenIssuer, gateway PaymentGateway, strict bool) []route {
	tokenHandler := NewTokenHandler(tokens)
	userHandler := NewUserHandler(stores.Users, !strict)
	propertyHandler := NewPropertyHandler(stores.Properties)
	reviewHandler := NewReviewHandler(stores.Reviews)
	wishHandler := NewWishHandler(stores.Wishes)
	offerHandler := NewOfferHandler(stores.Offers)
	paymentHandler := NewPaymentHandler(gateway, stores.Properties)

	return []route{
		{method: http.MethodGet, path: "/", handler: Health},
		{method: http.MethodPost, path: "/jwt", handler: tokenHandler.CreateToken},

		{method: http.MethodPost, path: "/users", handler: userHandler.CreateUser},
		{method: http.MethodGet, path: "/users", auth: AuthAdmin, handler: userHandler.GetUsers},
		{method: http.MethodGet, path: "/user/{email}", auth: AuthSelf, handler: userHandler.GetUserRole},
		{method: http.MethodPatch, path: "/users/{email}", auth: AuthAdmin, handler: userHandler.UpdateRole},
		{method: http.MethodDelete, path: "/users/{id}", auth: AuthAdmin, open: true, handler: userHandler.DeleteUser},

		{method: http.MethodPost, path: "/properties", auth: AuthUser, handler: propertyHandler.CreateProperty},
		{method: http.MethodGet, path: "/properties", auth: AuthUser, handler: propertyHandler.GetProperties},
		{method: http.MethodGet, path: "/properties/{email}", handler: propertyHandler.GetAgentProperties},
		{method: http.MethodGet, path: "/property", handler: propertyHandler.GetProperty},
		{method: http.MethodPatch, path: "/property/{id}", auth: AuthUser, open: true, handler: propertyHandler.EditProperty},
		{method: http.MethodPatch, path: "/propertyVerify/{id}", auth: AuthUser, handler: propertyHandler.VerifyProperty},
		{method: http.MethodPatch, path: "/advertiseProperty/{id}", auth: AuthAdmin, open: true, handler: propertyHandler.AdvertiseProperty},
		{method: http.MethodGet, path: "/displayProperties", handler: propertyHandler.GetDisplayProperties},
		{method: http.MethodGet, path: "/advertiseProperties", handler: propertyHandler.GetVerifiedProperties},
		{method: http.MethodDelete, path: "/properties/{id}", auth: AuthUser, open: true, handler: propertyHandler.DeleteProperty},
		{method: http.MethodDelete, path: "/deleteProperties/{email}", auth: AuthAdmin, open: true, handler: propertyHandler.DeleteAgentProperties},
		{method: http.MethodGet, path: "/allProperties", auth: AuthUser, handler: propertyHandler.SearchProperties},
		{method: http.MethodGet, path: "/soldProperties/{email}", handler: propertyHandler.GetSoldProperties},

		{method: http.MethodPost, path: "/reviews", auth: AuthUser, open: true, handler: reviewHandler.CreateReview},
		{method: http.MethodGet, path: "/reviews", handler: reviewHandler.GetReviews},
		{method: http.MethodGet, path: "/reviews/{email}", handler: reviewHandler.GetUserReviews},
		{method: http.MethodGet, path: "/propertyReviews/{id}", handler: reviewHandler.GetPropertyReviews},
		{method: http.MethodDelete, path: "/reviews/{id}", auth: AuthUser, open: true, handler: reviewHandler.DeleteReview},
		{method: http.MethodGet, path: "/latestReviews", handler: reviewHandler.GetLatestReviews},

		{method: http.MethodPost, path: "/wishList", auth: AuthUser, open: true, handler: wishHandler.CreateWish},
		{method: http.MethodGet, path: "/wishList/{email}", handler: wishHandler.GetUserWishes},
		{method: http.MethodGet, path: "/wishListItem/{id}", handler: wishHandler.GetWish},
		{method: http.MethodDelete, path: "/wishList/{id}", auth: AuthUser, open: true, handler: wishHandler.DeleteWish},

		{method: http.MethodPost, path: "/offers", auth: AuthUser, open: true, handler: offerHandler.CreateOffer},
		{method: http.MethodGet, path: "/offers/{email}", handler: offerHandler.GetBuyerOffers},
		{method: http.MethodGet, path: "/agentOffers/{email}", handler: offerHandler.GetAgentOffers},
		{method: http.MethodPatch, path: "/offers/{id}", auth: AuthUser, open: true, handler: offerHandler.UpdateOfferStatus},
		{method: http.MethodPatch, path: "/offersAutoReject", auth: AuthUser, open: true, handler: offerHandler.AutoRejectOffers},

		{method: http.MethodPost, path: "/create-payment-intent", auth: AuthUser, open: true, handler: paymentHandler.CreatePaymentIntent},
		{method: http.MethodPatch, path: "/propertyBought/{id}", auth: AuthUser, open: true, handler: paymentHandler.MarkPropertyBought},
	}
}

// Health is the liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Urban Oasis Server is Running"))
}
