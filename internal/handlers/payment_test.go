package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/services"
)

func TestCreatePaymentIntent(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int64
	}{
		{name: "price", body: `{"price":10}`, want: 1000},
		{name: "fractional price", body: `{"price":12.345}`, want: 1234},
		{name: "no price", body: `{}`, want: services.DefaultPaymentAmount},
		{name: "zero price", body: `{"price":0}`, want: services.DefaultPaymentAmount},
		{name: "empty body", body: "", want: services.DefaultPaymentAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, true)

			rec := s.do(t, http.MethodPost, "/create-payment-intent", tt.body, s.token(t, "buyer@x.com"))
			expectStatus(t, rec, http.StatusOK)

			if s.gateway.amount != tt.want || s.gateway.currency != "usd" {
				t.Errorf("gateway got %d %s, want %d usd", s.gateway.amount, s.gateway.currency, tt.want)
			}
			res := decode[models.PaymentIntentResponse](t, rec)
			if res.ClientSecret != fmt.Sprintf("pi_%d_secret", tt.want) {
				t.Errorf("clientSecret = %q", res.ClientSecret)
			}
		})
	}
}

func TestCreatePaymentIntentGatewayError(t *testing.T) {
	s := newTestServer(t, true)
	s.gateway.err = fmt.Errorf("%w: card_declined", services.ErrGateway)

	rec := s.do(t, http.MethodPost, "/create-payment-intent", `{"price":10}`, s.token(t, "buyer@x.com"))
	expectStatus(t, rec, http.StatusInternalServerError)
	if got := decode[map[string]string](t, rec)["error"]; got != "payment gateway error" {
		t.Errorf("error = %q", got)
	}

	s.gateway.err = errors.New("boom")
	rec = s.do(t, http.MethodPost, "/create-payment-intent", `{"price":10}`, s.token(t, "buyer@x.com"))
	expectStatus(t, rec, http.StatusInternalServerError)
}

func TestCreatePaymentIntentRejectsBadPrice(t *testing.T) {
	for _, body := range []string{`{"price":-5}`, `{"price":1e300}`, `{"price":"10"}`} {
		s := newTestServer(t, true)

		rec := s.do(t, http.MethodPost, "/create-payment-intent", body, s.token(t, "buyer@x.com"))
		expectStatus(t, rec, http.StatusBadRequest)
		if s.gateway.amount != 0 {
			t.Errorf("%s reached the gateway with %d", body, s.gateway.amount)
		}
	}
}

func TestMarkPropertyBought(t *testing.T) {
	s := newTestServer(t, true)
	id := primitive.NewObjectID()
	s.properties.properties = []models.Property{
		{ID: id, AgentEmail: "agent@x.com", Title: "Loft", Status: models.StatusVerified},
		{ID: primitive.NewObjectID(), AgentEmail: "agent@x.com", Title: "Shed", Status: models.StatusVerified},
	}
	token := s.token(t, "buyer@x.com")
	body := `{"transactionId":"pi_123","amount":150}`

	rec := s.do(t, http.MethodPatch, "/propertyBought/"+id.Hex(), body, token)
	expectStatus(t, rec, http.StatusOK)
	if got := decode[models.UpdateResult](t, rec); got.ModifiedCount != 1 {
		t.Fatalf("first purchase = %+v", got)
	}

	p := s.properties.properties[0]
	if p.PropertyBought != models.PropertyBought || p.PaymentInfo == nil || p.PaymentInfo.BuyerEmail != "buyer@x.com" {
		t.Errorf("bought property = %+v", p)
	}

	rec = s.do(t, http.MethodPatch, "/propertyBought/"+id.Hex(), body, s.token(t, "late@x.com"))
	expectStatus(t, rec, http.StatusOK)
	if got := decode[models.UpdateResult](t, rec); got.ModifiedCount != 0 {
		t.Errorf("second purchase = %+v", got)
	}
	if got := s.properties.properties[0].PaymentInfo.BuyerEmail; got != "buyer@x.com" {
		t.Errorf("buyer overwritten with %q", got)
	}

	rec = s.do(t, http.MethodPatch, "/propertyBought/"+id.Hex(), `{"amount":150}`, token)
	expectStatus(t, rec, http.StatusBadRequest)

	rec = s.do(t, http.MethodGet, "/soldProperties/agent@x.com", "", "")
	expectStatus(t, rec, http.StatusOK)
	sold := decode[models.SoldProperties](t, rec)
	if sold.Count != 1 || len(sold.Properties) != 1 || sold.Properties[0].Title != "Loft" {
		t.Errorf("sold = %+v", sold)
	}
}
