package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/services"
)

// In-memory stores with the same filter semantics as the Mongo services.
// Records are kept in insertion order.

func parseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return id, fmt.Errorf("%w %q", services.ErrInvalidID, hex)
	}
	return id, nil
}

type memUsers struct {
	mu    sync.Mutex
	users []models.User
	err   error
}

func (s *memUsers) InsertIfAbsent(ctx context.Context, u *models.User) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return "", false, nil
		}
	}
	u.ID = primitive.NewObjectID()
	s.users = append(s.users, *u)
	return u.ID.Hex(), true, nil
}

func (s *memUsers) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User{}, s.users...), nil
}

func (s *memUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memUsers) SetRole(ctx context.Context, email, role string) (models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := models.UpdateResult{Acknowledged: true}
	for i := range s.users {
		if s.users[i].Email == email {
			res.MatchedCount++
			if s.users[i].Role != role {
				s.users[i].Role = role
				res.ModifiedCount++
			}
			break
		}
	}
	return res, nil
}

func (s *memUsers) Delete(ctx context.Context, hex string) (models.DeleteResult, error) {
	id, err := parseID(hex)
	if err != nil {
		return models.DeleteResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.DeleteResult{Acknowledged: true}, nil
}

type memProperties struct {
	mu         sync.Mutex
	properties []models.Property
}

func (s *memProperties) filter(keep func(models.Property) bool) []models.Property {
	out := []models.Property{}
	for _, p := range s.properties {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *memProperties) update(hex string, keep func(models.Property) bool, apply func(*models.Property) bool) (models.UpdateResult, error) {
	id, err := parseID(hex)
	if err != nil {
		return models.UpdateResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res := models.UpdateResult{Acknowledged: true}
	for i := range s.properties {
		if s.properties[i].ID == id && keep(s.properties[i]) {
			res.MatchedCount++
			if apply(&s.properties[i]) {
				res.ModifiedCount++
			}
		}
	}
	return res, nil
}

func always(models.Property) bool { return true }

func (s *memProperties) Insert(ctx context.Context, p *models.Property) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = primitive.NewObjectID()
	if p.Status == "" {
		p.Status = models.StatusPending
	}
	s.properties = append(s.properties, *p)
	return p.ID.Hex(), nil
}

func (s *memProperties) List(ctx context.Context) ([]models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(always), nil
}

func (s *memProperties) ListByAgent(ctx context.Context, agentEmail string) ([]models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(p models.Property) bool { return p.AgentEmail == agentEmail }), nil
}

func (s *memProperties) FindByID(ctx context.Context, hex string) (*models.Property, error) {
	id, err := parseID(hex)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.properties {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (s *memProperties) Edit(ctx context.Context, hex string, edit models.PropertyEdit) (models.UpdateResult, error) {
	return s.update(hex, always, func(p *models.Property) bool {
		before := *p
		if edit.Title != nil {
			p.Title = *edit.Title
		}
		if edit.Location != nil {
			p.Location = *edit.Location
		}
		if edit.Image != nil {
			p.Image = *edit.Image
		}
		if edit.Description != nil {
			p.Description = *edit.Description
		}
		if edit.MinPrice != nil {
			p.MinPrice = *edit.MinPrice
		}
		if edit.MaxPrice != nil {
			p.MaxPrice = *edit.MaxPrice
		}
		return before != *p
	})
}

func (s *memProperties) SetStatus(ctx context.Context, hex, status string) (models.UpdateResult, error) {
	return s.update(hex, always, func(p *models.Property) bool {
		changed := p.Status != status
		p.Status = status
		return changed
	})
}

func (s *memProperties) Advertise(ctx context.Context, hex string) (models.UpdateResult, error) {
	return s.update(hex, always, func(p *models.Property) bool {
		changed := p.Advertise != models.AdvertiseAccepted
		p.Advertise = models.AdvertiseAccepted
		return changed
	})
}

func (s *memProperties) ListAdvertised(ctx context.Context) ([]models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.filter(func(p models.Property) bool { return p.Advertise == models.AdvertiseAccepted })
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (s *memProperties) ListVerified(ctx context.Context) ([]models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(p models.Property) bool { return p.Status == models.StatusVerified }), nil
}

func (s *memProperties) Search(ctx context.Context, location, sortToken string) ([]models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	term := strings.ToLower(location)
	out := s.filter(func(p models.Property) bool {
		return p.Status == models.StatusVerified && strings.Contains(strings.ToLower(p.Location), term)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if sortToken == "low" {
			return out[i].MinPrice < out[j].MinPrice
		}
		return out[i].MinPrice > out[j].MinPrice
	})
	return out, nil
}

func (s *memProperties) Delete(ctx context.Context, hex string) (models.DeleteResult, error) {
	id, err := parseID(hex)
	if err != nil {
		return models.DeleteResult{}, err
	}
	return s.deleteWhere(func(p models.Property) bool { return p.ID == id }, 1), nil
}

func (s *memProperties) DeleteByAgent(ctx context.Context, agentEmail string) (models.DeleteResult, error) {
	return s.deleteWhere(func(p models.Property) bool { return p.AgentEmail == agentEmail }, -1), nil
}

func (s *memProperties) deleteWhere(match func(models.Property) bool, limit int) models.DeleteResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := models.DeleteResult{Acknowledged: true}
	kept := s.properties[:0]
	for _, p := range s.properties {
		if match(p) && (limit < 0 || res.DeletedCount < int64(limit)) {
			res.DeletedCount++
			continue
		}
		kept = append(kept, p)
	}
	s.properties = kept
	return res
}

func (s *memProperties) Sold(ctx context.Context, agentEmail string) (models.SoldProperties, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sold := s.filter(func(p models.Property) bool {
		return p.AgentEmail == agentEmail && p.PropertyBought == models.PropertyBought
	})
	return models.SoldProperties{Properties: sold, Count: int64(len(sold))}, nil
}

func (s *memProperties) MarkBought(ctx context.Context, hex string, info models.PaymentInfo) (models.UpdateResult, error) {
	unsold := func(p models.Property) bool { return p.PropertyBought != models.PropertyBought }
	return s.update(hex, unsold, func(p *models.Property) bool {
		p.PropertyBought = models.PropertyBought
		p.PaymentInfo = &info
		return true
	})
}

type memWishes struct {
	mu     sync.Mutex
	wishes []models.Wish
}

func (s *memWishes) Insert(ctx context.Context, w *models.Wish) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.ID = primitive.NewObjectID()
	s.wishes = append(s.wishes, *w)
	return w.ID.Hex(), nil
}

func (s *memWishes) ListByUser(ctx context.Context, email string) ([]models.Wish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Wish{}
	for _, w := range s.wishes {
		if w.UserEmail == email {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *memWishes) FindByID(ctx context.Context, hex string) (*models.Wish, error) {
	id, err := parseID(hex)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.wishes {
		if w.ID == id {
			w := w
			return &w, nil
		}
	}
	return nil, nil
}

func (s *memWishes) Delete(ctx context.Context, hex string) (models.DeleteResult, error) {
	id, err := parseID(hex)
	if err != nil {
		return models.DeleteResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.wishes {
		if w.ID == id {
			s.wishes = append(s.wishes[:i], s.wishes[i+1:]...)
			return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.DeleteResult{Acknowledged: true}, nil
}

type memOffers struct {
	mu     sync.Mutex
	offers []models.Offer
}

func (s *memOffers) Insert(ctx context.Context, o *models.Offer) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = primitive.NewObjectID()
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	s.offers = append(s.offers, *o)
	return o.ID.Hex(), nil
}

func (s *memOffers) list(match func(models.Offer) bool) []models.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Offer{}
	for _, o := range s.offers {
		if match(o) {
			out = append(out, o)
		}
	}
	return out
}

func (s *memOffers) ListByBuyer(ctx context.Context, email string) ([]models.Offer, error) {
	return s.list(func(o models.Offer) bool { return o.BuyerEmail == email }), nil
}

func (s *memOffers) ListByAgent(ctx context.Context, email string) ([]models.Offer, error) {
	return s.list(func(o models.Offer) bool { return o.AgentEmail == email }), nil
}

func (s *memOffers) SetStatus(ctx context.Context, hex, status string) (models.UpdateResult, error) {
	id, err := parseID(hex)
	if err != nil {
		return models.UpdateResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res := models.UpdateResult{Acknowledged: true}
	for i := range s.offers {
		o := &s.offers[i]
		if o.ID != id || (status == models.StatusAccepted && o.Status != models.StatusPending) {
			continue
		}
		res.MatchedCount++
		if o.Status != status {
			o.Status = status
			res.ModifiedCount++
		}
	}
	return res, nil
}

func (s *memOffers) RejectPending(ctx context.Context, propertyID string) (models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := models.UpdateResult{Acknowledged: true}
	for i := range s.offers {
		o := &s.offers[i]
		if o.PropertyID == propertyID && o.Status == models.StatusPending {
			o.Status = models.StatusRejected
			res.MatchedCount++
			res.ModifiedCount++
		}
	}
	return res, nil
}

type memReviews struct {
	mu      sync.Mutex
	reviews []models.Review
}

func (s *memReviews) Insert(ctx context.Context, r *models.Review) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = primitive.NewObjectID()
	s.reviews = append(s.reviews, *r)
	return r.ID.Hex(), nil
}

func (s *memReviews) newest(match func(models.Review) bool, limit int) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Review{}
	for i := len(s.reviews) - 1; i >= 0; i-- {
		if match(s.reviews[i]) {
			out = append(out, s.reviews[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (s *memReviews) List(ctx context.Context) ([]models.Review, error) {
	return s.newest(func(models.Review) bool { return true }, 0), nil
}

func (s *memReviews) ListByReviewer(ctx context.Context, email string) ([]models.Review, error) {
	return s.newest(func(r models.Review) bool { return r.ReviewerEmail == email }, 0), nil
}

func (s *memReviews) ListByProperty(ctx context.Context, propertyID string) ([]models.Review, error) {
	return s.newest(func(r models.Review) bool { return r.PropertyID == propertyID }, 0), nil
}

func (s *memReviews) Latest(ctx context.Context, limit int64) ([]models.Review, error) {
	return s.newest(func(models.Review) bool { return true }, int(limit)), nil
}

func (s *memReviews) Delete(ctx context.Context, hex string) (models.DeleteResult, error) {
	id, err := parseID(hex)
	if err != nil {
		return models.DeleteResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.reviews {
		if r.ID == id {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.DeleteResult{Acknowledged: true}, nil
}

type fakeGateway struct {
	amount   int64
	currency string
	err      error
}

func (g *fakeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	g.amount, g.currency = amount, currency
	if g.err != nil {
		return "", g.err
	}
	return fmt.Sprintf("pi_%d_secret", amount), nil
}
