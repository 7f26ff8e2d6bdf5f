package services

import (
	"context"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
)

// UserStore is the users collection.
type UserStore interface {
	// InsertIfAbsent stores u unless a user with the same email exists, in
	// which case it reports inserted == false and writes nothing.
	InsertIfAbsent(ctx context.Context, u *models.User) (id string, inserted bool, err error)
	List(ctx context.Context) ([]models.User, error)
	// FindByEmail returns nil, nil when no user has that email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetRole(ctx context.Context, email, role string) (models.UpdateResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

// PropertyStore is the properties collection.
type PropertyStore interface {
	Insert(ctx context.Context, p *models.Property) (string, error)
	List(ctx context.Context) ([]models.Property, error)
	ListByAgent(ctx context.Context, agentEmail string) ([]models.Property, error)
	// FindByID returns nil, nil when the id matches nothing.
	FindByID(ctx context.Context, id string) (*models.Property, error)
	Edit(ctx context.Context, id string, edit models.PropertyEdit) (models.UpdateResult, error)
	SetStatus(ctx context.Context, id, status string) (models.UpdateResult, error)
	Advertise(ctx context.Context, id string) (models.UpdateResult, error)
	// ListAdvertised returns advertised listings, newest first.
	ListAdvertised(ctx context.Context) ([]models.Property, error)
	ListVerified(ctx context.Context) ([]models.Property, error)
	// Search returns verified listings whose location contains the given
	// term, case-insensitively, ordered by minPrice ascending when sort is
	// "low" and descending otherwise.
	Search(ctx context.Context, location, sort string) ([]models.Property, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
	DeleteByAgent(ctx context.Context, agentEmail string) (models.DeleteResult, error)
	Sold(ctx context.Context, agentEmail string) (models.SoldProperties, error)
	// MarkBought records the purchase. A property already bought is not
	// modified.
	MarkBought(ctx context.Context, id string, info models.PaymentInfo) (models.UpdateResult, error)
}

// WishStore is the wish-list collection.
type WishStore interface {
	Insert(ctx context.Context, w *models.Wish) (string, error)
	ListByUser(ctx context.Context, email string) ([]models.Wish, error)
	FindByID(ctx context.Context, id string) (*models.Wish, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

// OfferStore is the offers collection.
type OfferStore interface {
	Insert(ctx context.Context, o *models.Offer) (string, error)
	ListByBuyer(ctx context.Context, email string) ([]models.Offer, error)
	ListByAgent(ctx context.Context, email string) ([]models.Offer, error)
	// SetStatus changes an offer's status. Accepting only applies to an
	// offer that is still pending.
	SetStatus(ctx context.Context, id, status string) (models.UpdateResult, error)
	// RejectPending rejects every pending offer on the property. Offers
	// already accepted or rejected are untouched.
	RejectPending(ctx context.Context, propertyID string) (models.UpdateResult, error)
}

// ReviewStore is the reviews collection.
type ReviewStore interface {
	Insert(ctx context.Context, r *models.Review) (string, error)
	List(ctx context.Context) ([]models.Review, error)
	ListByReviewer(ctx context.Context, email string) ([]models.Review, error)
	ListByProperty(ctx context.Context, propertyID string) ([]models.Review, error)
	Latest(ctx context.Context, limit int64) ([]models.Review, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}
