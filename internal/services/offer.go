package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/db"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
)

type OfferService struct {
	collection *mongo.Collection
}

func NewOfferService(database *mongo.Database) *OfferService {
	return &OfferService{collection: database.Collection(db.Offers)}
}

func (s *OfferService) Insert(ctx context.Context, offer *models.Offer) (string, error) {
	offer.ID = primitive.NewObjectID()
	offer.CreatedAt = time.Now()
	if offer.Status == "" {
		offer.Status = models.StatusPending
	}

	result, err := s.collection.InsertOne(ctx, offer)
	if err != nil {
		return "", err
	}
	return insertedHex(result), nil
}

func (s *OfferService) ListByBuyer(ctx context.Context, email string) ([]models.Offer, error) {
	return findAll[models.Offer](ctx, s.collection, bson.M{"buyerEmail": email})
}

func (s *OfferService) ListByAgent(ctx context.Context, email string) ([]models.Offer, error) {
	return findAll[models.Offer](ctx, s.collection, bson.M{"agentEmail": email})
}

func (s *OfferService) SetStatus(ctx context.Context, id, status string) (models.UpdateResult, error) {
	objID, err := objectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	result, err := s.collection.UpdateOne(ctx, offerStatusFilter(objID, status), bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return updateResult(result), nil
}

// RejectPending is issued by the client after accepting an offer and is not
// atomic with the accept. An offer created between the two calls is rejected
// as well.
func (s *OfferService) RejectPending(ctx context.Context, propertyID string) (models.UpdateResult, error) {
	result, err := s.collection.UpdateMany(ctx, pendingOffersFilter(propertyID), bson.M{"$set": bson.M{"status": models.StatusRejected}})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return updateResult(result), nil
}
