package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/db"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
)

type PropertyService struct {
	collection *mongo.Collection
}

func NewPropertyService(database *mongo.Database) *PropertyService {
	return &PropertyService{collection: database.Collection(db.Properties)}
}

func (s *PropertyService) Insert(ctx context.Context, property *models.Property) (string, error) {
	property.ID = primitive.NewObjectID()
	property.CreatedAt = time.Now()
	if property.Status == "" {
		property.Status = models.StatusPending
	}

	result, err := s.collection.InsertOne(ctx, property)
	if err != nil {
		return "", err
	}
	return insertedHex(result), nil
}

func (s *PropertyService) List(ctx context.Context) ([]models.Property, error) {
	return findAll[models.Property](ctx, s.collection, bson.D{})
}

func (s *PropertyService) ListByAgent(ctx context.Context, agentEmail string) ([]models.Property, error) {
	return findAll[models.Property](ctx, s.collection, bson.M{"agentEmail": agentEmail})
}

func (s *PropertyService) FindByID(ctx context.Context, id string) (*models.Property, error) {
	return findByID[models.Property](ctx, s.collection, id)
}

func (s *PropertyService) Edit(ctx context.Context, id string, edit models.PropertyEdit) (models.UpdateResult, error) {
	patch := propertyEditPatch(edit)
	if len(patch) == 0 {
		// $set rejects an empty document.
		if _, err := objectID(id); err != nil {
			return models.UpdateResult{}, err
		}
		return models.UpdateResult{Acknowledged: true}, nil
	}
	return updateByID(ctx, s.collection, id, patch)
}

func (s *PropertyService) SetStatus(ctx context.Context, id, status string) (models.UpdateResult, error) {
	return updateByID(ctx, s.collection, id, bson.M{"status": status})
}

func (s *PropertyService) Advertise(ctx context.Context, id string) (models.UpdateResult, error) {
	return updateByID(ctx, s.collection, id, bson.M{"advertise": models.AdvertiseAccepted})
}

func (s *PropertyService) ListAdvertised(ctx context.Context) ([]models.Property, error) {
	return findAll[models.Property](ctx, s.collection,
		bson.M{"advertise": models.AdvertiseAccepted},
		options.Find().SetSort(newestFirst))
}

func (s *PropertyService) ListVerified(ctx context.Context) ([]models.Property, error) {
	return findAll[models.Property](ctx, s.collection, verifiedListingFilter(""))
}

func (s *PropertyService) Search(ctx context.Context, location, sort string) ([]models.Property, error) {
	return findAll[models.Property](ctx, s.collection,
		verifiedListingFilter(location),
		options.Find().SetSort(priceSort(sort)))
}

func (s *PropertyService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteByID(ctx, s.collection, id)
}

func (s *PropertyService) DeleteByAgent(ctx context.Context, agentEmail string) (models.DeleteResult, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{"agentEmail": agentEmail})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return deleteResult(result), nil
}

// Sold issues a find and a count against the same filter. The two reads are
// independent, so a purchase landing between them can make them disagree.
func (s *PropertyService) Sold(ctx context.Context, agentEmail string) (models.SoldProperties, error) {
	filter := soldFilter(agentEmail)
	properties, err := findAll[models.Property](ctx, s.collection, filter)
	if err != nil {
		return models.SoldProperties{}, err
	}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return models.SoldProperties{}, err
	}
	return models.SoldProperties{Properties: properties, Count: count}, nil
}

func (s *PropertyService) MarkBought(ctx context.Context, id string, info models.PaymentInfo) (models.UpdateResult, error) {
	objID, err := objectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	if info.Date.IsZero() {
		info.Date = time.Now()
	}

	result, err := s.collection.UpdateOne(ctx, purchasableFilter(objID), bson.M{"$set": bson.M{
		"propertyBought": models.PropertyBought,
		"paymentInfo":    info,
	}})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return updateResult(result), nil
}
