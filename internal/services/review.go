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

type ReviewService struct {
	collection *mongo.Collection
}

func NewReviewService(database *mongo.Database) *ReviewService {
	return &ReviewService{collection: database.Collection(db.Reviews)}
}

func (s *ReviewService) Insert(ctx context.Context, review *models.Review) (string, error) {
	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now()

	result, err := s.collection.InsertOne(ctx, review)
	if err != nil {
		return "", err
	}
	return insertedHex(result), nil
}

func (s *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	return findAll[models.Review](ctx, s.collection, bson.D{}, options.Find().SetSort(newestFirst))
}

func (s *ReviewService) ListByReviewer(ctx context.Context, email string) ([]models.Review, error) {
	return findAll[models.Review](ctx, s.collection, bson.M{"reviewerEmail": email})
}

func (s *ReviewService) ListByProperty(ctx context.Context, propertyID string) ([]models.Review, error) {
	return findAll[models.Review](ctx, s.collection, bson.M{"propertyId": propertyID}, options.Find().SetSort(newestFirst))
}

func (s *ReviewService) Latest(ctx context.Context, limit int64) ([]models.Review, error) {
	return findAll[models.Review](ctx, s.collection, bson.D{}, options.Find().SetSort(newestFirst).SetLimit(limit))
}

func (s *ReviewService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteByID(ctx, s.collection, id)
}
