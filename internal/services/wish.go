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

type WishService struct {
	collection *mongo.Collection
}

func NewWishService(database *mongo.Database) *WishService {
	return &WishService{collection: database.Collection(db.Wishes)}
}

func (s *WishService) Insert(ctx context.Context, wish *models.Wish) (string, error) {
	wish.ID = primitive.NewObjectID()
	wish.CreatedAt = time.Now()

	result, err := s.collection.InsertOne(ctx, wish)
	if err != nil {
		return "", err
	}
	return insertedHex(result), nil
}

func (s *WishService) ListByUser(ctx context.Context, email string) ([]models.Wish, error) {
	return findAll[models.Wish](ctx, s.collection, bson.M{"userEmail": email})
}

func (s *WishService) FindByID(ctx context.Context, id string) (*models.Wish, error) {
	return findByID[models.Wish](ctx, s.collection, id)
}

func (s *WishService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteByID(ctx, s.collection, id)
}
