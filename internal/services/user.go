package services

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/db"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
)

type UserService struct {
	collection *mongo.Collection
}

func NewUserService(database *mongo.Database) *UserService {
	return &UserService{collection: database.Collection(db.Users)}
}

func (s *UserService) InsertIfAbsent(ctx context.Context, user *models.User) (string, bool, error) {
	existing, err := findOne[models.User](ctx, s.collection, bson.M{"email": user.Email})
	if err != nil {
		return "", false, err
	}
	if existing != nil {
		return "", false, nil
	}

	user.ID = primitive.NewObjectID()
	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		// Lost a signup race against the unique email index.
		if mongo.IsDuplicateKeyError(err) {
			log.Printf("User %s inserted concurrently", user.Email)
			return "", false, nil
		}
		return "", false, err
	}

	return insertedHex(result), true, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, s.collection, bson.D{})
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, s.collection, bson.M{"email": email})
}

func (s *UserService) SetRole(ctx context.Context, email, role string) (models.UpdateResult, error) {
	result, err := s.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return updateResult(result), nil
}

// Delete removes a user document by its hex id.
func (s *UserService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteByID(ctx, s.collection, id)
}
