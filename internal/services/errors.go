package services

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrInvalidToken is returned by TokenService.Verify for any token that
	// is malformed, badly signed or expired.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidID is returned when a path or query id is not an ObjectID.
	ErrInvalidID = errors.New("invalid object id")
	// ErrGateway wraps failures of the payment processor.
	ErrGateway = errors.New("payment gateway error")
	// ErrInvalidPrice is returned for a price no charge can be made for.
	ErrInvalidPrice = errors.New("invalid price")
)

func objectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q: %v", ErrInvalidID, hex, err)
	}
	return id, nil
}
