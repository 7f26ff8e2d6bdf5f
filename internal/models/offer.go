package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Offer is a buyer's bid on a property.
type Offer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BuyerEmail string             `bson:"buyerEmail" json:"buyerEmail" validate:"required"`
	BuyerName  string             `bson:"buyerName,omitempty" json:"buyerName,omitempty"`
	AgentEmail string             `bson:"agentEmail" json:"agentEmail"`
	PropertyID string             `bson:"propertyId" json:"propertyId" validate:"required"`
	Title      string             `bson:"title,omitempty" json:"title,omitempty"`
	Location   string             `bson:"location,omitempty" json:"location,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Amount     float64            `bson:"amount" json:"amount"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
