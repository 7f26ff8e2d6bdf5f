package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wish is a property a user saved for later, with a copy of the listing
// fields shown on the wish-list page.
type Wish struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserEmail  string             `bson:"userEmail" json:"userEmail" validate:"required"`
	PropertyID string             `bson:"propertyId" json:"propertyId" validate:"required"`
	Title      string             `bson:"title,omitempty" json:"title,omitempty"`
	Location   string             `bson:"location,omitempty" json:"location,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	AgentEmail string             `bson:"agentEmail,omitempty" json:"agentEmail,omitempty"`
	AgentName  string             `bson:"agentName,omitempty" json:"agentName,omitempty"`
	MinPrice   float64            `bson:"minPrice,omitempty" json:"minPrice,omitempty"`
	MaxPrice   float64            `bson:"maxPrice,omitempty" json:"maxPrice,omitempty"`
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
