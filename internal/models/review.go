package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user's rating of a property.
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ReviewerEmail string             `bson:"reviewerEmail" json:"reviewerEmail" validate:"required"`
	ReviewerName  string             `bson:"reviewerName,omitempty" json:"reviewerName,omitempty"`
	ReviewerImage string             `bson:"reviewerImage,omitempty" json:"reviewerImage,omitempty"`
	PropertyID    string             `bson:"propertyId" json:"propertyId" validate:"required"`
	PropertyTitle string             `bson:"propertyTitle,omitempty" json:"propertyTitle,omitempty"`
	AgentName     string             `bson:"agentName,omitempty" json:"agentName,omitempty"`
	Rating        float64            `bson:"rating" json:"rating"`
	Text          string             `bson:"text" json:"text"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
