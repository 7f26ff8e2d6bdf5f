package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
	StatusAccepted = "accepted"

	AdvertiseAccepted = "accepted"
	PropertyBought    = "bought"
)

// Property is a listing created by an agent.
type Property struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	AgentEmail     string             `bson:"agentEmail" json:"agentEmail"`
	AgentName      string             `bson:"agentName,omitempty" json:"agentName,omitempty"`
	AgentImage     string             `bson:"agentImage,omitempty" json:"agentImage,omitempty"`
	Title          string             `bson:"title" json:"title"`
	Location       string             `bson:"location" json:"location"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	MinPrice       float64            `bson:"minPrice" json:"minPrice"`
	MaxPrice       float64            `bson:"maxPrice" json:"maxPrice"`
	Image          string             `bson:"image" json:"image"`
	Status         string             `bson:"status" json:"status"`
	Advertise      string             `bson:"advertise,omitempty" json:"advertise,omitempty"`
	PropertyBought string             `bson:"propertyBought,omitempty" json:"propertyBought,omitempty"`
	PaymentInfo    *PaymentInfo       `bson:"paymentInfo,omitempty" json:"paymentInfo,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// PropertyEdit holds the fields an agent may change on a listing.
// Nil fields are left untouched.
type PropertyEdit struct {
	Title       *string  `json:"title"`
	Location    *string  `json:"location"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
	MinPrice    *float64 `json:"minPrice"`
	MaxPrice    *float64 `json:"maxPrice"`
}

// PaymentInfo is recorded on a property once the buyer has paid.
type PaymentInfo struct {
	TransactionID string    `bson:"transactionId" json:"transactionId" validate:"required"`
	BuyerEmail    string    `bson:"buyerEmail" json:"buyerEmail"`
	BuyerName     string    `bson:"buyerName,omitempty" json:"buyerName,omitempty"`
	Amount        float64   `bson:"amount" json:"amount"`
	Date          time.Time `bson:"date" json:"date"`
}

// SoldProperties is the combined response of a find and a count.
type SoldProperties struct {
	Properties []Property `json:"properties"`
	Count      int64      `json:"count"`
}
