package services

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
)

const sortLow = "low"

var newestFirst = bson.D{{Key: "_id", Value: -1}}

// verifiedListingFilter selects verified properties, optionally narrowed to
// locations containing term. The term is matched literally.
func verifiedListingFilter(term string) bson.M {
	filter := bson.M{"status": models.StatusVerified}
	if term != "" {
		filter["location"] = bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}
	}
	return filter
}

func priceSort(token string) bson.D {
	if token == sortLow {
		return bson.D{{Key: "minPrice", Value: 1}}
	}
	return bson.D{{Key: "minPrice", Value: -1}}
}

func propertyEditPatch(edit models.PropertyEdit) bson.M {
	set := bson.M{}
	if edit.Title != nil {
		set["title"] = *edit.Title
	}
	if edit.Location != nil {
		set["location"] = *edit.Location
	}
	if edit.Image != nil {
		set["image"] = *edit.Image
	}
	if edit.Description != nil {
		set["description"] = *edit.Description
	}
	if edit.MinPrice != nil {
		set["minPrice"] = *edit.MinPrice
	}
	if edit.MaxPrice != nil {
		set["maxPrice"] = *edit.MaxPrice
	}
	return set
}

// purchasableFilter matches the property only while it is unsold, so a
// second purchase of the same listing modifies nothing.
func purchasableFilter(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "propertyBought": bson.M{"$ne": models.PropertyBought}}
}

// offerStatusFilter matches the offer to update. Accepting is conditional on
// the offer still being pending.
func offerStatusFilter(id primitive.ObjectID, status string) bson.M {
	filter := bson.M{"_id": id}
	if status == models.StatusAccepted {
		filter["status"] = models.StatusPending
	}
	return filter
}

func pendingOffersFilter(propertyID string) bson.M {
	return bson.M{"propertyId": propertyID, "status": models.StatusPending}
}

func soldFilter(agentEmail string) bson.M {
	return bson.M{"agentEmail": agentEmail, "propertyBought": models.PropertyBought}
}
