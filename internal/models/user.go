package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

// User is a marketplace account. Email is the natural key. Any other field
// the client sends is kept in Profile and stored alongside the typed fields.
type User struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email   string             `bson:"email" json:"email" validate:"required"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo   string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role    string             `bson:"role,omitempty" json:"role,omitempty"`
	Profile bson.M             `bson:",inline" json:"-"`
}

// user has User's fields without its JSON methods.
type user User

var userFields = []string{"_id", "email", "name", "photo", "role"}

func (u *User) UnmarshalJSON(data []byte) error {
	var typed user
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}
	var profile bson.M
	if err := json.Unmarshal(data, &profile); err != nil {
		return err
	}
	for _, key := range userFields {
		delete(profile, key)
	}
	if len(profile) == 0 {
		profile = nil
	}

	*u = User(typed)
	u.Profile = profile
	return nil
}

// MarshalJSON writes the typed fields with Profile merged in. Typed fields
// win on a key clash.
func (u User) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(user(u))
	if err != nil || len(u.Profile) == 0 {
		return data, err
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for key, value := range u.Profile {
		if _, ok := fields[key]; ok {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		fields[key] = raw
	}
	return json.Marshal(fields)
}
