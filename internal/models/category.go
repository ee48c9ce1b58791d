package models

import (
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category keeps any caller-supplied attributes besides the name in Fields.
type Category struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Name      string                 `bson:"name" json:"name"`
	Fields    map[string]interface{} `bson:",inline" json:"-"`
	CreatedAt time.Time              `bson:"createdAt" json:"createdAt"`
}

// Reserved category keys owned by the server or the struct itself.
var categoryKeys = map[string]bool{"_id": true, "name": true, "createdAt": true}

// IsCategoryKey reports whether key maps onto a Category struct field.
func IsCategoryKey(key string) bool {
	return categoryKeys[key]
}

// MarshalJSON flattens Fields next to the fixed attributes.
func (c Category) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Fields)+3)
	for k, v := range c.Fields {
		if !categoryKeys[k] {
			out[k] = v
		}
	}
	out["_id"] = c.ID
	out["name"] = c.Name
	out["createdAt"] = c.CreatedAt
	return json.Marshal(out)
}
