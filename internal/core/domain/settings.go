package domain

import "time"

// ContactSettings is a singleton record holding the publicly displayed
// contact details. A default row is created on first read.
type ContactSettings struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Phone     *string   `json:"phone" bson:"phone"`
	Email     *string   `json:"email" bson:"email"`
	Address   *string   `json:"address" bson:"address"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
