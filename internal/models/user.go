package models

import "time"

// User represents an author account in the blog.
type User struct {
	ID        ID        `json:"id,omitempty" bson:"id,omitempty" validate:"omitempty,len=24"`
	Username  string    `json:"username" bson:"username" validate:"required,min=3,max=100"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// Validate checks the user against its struct tags.
func (u *User) Validate() error {
	return validate.Struct(u)
}
