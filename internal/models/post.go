package models

import "time"

// Post represents a blog post. AuthorID references the user that wrote it and
// is required, so it must always be a full 24-character identifier.
type Post struct {
	ID        ID        `json:"id,omitempty" bson:"id,omitempty" validate:"omitempty,len=24"`
	Title     string    `json:"title" bson:"title" validate:"required,min=3,max=200"`
	Content   string    `json:"content" bson:"content" validate:"required"`
	AuthorID  ID        `json:"author_id" bson:"author_id" validate:"required,len=24"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// Validate checks the post against its struct tags.
func (p *Post) Validate() error {
	return validate.Struct(p)
}
