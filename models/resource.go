package models

import "time"

// Resource status values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ContentResource is the document shape shared by services and support models.
// Slug and Order are unique among non-deleted documents of the same kind; the
// uniqueness is enforced both by the lifecycle service and by partial unique
// indexes on the collection.
type ContentResource struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	ShortDescription string    `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Description      string    `bson:"description" json:"description"`
	Image            string    `bson:"image" json:"image"`
	Gallery          []string  `bson:"gallery" json:"gallery"`
	Features         []string  `bson:"features" json:"features"`
	Slug             string    `bson:"slug" json:"slug"`
	Status           string    `bson:"status" json:"status"`
	Order            int       `bson:"order" json:"order"`
	SEOTitle         string    `bson:"seoTitle,omitempty" json:"seoTitle,omitempty"`
	SEODescription   string    `bson:"seoDescription,omitempty" json:"seoDescription,omitempty"`
	SEOKeywords      string    `bson:"seoKeywords,omitempty" json:"seoKeywords,omitempty"`
	Views            int64     `bson:"views" json:"views"`
	Bookings         int64     `bson:"bookings" json:"bookings"`
	IsDeleted        bool      `bson:"isDeleted" json:"-"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
