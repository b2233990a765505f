package models

import "time"

// Banner is a homepage carousel entry. Banners follow the same soft-delete
// convention as content resources: IsDeleted marks the tombstone and deleted
// banners stay in the collection.
type Banner struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Subtitle  string    `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Image     string    `bson:"image" json:"image"`
	LinkURL   string    `bson:"linkUrl,omitempty" json:"linkUrl,omitempty"`
	Order     int       `bson:"order" json:"order"`
	Status    string    `bson:"status" json:"status"`
	IsDeleted bool      `bson:"isDeleted" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
