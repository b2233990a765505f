package models

import "time"

// SiteSettings is the single site-wide settings document, upserted on save.
type SiteSettings struct {
	SiteName        string    `bson:"siteName" json:"siteName"`
	Tagline         string    `bson:"tagline,omitempty" json:"tagline,omitempty"`
	LogoURL         string    `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	FaviconURL      string    `bson:"faviconUrl,omitempty" json:"faviconUrl,omitempty"`
	FooterText      string    `bson:"footerText,omitempty" json:"footerText,omitempty"`
	MaintenanceMode bool      `bson:"maintenanceMode" json:"maintenanceMode"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ContactInfo is the single contact details document, upserted on save.
type ContactInfo struct {
	Phone       string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Email       string            `bson:"email,omitempty" json:"email,omitempty"`
	Address     string            `bson:"address,omitempty" json:"address,omitempty"`
	Hours       string            `bson:"hours,omitempty" json:"hours,omitempty"`
	MapEmbedURL string            `bson:"mapEmbedUrl,omitempty" json:"mapEmbedUrl,omitempty"`
	SocialLinks map[string]string `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	UpdatedAt   time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// SEOPage holds the SEO metadata for one static page, keyed by page name
// (home, about, contact, ndis, ...).
type SEOPage struct {
	Page        string    `bson:"page" json:"page"`
	Title       string    `bson:"title,omitempty" json:"title,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Keywords    string    `bson:"keywords,omitempty" json:"keywords,omitempty"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
