package models

// Kind identifies one of the content resource collections. Services and
// support models share the same document shape and lifecycle; a Kind carries
// the per-collection naming so one service implementation can serve both.
type Kind struct {
	// Name is the short identifier used in cache keys and logs.
	Name string
	// Collection is the MongoDB collection name.
	Collection string
	// Folder is the asset store namespace for uploaded images.
	Folder string
	// Label is the human-readable singular used in messages.
	Label string
	// FormNameField is the legacy multipart field the admin UI submits the
	// display name under, accepted alongside the generic "name" field.
	FormNameField string
}

var (
	KindService = Kind{
		Name:          "service",
		Collection:    "services",
		Folder:        "services",
		Label:         "service",
		FormNameField: "serviceName",
	}
	KindSupportModel = Kind{
		Name:          "support-model",
		Collection:    "support_models",
		Folder:        "support-models",
		Label:         "support model",
		FormNameField: "title",
	}
)
