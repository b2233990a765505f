package resource

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ablecare/models"

	"github.com/microcosm-cc/bluemonday"
)

const maxShortDescription = 200

// Description is admin-supplied rich text; strip anything a browser should
// not execute before it reaches persistence.
var htmlPolicy = bluemonday.UGCPolicy()

func (in *CreateInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.ShortDescription = strings.TrimSpace(in.ShortDescription)

	if in.Name == "" || in.Description == "" {
		return ValidationError{Message: "name and description are required"}
	}
	if utf8.RuneCountInString(in.ShortDescription) > maxShortDescription {
		return ValidationError{Message: fmt.Sprintf("short description must be at most %d characters", maxShortDescription)}
	}
	if in.CoverImage == nil {
		return ValidationError{Message: "cover image is required"}
	}
	if in.Status == "" {
		in.Status = models.StatusActive
	}
	if in.Status != models.StatusActive && in.Status != models.StatusInactive {
		return ValidationError{Message: fmt.Sprintf("invalid status %q", in.Status)}
	}

	in.Description = htmlPolicy.Sanitize(in.Description)
	in.Features = cleanFeatures(in.Features)
	return nil
}

func (in *UpdateInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.ShortDescription = strings.TrimSpace(in.ShortDescription)

	if in.Name == "" || in.Description == "" {
		return ValidationError{Message: "name and description are required"}
	}
	if utf8.RuneCountInString(in.ShortDescription) > maxShortDescription {
		return ValidationError{Message: fmt.Sprintf("short description must be at most %d characters", maxShortDescription)}
	}
	if in.Status == "" {
		in.Status = models.StatusActive
	}
	if in.Status != models.StatusActive && in.Status != models.StatusInactive {
		return ValidationError{Message: fmt.Sprintf("invalid status %q", in.Status)}
	}

	in.Description = htmlPolicy.Sanitize(in.Description)
	in.Features = cleanFeatures(in.Features)

	// Client-side preview references must never reach persistence.
	if !isStoredAssetURL(in.ExistingImage) {
		in.ExistingImage = ""
	}
	retained := in.ExistingGallery[:0]
	for _, url := range in.ExistingGallery {
		if isStoredAssetURL(url) {
			retained = append(retained, url)
		}
	}
	in.ExistingGallery = retained
	return nil
}

func cleanFeatures(features []string) []string {
	cleaned := features[:0]
	for _, f := range features {
		f = strings.TrimSpace(f)
		if f != "" {
			cleaned = append(cleaned, f)
		}
	}
	return cleaned
}

// isStoredAssetURL reports whether the URL refers to a persisted asset rather
// than an ephemeral browser-local preview.
func isStoredAssetURL(url string) bool {
	if url == "" {
		return false
	}
	return !strings.HasPrefix(url, "blob:") && !strings.HasPrefix(url, "data:")
}
