package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"ablecare/models"
	"ablecare/services/resource"

	"github.com/gin-gonic/gin"
)

// formFiles tracks opened multipart files so the handler can close them once
// the service call returns.
type formFiles struct {
	closers []io.Closer
}

func (f *formFiles) open(fh *multipart.FileHeader) (multipart.File, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	f.closers = append(f.closers, file)
	return file, nil
}

func (f *formFiles) Close() {
	for _, c := range f.closers {
		c.Close()
	}
}

// resourceName reads the display name, accepting both the generic field and
// the kind-specific one the admin UI historically submitted.
func resourceName(c *gin.Context, kind models.Kind) string {
	if name := c.PostForm("name"); name != "" {
		return name
	}
	return c.PostForm(kind.FormNameField)
}

func parseFeatures(c *gin.Context) ([]string, error) {
	raw := c.PostForm("features")
	if raw == "" {
		return nil, nil
	}
	var features []string
	if err := json.Unmarshal([]byte(raw), &features); err != nil {
		return nil, resource.ValidationError{Message: "features must be a JSON array of strings"}
	}
	return features, nil
}

func parseOrder(c *gin.Context) int {
	order, err := strconv.Atoi(c.PostForm("order"))
	if err != nil {
		return 0
	}
	return order
}

func openGalleryFiles(c *gin.Context, files *formFiles) ([]io.Reader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	var readers []io.Reader
	for _, fh := range form.File["galleryImages"] {
		if fh.Size == 0 {
			continue
		}
		file, err := files.open(fh)
		if err != nil {
			return nil, resource.ValidationError{Message: "failed to read gallery image"}
		}
		readers = append(readers, file)
	}
	return readers, nil
}

func parseCreateForm(c *gin.Context, kind models.Kind, files *formFiles) (resource.CreateInput, error) {
	in := resource.CreateInput{
		Name:             resourceName(c, kind),
		ShortDescription: c.PostForm("shortDescription"),
		Description:      c.PostForm("description"),
		Status:           c.PostForm("status"),
		Order:            parseOrder(c),
		SEOTitle:         c.PostForm("seoTitle"),
		SEODescription:   c.PostForm("seoDescription"),
		SEOKeywords:      c.PostForm("seoKeywords"),
	}

	features, err := parseFeatures(c)
	if err != nil {
		return in, err
	}
	in.Features = features

	if fh, err := c.FormFile("image"); err == nil && fh.Size > 0 {
		file, err := files.open(fh)
		if err != nil {
			return in, resource.ValidationError{Message: "failed to read cover image"}
		}
		in.CoverImage = file
	}

	gallery, err := openGalleryFiles(c, files)
	if err != nil {
		return in, err
	}
	in.GalleryImages = gallery
	return in, nil
}

func parseUpdateForm(c *gin.Context, kind models.Kind, files *formFiles) (resource.UpdateInput, error) {
	in := resource.UpdateInput{
		Name:             resourceName(c, kind),
		ShortDescription: c.PostForm("shortDescription"),
		Description:      c.PostForm("description"),
		Status:           c.PostForm("status"),
		Order:            parseOrder(c),
		SEOTitle:         c.PostForm("seoTitle"),
		SEODescription:   c.PostForm("seoDescription"),
		SEOKeywords:      c.PostForm("seoKeywords"),
		ExistingImage:    c.PostForm("existingImage"),
	}

	features, err := parseFeatures(c)
	if err != nil {
		return in, err
	}
	in.Features = features

	// Retained gallery URLs arrive as indexed fields; the first gap ends the
	// sequence.
	for i := 0; ; i++ {
		url, ok := c.GetPostForm(fmt.Sprintf("existingGallery[%d]", i))
		if !ok {
			break
		}
		if url != "" {
			in.ExistingGallery = append(in.ExistingGallery, url)
		}
	}

	if fh, err := c.FormFile("image"); err == nil && fh.Size > 0 {
		file, err := files.open(fh)
		if err != nil {
			return in, resource.ValidationError{Message: "failed to read cover image"}
		}
		in.CoverImage = file
	}

	gallery, err := openGalleryFiles(c, files)
	if err != nil {
		return in, err
	}
	in.NewGalleryImages = gallery
	return in, nil
}
