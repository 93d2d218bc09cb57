// Package gallery serves the post-wedding photo gallery: a provider-agnostic
// image list with a short-lived cache and a session ledger that keeps fresh
// uploads visible while the remote listing catches up.
package gallery

import "time"

// GalleryImage is one photo known to the gallery.
type GalleryImage struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Thumbnail  string    `json:"thumbnail,omitempty"`
	Name       string    `json:"name"`
	UploadDate time.Time `json:"uploadDate"`
}

// UploadResult is the outcome of a single upload attempt. Image is set only
// on success and Error only on failure.
type UploadResult struct {
	Success bool          `json:"success"`
	Image   *GalleryImage `json:"image,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func uploadSucceeded(img GalleryImage) UploadResult {
	return UploadResult{Success: true, Image: &img}
}

func uploadFailed(err error) UploadResult {
	msg := "unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return UploadResult{Success: false, Error: msg}
}

// File is an image submitted by a guest.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Size returns the file size in bytes.
func (f File) Size() int64 {
	return int64(len(f.Data))
}
