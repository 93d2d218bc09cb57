package gallery

import (
	"fmt"
	"strings"

	"github.com/h2non/filetype"
)

// MaxFileSize is the largest upload accepted, in bytes.
const MaxFileSize = 10 << 20

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// ValidateFile checks an upload before any network call is made. The declared
// content type wins; when it is missing the type is sniffed from the bytes.
// On success the file's ContentType is filled in.
func ValidateFile(f *File) error {
	if len(f.Data) == 0 {
		return fmt.Errorf("%w: file is empty", ErrInvalidFile)
	}
	if f.Size() > MaxFileSize {
		return fmt.Errorf("%w: file is too large, maximum is 10MB", ErrInvalidFile)
	}

	contentType := strings.ToLower(strings.TrimSpace(f.ContentType))
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if contentType == "" || contentType == "application/octet-stream" {
		kind, err := filetype.Match(f.Data)
		if err != nil || kind == filetype.Unknown {
			return fmt.Errorf("%w: unrecognised file type", ErrInvalidFile)
		}
		contentType = kind.MIME.Value
	}

	if !allowedTypes[contentType] {
		return fmt.Errorf("%w: %s is not supported, please choose a JPG, PNG or GIF image", ErrInvalidFile, contentType)
	}

	f.ContentType = contentType
	return nil
}
