package gallery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	uploadPathSegment  = "/upload/"
	thumbnailTransform = "w_400,h_300,c_fill/"
)

var separatorReplacer = strings.NewReplacer("-", " ", "_", " ")

// DisplayName derives a human-readable name from a storage identifier:
// "post-wedding-gallery/my_photo-01.jpg" becomes "My Photo 01".
func DisplayName(id string) string {
	name := id
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		name = name[:i]
	}
	name = separatorReplacer.Replace(name)

	// Casers carry state, so each call gets its own.
	upper := cases.Upper(language.Und)
	words := strings.Split(name, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if !unicode.IsLetter(r) {
			continue
		}
		words[i] = upper.String(w[:size]) + w[size:]
	}
	return strings.Join(words, " ")
}

// Thumbnail returns the resized variant of a delivery URL by inserting the
// crop transform right after the upload path component. URLs without that
// component are returned unchanged.
func Thumbnail(url string) string {
	return strings.Replace(url, uploadPathSegment, uploadPathSegment+thumbnailTransform, 1)
}
