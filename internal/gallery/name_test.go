package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{name: "folder, underscores and hyphens", id: "post-wedding-gallery/my_photo-01.jpg", expected: "My Photo 01"},
		{name: "no folder", id: "first-dance.png", expected: "First Dance"},
		{name: "no extension", id: "post-wedding-gallery/abc123", expected: "Abc123"},
		{name: "nested folders", id: "a/b/c/the_rings.gif", expected: "The Rings"},
		{name: "upper case kept", id: "IMG_2024.PNG", expected: "IMG 2024"},
		{name: "trailing dot kept", id: "photo.", expected: "Photo."},
		{name: "leading digit", id: "post-wedding-gallery/1st-dance.jpg", expected: "1st Dance"},
		{name: "digit then letter", id: "3d-photo.jpg", expected: "3d Photo"},
		{name: "digits only prefix", id: "2024abc", expected: "2024abc"},
		{name: "rest of word untouched", id: "mcDonald_wedding.jpg", expected: "McDonald Wedding"},
		{name: "empty", id: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.id))
		})
	}
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "delivery url",
			url:      "https://res.cloudinary.com/demo/image/upload/v1/post-wedding-gallery/abc.jpg",
			expected: "https://res.cloudinary.com/demo/image/upload/w_400,h_300,c_fill/v1/post-wedding-gallery/abc.jpg",
		},
		{
			name:     "only first upload segment",
			url:      "https://x/upload/upload/a.jpg",
			expected: "https://x/upload/w_400,h_300,c_fill/upload/a.jpg",
		},
		{
			name:     "no upload segment",
			url:      "https://x/abc123.jpg",
			expected: "https://x/abc123.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Thumbnail(tt.url))
		})
	}
}
