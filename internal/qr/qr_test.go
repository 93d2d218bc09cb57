package qr

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLEncodesData(t *testing.T) {
	u, err := url.Parse(URL("https://boda.example/?a=1&b=2", ""))
	require.NoError(t, err)

	assert.Equal(t, "api.qrserver.com", u.Host)
	assert.Equal(t, "/v1/create-qr-code/", u.Path)
	assert.Equal(t, DefaultSize, u.Query().Get("size"))
	assert.Equal(t, "https://boda.example/?a=1&b=2", u.Query().Get("data"))
}

func TestGallery(t *testing.T) {
	assert.Equal(t, "https://boda.example/#/post-wedding-gallery?camera=true", GalleryLink("https://boda.example/"))

	u, err := url.Parse(Gallery("https://boda.example"))
	require.NoError(t, err)
	assert.Equal(t, GallerySize, u.Query().Get("size"))
	assert.Equal(t, "https://boda.example/#/post-wedding-gallery?camera=true", u.Query().Get("data"))
}
