// Package qr builds QR-code image links for sharing the gallery with guests.
package qr

import (
	"net/url"
	"strings"
)

const (
	serviceURL  = "https://api.qrserver.com/v1/create-qr-code/"
	DefaultSize = "300x300"
	GallerySize = "400x400"
)

// URL returns the address of a QR image encoding data.
func URL(data, size string) string {
	if size == "" {
		size = DefaultSize
	}
	q := url.Values{}
	q.Set("size", size)
	q.Set("data", data)
	return serviceURL + "?" + q.Encode()
}

// GalleryLink is the page a scanned code opens: the gallery with the camera
// already active.
func GalleryLink(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/#/post-wedding-gallery?camera=true"
}

// Gallery returns the QR image URL for the gallery of the site at baseURL.
func Gallery(baseURL string) string {
	return URL(GalleryLink(baseURL), GallerySize)
}
