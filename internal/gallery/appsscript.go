package gallery

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// AppsScriptProvider stores photos in a Google Drive folder through the
// wedding's Apps Script web app.
type AppsScriptProvider struct {
	client    *http.Client
	scriptURL string
	now       func() time.Time
}

// NewAppsScriptProvider creates an AppsScriptProvider for the deployed web app URL.
func NewAppsScriptProvider(client *http.Client, scriptURL string) *AppsScriptProvider {
	return &AppsScriptProvider{client: client, scriptURL: scriptURL, now: time.Now}
}

func (p *AppsScriptProvider) Name() string { return ProviderAppsScript }

type appsScriptResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Image   *GalleryImage  `json:"image"`
	Images  []GalleryImage `json:"images"`
}

func (r appsScriptResponse) err(fallback string) error {
	if r.Status == "success" {
		return nil
	}
	msg := r.Message
	if msg == "" {
		msg = fallback
	}
	return fmt.Errorf("%w: %s", ErrMalformedResponse, msg)
}

func (p *AppsScriptProvider) ListImages(ctx context.Context) ([]GalleryImage, error) {
	endpoint, err := p.endpoint(url.Values{"action": {"getImages"}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build listing request: %w", err)
	}

	var out appsScriptResponse
	if err := doJSON(p.client, req, &out); err != nil {
		return nil, err
	}
	if err := out.err("could not fetch images"); err != nil {
		return nil, err
	}
	return normalize(out.Images)
}

// Upload sends the file base64-encoded in a form body.
func (p *AppsScriptProvider) Upload(ctx context.Context, f File) (GalleryImage, error) {
	endpoint, err := p.endpoint(nil)
	if err != nil {
		return GalleryImage{}, err
	}

	form := url.Values{
		"action":     {"uploadImage"},
		"fileName":   {f.Name},
		"mimeType":   {f.ContentType},
		"uploadDate": {p.now().UTC().Format(time.RFC3339)},
		"fileData":   {base64.StdEncoding.EncodeToString(f.Data)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return GalleryImage{}, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out appsScriptResponse
	if err := doJSON(p.client, req, &out); err != nil {
		return GalleryImage{}, err
	}
	if err := out.err("unknown error uploading the image"); err != nil {
		return GalleryImage{}, err
	}
	if out.Image == nil {
		return GalleryImage{}, fmt.Errorf("%w: upload response lacks image", ErrMalformedResponse)
	}

	images, err := normalize([]GalleryImage{*out.Image})
	if err != nil {
		return GalleryImage{}, err
	}
	return images[0], nil
}

func (p *AppsScriptProvider) endpoint(query url.Values) (string, error) {
	if err := checkRequired(ProviderAppsScript, map[string]string{"APPS_SCRIPT_URL": p.scriptURL}); err != nil {
		return "", err
	}
	u, err := url.Parse(p.scriptURL)
	if err != nil {
		return "", fmt.Errorf("parse APPS_SCRIPT_URL: %w", err)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			q[k] = v
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
