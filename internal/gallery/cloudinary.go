package gallery

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

// CloudinaryOptions configures the Cloudinary provider. Only unsigned
// uploads happen here; listing goes through the gateway, which holds the
// Admin API credentials.
type CloudinaryOptions struct {
	APIBase      string
	CloudName    string
	UploadPreset string
	Folder       string
	GatewayURL   string
}

// CloudinaryProvider uploads straight to Cloudinary and lists through the gateway.
type CloudinaryProvider struct {
	client *http.Client
	opts   CloudinaryOptions
	now    func() time.Time
}

// NewCloudinaryProvider creates a CloudinaryProvider. Missing options are
// reported per call so the error reaches the guest.
func NewCloudinaryProvider(client *http.Client, opts CloudinaryOptions) *CloudinaryProvider {
	if opts.APIBase == "" {
		opts.APIBase = "https://api.cloudinary.com"
	}
	opts.APIBase = strings.TrimRight(opts.APIBase, "/")
	return &CloudinaryProvider{client: client, opts: opts, now: time.Now}
}

func (p *CloudinaryProvider) Name() string { return ProviderCloudinary }

type cloudinaryUpload struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	CreatedAt string `json:"created_at"`
}

// Upload posts the file as an unsigned multipart upload.
func (p *CloudinaryProvider) Upload(ctx context.Context, f File) (GalleryImage, error) {
	if err := checkRequired(ProviderCloudinary, map[string]string{
		"CLOUDINARY_CLOUD_NAME":    p.opts.CloudName,
		"CLOUDINARY_UPLOAD_PRESET": p.opts.UploadPreset,
	}); err != nil {
		return GalleryImage{}, err
	}

	body, contentType, err := p.uploadForm(f)
	if err != nil {
		return GalleryImage{}, err
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", p.opts.APIBase, p.opts.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return GalleryImage{}, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	var out cloudinaryUpload
	if err := doJSON(p.client, req, &out); err != nil {
		return GalleryImage{}, err
	}
	if out.PublicID == "" || out.SecureURL == "" {
		return GalleryImage{}, fmt.Errorf("%w: upload response lacks public_id or secure_url", ErrMalformedResponse)
	}

	uploaded := p.now().UTC()
	if t, err := time.Parse(time.RFC3339, out.CreatedAt); err == nil {
		uploaded = t
	}

	name := f.Name
	if name == "" {
		name = DisplayName(out.PublicID)
	}

	return GalleryImage{
		ID:         out.PublicID,
		URL:        out.SecureURL,
		Thumbnail:  Thumbnail(out.SecureURL),
		Name:       name,
		UploadDate: uploaded,
	}, nil
}

func (p *CloudinaryProvider) uploadForm(f File) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	filename := f.Name
	if filename == "" {
		filename = "upload"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", f.ContentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(f.Data); err != nil {
		return nil, "", fmt.Errorf("write file part: %w", err)
	}
	if err := w.WriteField("upload_preset", p.opts.UploadPreset); err != nil {
		return nil, "", fmt.Errorf("write upload_preset: %w", err)
	}
	if p.opts.Folder != "" {
		if err := w.WriteField("folder", p.opts.Folder); err != nil {
			return nil, "", fmt.Errorf("write folder: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// ListImages reads the gateway listing.
func (p *CloudinaryProvider) ListImages(ctx context.Context) ([]GalleryImage, error) {
	if err := checkRequired(ProviderCloudinary, map[string]string{
		"GALLERY_GATEWAY_URL": p.opts.GatewayURL,
	}); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.opts.GatewayURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build listing request: %w", err)
	}

	var listing Listing
	if err := doJSON(p.client, req, &listing); err != nil {
		return nil, err
	}
	if !listing.Success {
		msg := listing.Error
		if msg == "" {
			msg = "gateway reported failure"
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, msg)
	}

	return normalize(listing.Images)
}

// normalize fills derivable fields and rejects entries without an identity.
func normalize(images []GalleryImage) ([]GalleryImage, error) {
	out := make([]GalleryImage, 0, len(images))
	for _, img := range images {
		if img.ID == "" || img.URL == "" {
			return nil, fmt.Errorf("%w: listing entry lacks id or url", ErrMalformedResponse)
		}
		if img.Name == "" {
			img.Name = DisplayName(img.ID)
		}
		if img.Thumbnail == "" {
			img.Thumbnail = Thumbnail(img.URL)
		}
		out = append(out, img)
	}
	return out, nil
}
