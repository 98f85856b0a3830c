package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// DefaultPublicBaseURL is the host serving public objects
const DefaultPublicBaseURL = "https://storage.googleapis.com"

// Object is a file entry in the media bucket
type Object struct {
	Name string `json:"name"` // base name within the prefix
	Path string `json:"path"` // full path within the bucket
}

// Bucket is a thin adapter over the Cloud Storage media bucket. Public URLs
// resolve deterministically with no network round-trip; signed URLs are
// time-limited and must be re-resolved when they expire rather than cached.
type Bucket struct {
	name    string
	handle  *gcs.BucketHandle
	baseURL string
	httpc   *http.Client
}

// NewBucket creates a Bucket adapter. baseURL may be empty to use the
// default public host.
func NewBucket(handle *gcs.BucketHandle, name, baseURL string) *Bucket {
	if baseURL == "" {
		baseURL = DefaultPublicBaseURL
	}
	return &Bucket{
		name:    name,
		handle:  handle,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// List returns up to limit objects under prefix, name ascending. Folder
// placeholder entries are skipped.
func (b *Bucket) List(ctx context.Context, prefix string, limit int) ([]Object, error) {
	prefix = normalizePrefix(prefix)
	query := &gcs.Query{Prefix: prefix}

	var objects []Object
	it := b.handle.Objects(ctx, query)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing %s/%s: %w", b.name, prefix, err)
		}
		if strings.HasSuffix(attrs.Name, "/") {
			continue
		}
		name := strings.TrimPrefix(attrs.Name, prefix)
		if name == "" {
			continue
		}
		objects = append(objects, Object{Name: name, Path: attrs.Name})
		if limit > 0 && len(objects) >= limit {
			break
		}
	}
	return objects, nil
}

// PublicURL maps a storage path to its public URL. Deterministic; no network.
func (b *Bucket) PublicURL(path string) string {
	return fmt.Sprintf("%s/%s/%s", b.baseURL, b.name, strings.TrimLeft(path, "/"))
}

// SignedURL returns a time-limited authenticated URL for a private object
func (b *Bucket) SignedURL(path string, ttl time.Duration) (string, error) {
	url, err := b.handle.SignedURL(strings.TrimLeft(path, "/"), &gcs.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("signing %s: %w", path, err)
	}
	return url, nil
}

// Exists probes a URL with a HEAD request. Used to verify poster images
// before advertising them.
func (b *Bucket) Exists(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := b.httpc.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Upload writes an object to the bucket. Fails if the object already exists.
func (b *Bucket) Upload(ctx context.Context, path, contentType string, r io.Reader) error {
	obj := b.handle.Object(strings.TrimLeft(path, "/")).If(gcs.Conditions{DoesNotExist: true})
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=3600"
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("uploading %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("uploading %s: %w", path, err)
	}
	return nil
}

// normalizePrefix trims slashes and ensures a single trailing slash so that
// "gallery", "/gallery" and "gallery/" list the same folder
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}
