package storage

import (
	"context"
	"path"
	"strings"
)

// Extension sets matching what the site carousels render
var (
	imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".avif": true}
	videoExts = map[string]bool{".mp4": true, ".webm": true, ".mov": true, ".m4v": true}
)

// IsImage reports whether the file name has a renderable image extension
func IsImage(name string) bool {
	return imageExts[strings.ToLower(path.Ext(name))]
}

// IsVideo reports whether the file name has a renderable video extension
func IsVideo(name string) bool {
	return videoExts[strings.ToLower(path.Ext(name))]
}

// PosterCandidates returns the storage paths where a poster image for the
// given video file may live: same base name under postersPrefix, .jpg first
// then .png.
func PosterCandidates(videoName, postersPrefix string) []string {
	base := strings.TrimSuffix(videoName, path.Ext(videoName))
	folder := strings.Trim(postersPrefix, "/")
	return []string{
		folder + "/" + base + ".jpg",
		folder + "/" + base + ".png",
	}
}

// MediaItem is a gallery image with its resolved public URL
type MediaItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

// VideoItem is a showcase video with its resolved public URL and, when one
// exists, a verified poster URL
type VideoItem struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	URL    string `json:"url"`
	Poster string `json:"poster,omitempty"`
}

// ListImages lists gallery images under prefix with public URLs
func (b *Bucket) ListImages(ctx context.Context, prefix string, limit int) ([]MediaItem, error) {
	objects, err := b.List(ctx, prefix, limit)
	if err != nil {
		return nil, err
	}

	items := make([]MediaItem, 0, len(objects))
	for _, o := range objects {
		if !IsImage(o.Name) {
			continue
		}
		items = append(items, MediaItem{Name: o.Name, Path: o.Path, URL: b.PublicURL(o.Path)})
	}
	return items, nil
}

// ListVideos lists showcase videos under prefix. Each video is paired with a
// poster from postersPrefix when a same-named .jpg or .png exists there;
// candidates are verified with a HEAD request before being advertised.
func (b *Bucket) ListVideos(ctx context.Context, prefix, postersPrefix string, limit int) ([]VideoItem, error) {
	objects, err := b.List(ctx, prefix, limit)
	if err != nil {
		return nil, err
	}

	items := make([]VideoItem, 0, len(objects))
	for _, o := range objects {
		if !IsVideo(o.Name) {
			continue
		}
		item := VideoItem{Name: o.Name, Path: o.Path, URL: b.PublicURL(o.Path)}
		for _, candidate := range PosterCandidates(o.Name, postersPrefix) {
			url := b.PublicURL(candidate)
			if b.Exists(ctx, url) {
				item.Poster = url
				break
			}
		}
		items = append(items, item)
	}
	return items, nil
}
