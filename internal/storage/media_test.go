package storage

import (
	"reflect"
	"testing"
)

func TestIsImage(t *testing.T) {
	for name, want := range map[string]bool{
		"before.jpg":   true,
		"after.JPEG":   true,
		"kitchen.png":  true,
		"hall.webp":    true,
		"sofa.avif":    true,
		"clip.mp4":     false,
		"notes.txt":    false,
		"no-extension": false,
	} {
		if got := IsImage(name); got != want {
			t.Errorf("IsImage(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestIsVideo(t *testing.T) {
	for name, want := range map[string]bool{
		"tour.mp4":   true,
		"tour.WEBM":  true,
		"walk.mov":   true,
		"walk.m4v":   true,
		"before.jpg": false,
	} {
		if got := IsVideo(name); got != want {
			t.Errorf("IsVideo(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestPosterCandidates(t *testing.T) {
	got := PosterCandidates("deep-clean.mp4", "videos-posters")
	want := []string{"videos-posters/deep-clean.jpg", "videos-posters/deep-clean.png"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PosterCandidates = %v, want %v", got, want)
	}

	got = PosterCandidates("tour.webm", "/videos-posters/")
	want = []string{"videos-posters/tour.jpg", "videos-posters/tour.png"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PosterCandidates with slashes = %v, want %v", got, want)
	}
}

func TestPublicURL(t *testing.T) {
	b := NewBucket(nil, "bymariana", "")
	if got, want := b.PublicURL("gallery/before.jpg"), "https://storage.googleapis.com/bymariana/gallery/before.jpg"; got != want {
		t.Errorf("PublicURL = %q, want %q", got, want)
	}
	// Leading slashes in paths and trailing slashes in the base collapse
	b = NewBucket(nil, "bymariana", "https://cdn.example.com/")
	if got, want := b.PublicURL("/videos/tour.mp4"), "https://cdn.example.com/bymariana/videos/tour.mp4"; got != want {
		t.Errorf("PublicURL custom base = %q, want %q", got, want)
	}
}

func TestNormalizePrefix(t *testing.T) {
	for in, want := range map[string]string{
		"":          "",
		"gallery":   "gallery/",
		"/gallery":  "gallery/",
		"gallery/":  "gallery/",
		"/a/b/":     "a/b/",
	} {
		if got := normalizePrefix(in); got != want {
			t.Errorf("normalizePrefix(%q) = %q, want %q", in, got, want)
		}
	}
}
