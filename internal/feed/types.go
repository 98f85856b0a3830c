package feed

import (
	"context"
	"time"
)

// Limits shared by the controller and the HTTP surface
const (
	PostListLimit    = 50
	CommentListLimit = 50
	MaxCommentLen    = 240
)

// SubjectKind distinguishes likeable things
type SubjectKind string

// Likeable subject kinds: testimonial posts, and raw carousel media that has
// no backing post row.
const (
	SubjectPost  SubjectKind = "post"
	SubjectPhoto SubjectKind = "photo"
	SubjectVideo SubjectKind = "video"
)

// Subject identifies a likeable thing: a post by id, or carousel media by
// storage path. Comparable, so it can key the in-flight set directly.
type Subject struct {
	Kind SubjectKind
	Key  string // post id or storage path
}

// PostSubject addresses a testimonial post
func PostSubject(postID string) Subject { return Subject{Kind: SubjectPost, Key: postID} }

// PhotoSubject addresses a gallery photo by storage path
func PhotoSubject(path string) Subject { return Subject{Kind: SubjectPhoto, Key: path} }

// VideoSubject addresses a showcase video by storage path
func VideoSubject(path string) Subject { return Subject{Kind: SubjectVideo, Key: path} }

// Post is a testimonial as the feed consumes it
type Post struct {
	ID           string
	Kind         string
	StoragePath  string
	Caption      string
	LikeCount    int
	CommentCount int
	CreatedAt    time.Time
}

// Comment is a testimonial comment, ordered oldest first for display
type Comment struct {
	ID        uint
	PostID    string
	Body      string
	CreatedAt time.Time
}

// PostView is a Post enriched with display state: resolved media URL and the
// viewer's like status. LikeCount here is the displayed value, which may run
// ahead of the committed value while a toggle is in flight.
type PostView struct {
	Post
	MediaURL string
	Liked    bool
}

// LikeState is the displayed like state for a tracked media subject
type LikeState struct {
	Liked bool
	Count int
}

// ContentStore is the adapter over the remote backend. The remote side is
// the sole source of truth and the sole writer of derived counters.
type ContentStore interface {
	// ListApprovedPosts returns approved posts, newest first
	ListApprovedPosts(ctx context.Context, limit int) ([]Post, error)
	// GetPost re-fetches a single post record, counters included
	GetPost(ctx context.Context, postID string) (Post, error)
	// ResolveMediaURL maps a storage path to a public URL; deterministic
	ResolveMediaURL(path string) string

	// HasLike reports whether anonID already liked the subject
	HasLike(ctx context.Context, s Subject, anonID string) (bool, error)
	// CountLikes returns the committed like count for the subject
	CountLikes(ctx context.Context, s Subject) (int, error)
	// AddLike inserts a like; a duplicate surfaces as ErrConflict
	AddLike(ctx context.Context, s Subject, anonID string) error
	// RemoveLike deletes a like; removing an absent like is a silent no-op
	RemoveLike(ctx context.Context, s Subject, anonID string) error

	// ListComments returns comments for a post, oldest first
	ListComments(ctx context.Context, postID string, limit int) ([]Comment, error)
	// AddComment inserts a comment; empty or over-long bodies surface as
	// ErrValidation
	AddComment(ctx context.Context, postID, anonID, body string) (Comment, error)

	// AddReport records a content report; write-only
	AddReport(ctx context.Context, postID, anonID, reason string) error
}
