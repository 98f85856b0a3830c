// Package store implements feed.ContentStore over the managed backend: post
// records and their derived counters in MongoDB, like/comment/report tables
// in PostgreSQL, and binary media in the storage bucket.
package store

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/bymariana/site-backend/internal/feed"
	"github.com/bymariana/site-backend/internal/models"
	"github.com/bymariana/site-backend/internal/repositories"
	"github.com/bymariana/site-backend/internal/storage"
)

// Client composes the repositories and the bucket into the single adapter
// the feed controller talks to
type Client struct {
	posts      repositories.PostRepository
	likes      repositories.LikeRepository
	photoLikes repositories.MediaLikeRepository
	videoLikes repositories.MediaLikeRepository
	comments   repositories.CommentRepository
	reports    repositories.ReportRepository
	bucket     *storage.Bucket
}

// NewClient creates a content store client
func NewClient(
	posts repositories.PostRepository,
	likes repositories.LikeRepository,
	photoLikes repositories.MediaLikeRepository,
	videoLikes repositories.MediaLikeRepository,
	comments repositories.CommentRepository,
	reports repositories.ReportRepository,
	bucket *storage.Bucket,
) *Client {
	return &Client{
		posts:      posts,
		likes:      likes,
		photoLikes: photoLikes,
		videoLikes: videoLikes,
		comments:   comments,
		reports:    reports,
		bucket:     bucket,
	}
}

// ListApprovedPosts returns approved posts, newest first
func (c *Client) ListApprovedPosts(ctx context.Context, limit int) ([]feed.Post, error) {
	posts, err := c.posts.GetApprovedPosts(ctx, int64(limit))
	if err != nil {
		return nil, classify("list posts", err)
	}
	out := make([]feed.Post, len(posts))
	for i, p := range posts {
		out[i] = toFeedPost(p)
	}
	return out, nil
}

// GetPost re-fetches one post record, counters included
func (c *Client) GetPost(ctx context.Context, postID string) (feed.Post, error) {
	p, err := c.posts.GetPostByID(ctx, postID)
	if err != nil {
		return feed.Post{}, classify("get post", err)
	}
	return toFeedPost(*p), nil
}

// ResolveMediaURL maps a storage path to its public URL
func (c *Client) ResolveMediaURL(path string) string {
	return c.bucket.PublicURL(path)
}

// HasLike reports whether anonID already liked the subject
func (c *Client) HasLike(ctx context.Context, s feed.Subject, anonID string) (bool, error) {
	var (
		liked bool
		err   error
	)
	if s.Kind == feed.SubjectPost {
		liked, err = c.likes.HasLiked(s.Key, anonID)
	} else {
		liked, err = c.mediaLikes(s).HasLiked(s.Key, anonID)
	}
	if err != nil {
		return false, classify("check like", err)
	}
	return liked, nil
}

// CountLikes returns the committed like count for the subject
func (c *Client) CountLikes(ctx context.Context, s feed.Subject) (int, error) {
	var (
		count int64
		err   error
	)
	if s.Kind == feed.SubjectPost {
		count, err = c.likes.CountLikes(s.Key)
	} else {
		count, err = c.mediaLikes(s).CountLikes(s.Key)
	}
	if err != nil {
		return 0, classify("count likes", err)
	}
	return int(count), nil
}

// AddLike inserts a like row and bumps the server-derived counter for post
// subjects. A duplicate insert surfaces as feed.ErrConflict with the counter
// untouched.
func (c *Client) AddLike(ctx context.Context, s feed.Subject, anonID string) error {
	if s.Kind != feed.SubjectPost {
		return classify("add like", c.mediaLikes(s).CreateLike(s.Key, anonID))
	}

	if err := c.likes.CreateLike(&models.Like{PostID: s.Key, AnonID: anonID}); err != nil {
		return classify("add like", err)
	}
	if err := c.posts.IncrementLikeCount(ctx, s.Key); err != nil {
		return classify("add like", err)
	}
	return nil
}

// RemoveLike deletes a like row; removing an absent like is a no-op. The
// counter only moves when a row was actually deleted.
func (c *Client) RemoveLike(ctx context.Context, s feed.Subject, anonID string) error {
	if s.Kind != feed.SubjectPost {
		_, err := c.mediaLikes(s).DeleteLike(s.Key, anonID)
		return classify("remove like", err)
	}

	deleted, err := c.likes.DeleteLike(s.Key, anonID)
	if err != nil {
		return classify("remove like", err)
	}
	if !deleted {
		return nil
	}
	if err := c.posts.DecrementLikeCount(ctx, s.Key); err != nil {
		return classify("remove like", err)
	}
	return nil
}

// ListComments returns comments for a post, oldest first
func (c *Client) ListComments(ctx context.Context, postID string, limit int) ([]feed.Comment, error) {
	comments, err := c.comments.GetCommentsByPostID(postID, limit)
	if err != nil {
		return nil, classify("list comments", err)
	}
	out := make([]feed.Comment, len(comments))
	for i, cm := range comments {
		out[i] = feed.Comment{ID: cm.ID, PostID: cm.PostID, Body: cm.Body, CreatedAt: cm.CreatedAt}
	}
	return out, nil
}

// AddComment inserts a comment and bumps the server-derived counter
func (c *Client) AddComment(ctx context.Context, postID, anonID, body string) (feed.Comment, error) {
	if body == "" {
		return feed.Comment{}, fmt.Errorf("%w: empty comment", feed.ErrValidation)
	}
	if len(body) > feed.MaxCommentLen {
		return feed.Comment{}, fmt.Errorf("%w: comment exceeds %d characters", feed.ErrValidation, feed.MaxCommentLen)
	}

	comment := models.Comment{PostID: postID, AnonID: anonID, Body: body}
	if err := c.comments.CreateComment(&comment); err != nil {
		return feed.Comment{}, classify("add comment", err)
	}
	if err := c.posts.IncrementCommentCount(ctx, postID); err != nil {
		return feed.Comment{}, classify("add comment", err)
	}
	return feed.Comment{ID: comment.ID, PostID: comment.PostID, Body: comment.Body, CreatedAt: comment.CreatedAt}, nil
}

// AddReport records a content report
func (c *Client) AddReport(ctx context.Context, postID, anonID, reason string) error {
	report := models.Report{PostID: postID, AnonID: anonID, Reason: reason}
	return classify("add report", c.reports.CreateReport(&report))
}

func (c *Client) mediaLikes(s feed.Subject) repositories.MediaLikeRepository {
	if s.Kind == feed.SubjectVideo {
		return c.videoLikes
	}
	return c.photoLikes
}

func toFeedPost(p models.Post) feed.Post {
	return feed.Post{
		ID:           p.ID.Hex(),
		Kind:         p.Kind,
		StoragePath:  p.StoragePath,
		Caption:      p.Caption,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
	}
}

// classify maps backend errors onto the feed error taxonomy
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrDuplicateLike) {
		return feed.ErrConflict
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &feed.NetworkError{Op: op, Err: err}
	}
	return &feed.RemoteError{Op: op, Err: err}
}
