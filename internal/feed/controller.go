package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bymariana/site-backend/internal/identity"
	"github.com/bymariana/site-backend/internal/moderation"
)

// Controller orchestrates the testimonial feed for one viewer: fetching
// approved posts, toggling likes optimistically, submitting moderated
// comments, and filing reports.
//
// All displayed state lives behind one mutex; checking and inserting the
// per-subject busy key is a single atomic step, so overlapping toggles on
// the same subject are dropped rather than queued and optimistic
// adjustments cannot compound. A closed controller ignores late results
// instead of applying them.
type Controller struct {
	store ContentStore
	id    identity.Identity

	mu       sync.Mutex
	posts    []PostView
	comments map[string][]Comment
	media    map[Subject]LikeState
	inflight map[Subject]struct{}
	closed   bool
}

// NewController creates a Controller for one viewer identity. The identity
// is injected once here rather than read from ambient storage by each
// operation.
func NewController(store ContentStore, id identity.Identity) *Controller {
	return &Controller{
		store:    store,
		id:       id,
		comments: make(map[string][]Comment),
		media:    make(map[Subject]LikeState),
		inflight: make(map[Subject]struct{}),
	}
}

// Refresh loads approved posts with resolved media URLs and the viewer's
// like status. Any listing error leaves an empty feed; the error is returned
// only so the caller can show an inline message.
func (c *Controller) Refresh(ctx context.Context) error {
	posts, err := c.store.ListApprovedPosts(ctx, PostListLimit)
	if err != nil {
		c.mu.Lock()
		if !c.closed {
			c.posts = nil
		}
		c.mu.Unlock()
		return err
	}

	views := make([]PostView, len(posts))
	for i, p := range posts {
		liked, _ := c.store.HasLike(ctx, PostSubject(p.ID), c.id.Token)
		views[i] = PostView{
			Post:     p,
			MediaURL: c.store.ResolveMediaURL(p.StoragePath),
			Liked:    liked,
		}
	}

	c.mu.Lock()
	if !c.closed {
		c.posts = views
	}
	c.mu.Unlock()
	return nil
}

// Posts returns a snapshot of the displayed feed
func (c *Controller) Posts() []PostView {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]PostView, len(c.posts))
	copy(out, c.posts)
	return out
}

// Comments returns the displayed comments for a post, oldest first
func (c *Controller) Comments(postID string) []Comment {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Comment, len(c.comments[postID]))
	copy(out, c.comments[postID])
	return out
}

// LoadComments fetches the comment list for a post into displayed state
func (c *Controller) LoadComments(ctx context.Context, postID string) error {
	comments, err := c.store.ListComments(ctx, postID, CommentListLimit)
	if err != nil {
		return err
	}
	c.mu.Lock()
	if !c.closed {
		c.comments[postID] = comments
	}
	c.mu.Unlock()
	return nil
}

// TrackMedia loads the committed like state for a carousel media subject so
// it can be toggled
func (c *Controller) TrackMedia(ctx context.Context, s Subject) error {
	count, err := c.store.CountLikes(ctx, s)
	if err != nil {
		return err
	}
	liked, err := c.store.HasLike(ctx, s, c.id.Token)
	if err != nil {
		return err
	}
	c.mu.Lock()
	if !c.closed {
		c.media[s] = LikeState{Liked: liked, Count: count}
	}
	c.mu.Unlock()
	return nil
}

// MediaLikeState returns the displayed like state for a tracked subject
func (c *Controller) MediaLikeState(s Subject) (LikeState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	state, ok := c.media[s]
	return state, ok
}

// ToggleLike flips the viewer's like on a subject. The displayed state and
// counter change immediately; the single write follows. On failure both are
// restored to the exact pre-flip snapshot. A toggle arriving while one is
// already in flight for the same subject is dropped.
func (c *Controller) ToggleLike(ctx context.Context, s Subject) error {
	if !c.id.Persisted {
		// An ephemeral token could never be matched to remove the like later
		return fmt.Errorf("%w: identity not persisted", ErrValidation)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	if _, busy := c.inflight[s]; busy {
		c.mu.Unlock()
		return nil
	}
	wasLiked, prevCount, ok := c.likeStateLocked(s)
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: unknown subject %s:%s", ErrValidation, s.Kind, s.Key)
	}
	c.inflight[s] = struct{}{}

	speculative := prevCount + 1
	if wasLiked {
		speculative = prevCount - 1
		if speculative < 0 {
			speculative = 0
		}
	}
	c.setLikeStateLocked(s, !wasLiked, speculative)
	c.mu.Unlock()

	// Single attempt, no retry; the user can simply click again
	var err error
	if wasLiked {
		err = c.store.RemoveLike(ctx, s, c.id.Token)
	} else {
		err = c.store.AddLike(ctx, s, c.id.Token)
		if errors.Is(err, ErrConflict) {
			err = nil // already liked: desired state achieved
		}
	}

	c.mu.Lock()
	delete(c.inflight, s)
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.setLikeStateLocked(s, wasLiked, prevCount)
	}
	c.mu.Unlock()
	return err
}

// SubmitComment validates and moderates body locally, writes it, then
// re-fetches the comment list and the post record. The comment counter is
// taken from the re-fetched post, never incremented locally, because the
// server derives it.
func (c *Controller) SubmitComment(ctx context.Context, postID, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return fmt.Errorf("%w: empty comment", ErrValidation)
	}
	if len(body) > MaxCommentLen {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrValidation, MaxCommentLen)
	}
	if !moderation.IsAcceptable(body) {
		return fmt.Errorf("%w: comment contains blocked language", ErrValidation)
	}

	if _, err := c.store.AddComment(ctx, postID, c.id.Token, body); err != nil {
		return err
	}

	// Best-effort refresh of displayed state; the write is already committed
	if comments, err := c.store.ListComments(ctx, postID, CommentListLimit); err == nil {
		c.mu.Lock()
		if !c.closed {
			c.comments[postID] = comments
		}
		c.mu.Unlock()
	}
	if post, err := c.store.GetPost(ctx, postID); err == nil {
		c.mu.Lock()
		if !c.closed {
			for i := range c.posts {
				if c.posts[i].ID == postID {
					c.posts[i].LikeCount = post.LikeCount
					c.posts[i].CommentCount = post.CommentCount
					break
				}
			}
		}
		c.mu.Unlock()
	}
	return nil
}

// SubmitReport files a content report. An empty reason aborts with no write.
func (c *Controller) SubmitReport(ctx context.Context, postID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: empty report reason", ErrValidation)
	}
	return c.store.AddReport(ctx, postID, c.id.Token, reason)
}

// Close marks the controller as no longer displayed. In-flight results that
// arrive afterwards are dropped instead of being applied to state.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *Controller) likeStateLocked(s Subject) (liked bool, count int, ok bool) {
	if s.Kind == SubjectPost {
		for i := range c.posts {
			if c.posts[i].ID == s.Key {
				return c.posts[i].Liked, c.posts[i].LikeCount, true
			}
		}
		return false, 0, false
	}
	state, ok := c.media[s]
	return state.Liked, state.Count, ok
}

func (c *Controller) setLikeStateLocked(s Subject, liked bool, count int) {
	if s.Kind == SubjectPost {
		for i := range c.posts {
			if c.posts[i].ID == s.Key {
				c.posts[i].Liked = liked
				c.posts[i].LikeCount = count
				return
			}
		}
		return
	}
	c.media[s] = LikeState{Liked: liked, Count: count}
}
