package handlers

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bymariana/site-backend/internal/middleware"
	"github.com/bymariana/site-backend/internal/models"
	"github.com/bymariana/site-backend/internal/repositories"
	"github.com/bymariana/site-backend/validators"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testAnonID is a valid UUID for the X-Anon-ID header
const testAnonID = "11111111-1111-1111-1111-111111111111"

// fakePostRepo is an in-memory PostRepository
type fakePostRepo struct {
	posts map[string]*models.Post
}

func newFakePostRepo(ids ...string) *fakePostRepo {
	r := &fakePostRepo{posts: make(map[string]*models.Post)}
	for _, id := range ids {
		r.posts[id] = &models.Post{
			Kind:        models.PostKindImage,
			StoragePath: "ugc/2025-06/" + id + "/photo.jpg",
			Status:      models.PostStatusApproved,
		}
	}
	return r
}

func (r *fakePostRepo) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	r.posts[post.ID.Hex()] = post
	return nil
}

func (r *fakePostRepo) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post not found")
	}
	copied := *post
	return &copied, nil
}

func (r *fakePostRepo) GetApprovedPosts(ctx context.Context, limit int64) ([]models.Post, error) {
	var out []models.Post
	for _, p := range r.posts {
		if p.Status == models.PostStatusApproved {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) SetPostStatus(ctx context.Context, id, status string) error {
	post, ok := r.posts[id]
	if !ok {
		return fmt.Errorf("post not found")
	}
	post.Status = status
	return nil
}

func (r *fakePostRepo) DeletePost(ctx context.Context, id string) error {
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) IncrementLikeCount(ctx context.Context, postID string) error {
	return r.adjust(postID, func(p *models.Post) { p.LikeCount++ })
}

func (r *fakePostRepo) DecrementLikeCount(ctx context.Context, postID string) error {
	return r.adjust(postID, func(p *models.Post) { p.LikeCount-- })
}

func (r *fakePostRepo) IncrementCommentCount(ctx context.Context, postID string) error {
	return r.adjust(postID, func(p *models.Post) { p.CommentCount++ })
}

func (r *fakePostRepo) DecrementCommentCount(ctx context.Context, postID string) error {
	return r.adjust(postID, func(p *models.Post) { p.CommentCount-- })
}

func (r *fakePostRepo) adjust(postID string, fn func(*models.Post)) error {
	post, ok := r.posts[postID]
	if !ok {
		return fmt.Errorf("post not found")
	}
	fn(post)
	return nil
}

// fakeLikeRepo is an in-memory LikeRepository keyed by (postID, anonID)
type fakeLikeRepo struct {
	likes       map[string]bool
	createCalls int
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[string]bool)}
}

func likeKey(postID, anonID string) string { return postID + "|" + anonID }

func (r *fakeLikeRepo) CreateLike(like *models.Like) error {
	r.createCalls++
	key := likeKey(like.PostID, like.AnonID)
	if r.likes[key] {
		return repositories.ErrDuplicateLike
	}
	r.likes[key] = true
	return nil
}

func (r *fakeLikeRepo) DeleteLike(postID, anonID string) (bool, error) {
	key := likeKey(postID, anonID)
	deleted := r.likes[key]
	delete(r.likes, key)
	return deleted, nil
}

func (r *fakeLikeRepo) HasLiked(postID, anonID string) (bool, error) {
	return r.likes[likeKey(postID, anonID)], nil
}

func (r *fakeLikeRepo) CountLikes(postID string) (int64, error) {
	var count int64
	for key := range r.likes {
		if strings.HasPrefix(key, postID+"|") {
			count++
		}
	}
	return count, nil
}

// fakeCommentRepo is an in-memory CommentRepository
type fakeCommentRepo struct {
	comments    []models.Comment
	createCalls int
}

func (r *fakeCommentRepo) CreateComment(comment *models.Comment) error {
	r.createCalls++
	comment.ID = uint(len(r.comments) + 1)
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeCommentRepo) GetCommentsByPostID(postID string, limit int) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range r.comments {
		if c.PostID == postID && len(out) < limit {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeReportRepo is an in-memory ReportRepository
type fakeReportRepo struct {
	reports []models.Report
}

func (r *fakeReportRepo) CreateReport(report *models.Report) error {
	r.reports = append(r.reports, *report)
	return nil
}

// newTestContext builds an Echo context with the project validator. An empty
// anonID leaves the X-Anon-ID header off.
func newTestContext(method, body, anonID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validators.NewValidator()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if anonID != "" {
		req.Header.Set(middleware.AnonIDHeader, anonID)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// invoke runs a handler behind the identity middleware, the way the router
// mounts it
func invoke(c echo.Context, h echo.HandlerFunc) error {
	return middleware.AnonIdentity()(h)(c)
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != code {
		t.Fatalf("status = %d, want %d (message: %v)", httpErr.Code, code, httpErr.Message)
	}
}
