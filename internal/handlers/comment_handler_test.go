package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bymariana/site-backend/internal/models"
)

func TestCreateComment(t *testing.T) {
	postRepo := newFakePostRepo("p1")
	commentRepo := &fakeCommentRepo{}
	h := NewCommentHandler(commentRepo, postRepo)

	c, rec := newTestContext(http.MethodPost, `{"body":"Excellent service, highly recommend"}`, testAnonID)
	c.SetParamNames("post_id")
	c.SetParamValues("p1")

	if err := invoke(c, h.CreateComment); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if commentRepo.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", commentRepo.createCalls)
	}
	if post, _ := postRepo.GetPostByID(c.Request().Context(), "p1"); post.CommentCount != 1 {
		t.Errorf("comment count = %d, want 1", post.CommentCount)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["body"] != "Excellent service, highly recommend" {
		t.Errorf("response body = %v", resp["body"])
	}
	if _, exposed := resp["anon_id"]; exposed {
		t.Error("anon id must not appear in the response")
	}
}

func TestCreateCommentBlockedLanguage(t *testing.T) {
	postRepo := newFakePostRepo("p1")
	commentRepo := &fakeCommentRepo{}
	h := NewCommentHandler(commentRepo, postRepo)

	c, _ := newTestContext(http.MethodPost, `{"body":"groseria1 great service"}`, testAnonID)
	c.SetParamNames("post_id")
	c.SetParamValues("p1")

	err := invoke(c, h.CreateComment)
	assertHTTPError(t, err, http.StatusUnprocessableEntity)
	if commentRepo.createCalls != 0 {
		t.Error("rejected comment must not be written")
	}
	if post, _ := postRepo.GetPostByID(c.Request().Context(), "p1"); post.CommentCount != 0 {
		t.Error("rejected comment must not move the counter")
	}
}

func TestCreateCommentBlankBody(t *testing.T) {
	h := NewCommentHandler(&fakeCommentRepo{}, newFakePostRepo("p1"))

	c, _ := newTestContext(http.MethodPost, `{"body":"   "}`, testAnonID)
	c.SetParamNames("post_id")
	c.SetParamValues("p1")

	assertHTTPError(t, invoke(c, h.CreateComment), http.StatusBadRequest)
}

func TestCreateCommentRequiresAnonID(t *testing.T) {
	commentRepo := &fakeCommentRepo{}
	h := NewCommentHandler(commentRepo, newFakePostRepo("p1"))

	c, _ := newTestContext(http.MethodPost, `{"body":"nice work"}`, "")
	c.SetParamNames("post_id")
	c.SetParamValues("p1")

	assertHTTPError(t, invoke(c, h.CreateComment), http.StatusBadRequest)
	if commentRepo.createCalls != 0 {
		t.Error("unattributed comment must not be written")
	}
}

func TestCreateCommentPostNotFound(t *testing.T) {
	h := NewCommentHandler(&fakeCommentRepo{}, newFakePostRepo())

	c, _ := newTestContext(http.MethodPost, `{"body":"nice work"}`, testAnonID)
	c.SetParamNames("post_id")
	c.SetParamValues("missing")

	assertHTTPError(t, invoke(c, h.CreateComment), http.StatusNotFound)
}

func TestGetCommentsByPostID(t *testing.T) {
	commentRepo := &fakeCommentRepo{}
	commentRepo.CreateComment(&models.Comment{PostID: "p1", AnonID: testAnonID, Body: "first"})
	commentRepo.CreateComment(&models.Comment{PostID: "p1", AnonID: testAnonID, Body: "second"})
	commentRepo.CreateComment(&models.Comment{PostID: "p2", AnonID: testAnonID, Body: "other post"})
	h := NewCommentHandler(commentRepo, newFakePostRepo("p1"))

	c, rec := newTestContext(http.MethodGet, "", "")
	c.SetParamNames("post_id")
	c.SetParamValues("p1")

	if err := invoke(c, h.GetCommentsByPostID); err != nil {
		t.Fatalf("GetCommentsByPostID: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		PostID   string `json:"post_id"`
		Comments []struct {
			Body string `json:"body"`
		} `json:"comments"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(resp.Comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(resp.Comments))
	}
	if resp.Comments[0].Body != "first" || resp.Comments[1].Body != "second" {
		t.Errorf("comments out of order: %+v", resp.Comments)
	}
}
