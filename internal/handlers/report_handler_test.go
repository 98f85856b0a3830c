package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestCreateReport(t *testing.T) {
	reportRepo := &fakeReportRepo{}
	h := NewReportHandler(reportRepo, newFakePostRepo("p1"))

	c, rec := newTestContext(http.MethodPost, `{"reason":"inappropriate content"}`, testAnonID)
	c.SetParamNames("post_id")
	c.SetParamValues("p1")

	if err := invoke(c, h.CreateReport); err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if len(reportRepo.reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reportRepo.reports))
	}
	if reportRepo.reports[0].Reason != "inappropriate content" {
		t.Errorf("reason = %q", reportRepo.reports[0].Reason)
	}
	if reportRepo.reports[0].AnonID != testAnonID {
		t.Errorf("anon id = %q, want attribution", reportRepo.reports[0].AnonID)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["message"] == "" {
		t.Error("expected a confirmation message")
	}
}

func TestCreateReportBlankReason(t *testing.T) {
	reportRepo := &fakeReportRepo{}
	h := NewReportHandler(reportRepo, newFakePostRepo("p1"))

	for _, body := range []string{`{"reason":""}`, `{"reason":"   "}`, `{}`} {
		c, _ := newTestContext(http.MethodPost, body, testAnonID)
		c.SetParamNames("post_id")
		c.SetParamValues("p1")

		assertHTTPError(t, invoke(c, h.CreateReport), http.StatusBadRequest)
	}
	if len(reportRepo.reports) != 0 {
		t.Error("blank reasons must not produce writes")
	}
}

func TestCreateReportPostNotFound(t *testing.T) {
	h := NewReportHandler(&fakeReportRepo{}, newFakePostRepo())

	c, _ := newTestContext(http.MethodPost, `{"reason":"spam"}`, testAnonID)
	c.SetParamNames("post_id")
	c.SetParamValues("missing")

	assertHTTPError(t, invoke(c, h.CreateReport), http.StatusNotFound)
}
