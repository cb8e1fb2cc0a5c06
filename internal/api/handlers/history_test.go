package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type recordingStore struct {
	stubStore
	lastLimit int
	records   []map[string]interface{}
	err       error
}

func (r *recordingStore) GetDetections(ctx context.Context, limit int) ([]map[string]interface{}, error) {
	r.lastLimit = limit
	return r.records, r.err
}

func (r *recordingStore) GetPlateHistory(ctx context.Context, limit int) ([]map[string]interface{}, error) {
	r.lastLimit = limit
	return r.records, r.err
}

func historyRouter(st *recordingStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHistoryHandler(st, 50)

	router := gin.New()
	router.GET("/api/firebase/detections", h.GetDetections)
	router.GET("/api/firebase/plates", h.GetPlateHistory)
	return router
}

func TestGetDetectionsUsesDefaultLimit(t *testing.T) {
	st := &recordingStore{records: []map[string]interface{}{{"id": "abc", "unique_tracks": 2}}}
	router := historyRouter(st)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/firebase/detections", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if st.lastLimit != 50 {
		t.Errorf("limit = %d, want default 50", st.lastLimit)
	}

	var resp struct {
		Success    bool                     `json:"success"`
		Detections []map[string]interface{} `json:"detections"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success || len(resp.Detections) != 1 {
		t.Errorf("unexpected response %s", w.Body.String())
	}
}

func TestHistoryLimitQueryOverride(t *testing.T) {
	st := &recordingStore{}
	router := historyRouter(st)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/firebase/plates?limit=7", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if st.lastLimit != 7 {
		t.Errorf("limit = %d, want 7", st.lastLimit)
	}
}

func TestHistoryInvalidLimitFallsBackToDefault(t *testing.T) {
	st := &recordingStore{}
	router := historyRouter(st)

	for _, q := range []string{"limit=abc", "limit=-3", "limit=0"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/firebase/plates?"+q, nil))

		if st.lastLimit != 50 {
			t.Errorf("query %q: limit = %d, want default 50", q, st.lastLimit)
		}
	}
}

func TestHistoryStoreFailureReturns500(t *testing.T) {
	st := &recordingStore{err: errors.New("firestore unavailable")}
	router := historyRouter(st)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/firebase/detections", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Detail == "" {
		t.Error("expected error detail in response")
	}
}
