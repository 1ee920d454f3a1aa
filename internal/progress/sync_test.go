package progress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchRemote_ReplacesLocalRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/profile" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want Bearer tok", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"profile": Profile{ID: "u1", Email: "a@b.c", Name: "A"},
			"progress": Record{
				CompletedLessons: []string{"0-0", "1-0"},
				QuizScores:       map[string]int{"0-0": 80, "1-0": 90},
				CurrentModule:    1,
				TotalScore:       85,
			},
		})
	}))
	defer srv.Close()

	sess := NewSession("u1", "tok")
	sess.Store.RecordCompletion("5-0", 10) // local state about to be superseded

	c := NewClient(srv.URL)
	profile, err := c.FetchRemote(context.Background(), sess)
	if err != nil {
		t.Fatalf("FetchRemote() error = %v", err)
	}
	if profile.ID != "u1" {
		t.Errorf("profile id = %q, want u1", profile.ID)
	}

	rec := sess.Store.Snapshot()
	if rec.Has("5-0") {
		t.Error("fetch must replace the local record wholesale")
	}
	if !rec.Has("0-0") || rec.TotalScore != 85 || rec.CurrentModule != 1 {
		t.Errorf("record = %+v, want the remote copy", rec)
	}
}

func TestFetchRemote_FailureKeepsLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "invalid token"})
	}))
	defer srv.Close()

	sess := NewSession("u1", "bad")
	sess.Store.RecordCompletion("0-0", 70)

	c := NewClient(srv.URL)
	if _, err := c.FetchRemote(context.Background(), sess); err == nil {
		t.Fatal("FetchRemote() should fail on 401")
	}

	rec := sess.Store.Snapshot()
	if !rec.Has("0-0") || rec.TotalScore != 70 {
		t.Errorf("record = %+v, a failed fetch must leave local state untouched", rec)
	}
}

func TestPushCompletion_SendsRecord(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/progress" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "progress": Record{}})
	}))
	defer srv.Close()

	sess := NewSession("u1", "tok")
	c := NewClient(srv.URL)
	if err := c.PushCompletion(context.Background(), sess, "3-1", 3, 71); err != nil {
		t.Fatalf("PushCompletion() error = %v", err)
	}

	if got["lessonId"] != "3-1" || got["moduleId"] != float64(3) || got["quizScore"] != float64(71) {
		t.Errorf("body = %v", got)
	}
}

func TestPushCompletion_FailureReportedNotRolledBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sess := NewSession("u1", "tok")
	sess.Store.RecordCompletion("3-1", 71)

	c := NewClient(srv.URL)
	if err := c.PushCompletion(context.Background(), sess, "3-1", 3, 71); err == nil {
		t.Fatal("PushCompletion() should surface the failure")
	}

	snap := sess.Store.Snapshot()
	if !snap.Has("3-1") {
		t.Error("a failed push must never roll back the local record")
	}
}

func TestPushPosition(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/position" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer srv.Close()

	sess := NewSession("u1", "tok")
	c := NewClient(srv.URL)
	if err := c.PushPosition(context.Background(), sess, 2, 1); err != nil {
		t.Fatalf("PushPosition() error = %v", err)
	}
	if got["moduleId"] != float64(2) || got["lessonId"] != float64(1) {
		t.Errorf("body = %v", got)
	}
}
