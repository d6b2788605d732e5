package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"arena_client/model"
)

func get(t *testing.T, store *Store, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	NewRouter(store).ServeHTTP(w, req)
	return w
}

func TestSnapshotEndpoint(t *testing.T) {
	store := NewStore()

	if w := get(t, store, "/snapshot"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("GET /snapshot before first cycle = %d, want 503", w.Code)
	}

	want := model.GameStateSnapshot{
		Level:     5,
		Alive:     1,
		Gold:      32,
		Round:     "3-5",
		RoundTime: 12,
		Health:    []model.HealthEntry{{Rank: 1, Health: 80}},
		Shop:      []model.ShopEntry{{Slot: 0, Name: "Ahri"}, {Slot: 1}},
		Items:     []string{"Infinity Edge", ""},
		Bench:     []bool{true, false},
		EmptySlot: 1,
	}
	store.Set(want)

	w := get(t, store, "/snapshot")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /snapshot = %d, want 200", w.Code)
	}
	var got model.GameStateSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot body mismatch (-want +got):\n%s", diff)
	}
}

func TestHealthEndpoint(t *testing.T) {
	store := NewStore()
	store.Set(model.GameStateSnapshot{})
	store.Set(model.GameStateSnapshot{})

	w := get(t, store, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d, want 200", w.Code)
	}
	var body struct {
		Status string `json:"status"`
		Cycles uint64 `json:"cycles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" || body.Cycles != 2 {
		t.Errorf("health body = %+v", body)
	}
}
