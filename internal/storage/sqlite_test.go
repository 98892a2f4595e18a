package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, gameID, player string, score int) {
	t.Helper()
	if _, err := store.SaveScore(gameID, player, score); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, "dragon", "ann", 7)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("dragon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 7 {
		t.Errorf("Expected high score 7 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "dragon", "ann", 10)
	mustSave(t, store, "dragon", "bob", 5)
	mustSave(t, store, "dragon", "cy", 20)
	mustSave(t, store, "other", "ann", 50)

	scores, err := store.TopScores("dragon", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []struct {
		player string
		score  int
	}{
		{"cy", 20},
		{"ann", 10},
		{"bob", 5},
	}
	for i, e := range expected {
		if scores[i].Score != e.score || scores[i].Player != e.player {
			t.Errorf("scores[%d] = %s/%d, expected %s/%d", i, scores[i].Player, scores[i].Score, e.player, e.score)
		}
		if scores[i].GameID != "dragon" {
			t.Errorf("scores[%d].GameID = %q, expected dragon", i, scores[i].GameID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt should be set", i)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, "dragon", "ann", i)
	}

	scores, err := store.TopScores("dragon", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 19 || scores[4].Score != 15 {
		t.Errorf("Expected scores 19..15, got %d..%d", scores[0].Score, scores[4].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("dragon", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("dragon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "dragon", "ann", 3)
	mustSave(t, store, "dragon", "bob", 12)
	mustSave(t, store, "dragon", "ann", 8)

	high, err = store.HighScore("dragon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected high score of 12, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "dragon", "ann", 1)
	mustSave(t, store, "dragon", "bob", 2)
	mustSave(t, store, "other", "ann", 3)

	if err := store.ClearScores("dragon"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("dragon", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game's scores should not be affected by clearing")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStorePlayerBest(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "dragon", "ann", 4)
	mustSave(t, store, "dragon", "ann", 9)
	mustSave(t, store, "dragon", "bob", 15)
	mustSave(t, store, "other", "ann", 30)

	tests := []struct {
		player string
		want   int
	}{
		{"ann", 9},
		{"bob", 15},
		{"nobody", 0},
	}
	for _, tc := range tests {
		got, err := store.PlayerBest("dragon", tc.player)
		if err != nil {
			t.Fatalf("PlayerBest(%q) failed: %v", tc.player, err)
		}
		if got != tc.want {
			t.Errorf("PlayerBest(%q) = %d, expected %d", tc.player, got, tc.want)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats("dragon")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 0 || st.Best != 0 || st.Average != 0 || !st.LastPlayed.IsZero() {
		t.Errorf("Stats() of empty game = %+v, expected zero value", st)
	}

	mustSave(t, store, "dragon", "ann", 2)
	mustSave(t, store, "dragon", "bob", 4)
	mustSave(t, store, "dragon", "ann", 9)

	st, err = store.Stats("dragon")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 3 {
		t.Errorf("Runs = %d, expected 3", st.Runs)
	}
	if st.Best != 9 {
		t.Errorf("Best = %d, expected 9", st.Best)
	}
	if st.Average != 5 {
		t.Errorf("Average = %v, expected 5", st.Average)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", want, want},
		{"sqlite string", "2026-03-14 15:09:26", want},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(tc.want) {
				t.Errorf("parseTime(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}
