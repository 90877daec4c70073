package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("classic", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("beach", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %+v", scores)
	}
	for _, s := range scores {
		if s.Stage != "classic" {
			t.Errorf("Stage = %q, expected classic", s.Stage)
		}
		if s.CreatedAt.IsZero() {
			t.Error("CreatedAt was not parsed")
		}
	}

	beach, err := store.TopScores("beach", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(beach) != 1 {
		t.Errorf("Expected 1 beach score, got %d", len(beach))
	}
}

func TestStoreSaveScoreRunID(t *testing.T) {
	store := openTestStore(t)

	a, err := store.SaveScore("classic", 10)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	b, err := store.SaveScore("classic", 10)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	if _, err := uuid.Parse(a.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", a.RunID, err)
	}
	if a.RunID == b.RunID {
		t.Error("two runs share a run ID")
	}
	if a.ID == 0 || b.ID <= a.ID {
		t.Errorf("IDs = %d, %d", a.ID, b.ID)
	}

	scores, _ := store.TopScores("classic", 10)
	if len(scores) != 2 || scores[0].RunID != a.RunID {
		t.Errorf("ties should keep insertion order: %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("beach", (i+1)*100)
	}

	scores, err := store.TopScores("beach", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("beach")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 before any run, got %d", best)
	}

	tests := []struct {
		score   int
		changed bool
		best    int
	}{
		{120, true, 120},
		{80, false, 120},
		{120, false, 120},
		{450, true, 450},
	}

	for _, tc := range tests {
		changed, err := store.SetBestScore("beach", tc.score)
		if err != nil {
			t.Fatalf("SetBestScore(%d) failed: %v", tc.score, err)
		}
		if changed != tc.changed {
			t.Errorf("SetBestScore(%d) changed = %v, expected %v", tc.score, changed, tc.changed)
		}
		if got, _ := store.BestScore("beach"); got != tc.best {
			t.Errorf("after SetBestScore(%d): best = %d, expected %d", tc.score, got, tc.best)
		}
	}

	if got, _ := store.BestScore("classic"); got != 0 {
		t.Errorf("best scores are per stage, classic = %d", got)
	}
}

func TestStoreBestScoresMap(t *testing.T) {
	store := openTestStore(t)

	store.SetBestScore("classic", 10)
	store.SetBestScore("beach", 20)

	best, err := store.BestScores()
	if err != nil {
		t.Fatalf("BestScores() failed: %v", err)
	}
	if len(best) != 2 || best["classic"] != 10 || best["beach"] != 20 {
		t.Errorf("BestScores() = %v", best)
	}
}

func TestStoreRecordRun(t *testing.T) {
	store := openTestStore(t)

	_, improved, err := store.RecordRun("classic", 300)
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if !improved {
		t.Error("first run should set the best")
	}

	_, improved, _ = store.RecordRun("classic", 100)
	if improved {
		t.Error("lower run should not replace the best")
	}

	all, _ := store.AllScores("classic")
	if len(all) != 2 {
		t.Errorf("history has %d runs, expected 2", len(all))
	}
	if best, _ := store.BestScore("classic"); best != 300 {
		t.Errorf("best = %d, expected 300", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun("classic", 100)
	store.RecordRun("classic", 200)
	store.RecordRun("beach", 300)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}
	if best, _ := store.BestScore("classic"); best != 0 {
		t.Errorf("classic best = %d after clear", best)
	}

	beach, _ := store.TopScores("beach", 10)
	if len(beach) != 1 {
		t.Errorf("Beach scores should not be affected by clearing classic")
	}
	if best, _ := store.BestScore("beach"); best != 300 {
		t.Errorf("beach best = %d, expected 300", best)
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("classic", i*10)
	}

	scores, err := store.AllScores("classic")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
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
