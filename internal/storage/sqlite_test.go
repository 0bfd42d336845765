package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	runs := []Run{
		{GameID: "2048", Score: 100, MaxTile: 32, Moves: 40},
		{GameID: "2048", Score: 50, MaxTile: 16, Moves: 20, Slide: "cascade"},
		{GameID: "2048", Score: 200, MaxTile: 64, Moves: 80},
		{GameID: "other", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("2048", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	want := []uint64{200, 100, 50}
	for i, score := range want {
		if top[i].Score != score {
			t.Errorf("run[%d].Score = %d, want %d", i, top[i].Score, score)
		}
	}
	if top[0].MaxTile != 64 || top[0].Moves != 80 {
		t.Errorf("top run = %+v, want max tile 64 and 80 moves", top[0])
	}
	if top[0].Slide != "step" {
		t.Errorf("default slide = %q, want step", top[0].Slide)
	}
	if top[2].Slide != "cascade" {
		t.Errorf("slide = %q, want cascade", top[2].Slide)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	other, err := store.TopRuns("other", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 run for other game, got %d", len(other))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{GameID: "2048", Score: uint64(i+1) * 100})
	}

	top, err := store.TopRuns("2048", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, score := range []uint64{100, 300, 200} {
		store.SaveRun(Run{GameID: "2048", Score: score})
	}

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "2048", Score: 100})
	store.SaveRun(Run{GameID: "2048", Score: 200})
	store.SaveRun(Run{GameID: "other", Score: 300})

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if runs, _ := store.AllRuns("2048"); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.AllRuns("other"); len(runs) != 1 {
		t.Error("Other game should not be affected by clearing 2048")
	}
}

func TestStoreAllRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveRun(Run{GameID: "2048", Score: uint64(i) * 10})
	}

	runs, err := store.AllRuns("2048")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "2048", Score: 100, MaxTile: 32, Moves: 10})
	store.SaveRun(Run{GameID: "2048", Score: 300, MaxTile: 128, Moves: 30})

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 || stats.BestTile != 128 {
		t.Errorf("HighScore/BestTile = %d/%d, want 300/128", stats.HighScore, stats.BestTile)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalMoves != 40 {
		t.Errorf("TotalMoves = %d, want 40", stats.TotalMoves)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
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
