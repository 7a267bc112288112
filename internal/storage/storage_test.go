package storage

import (
	"os"
	"testing"
	"time"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorageAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorageAt failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferences(t *testing.T) {
	s := openTestStorage(t)

	t.Run("DefaultsWhenMissing", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences failed: %v", err)
		}
		if prefs.Theme != "classic" {
			t.Errorf("Expected theme 'classic', got '%s'", prefs.Theme)
		}
		if !prefs.SoundEnabled {
			t.Errorf("Expected sound enabled by default")
		}
		if !prefs.ShowLegalMoves {
			t.Errorf("Expected legal move hints enabled by default")
		}
	})

	t.Run("SaveAndReload", func(t *testing.T) {
		before := time.Now()
		prefs := &UserPreferences{
			Theme:          "rose",
			SoundEnabled:   false,
			ShowLegalMoves: false,
		}
		if err := s.SavePreferences(prefs); err != nil {
			t.Fatalf("SavePreferences failed: %v", err)
		}

		loaded, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences failed: %v", err)
		}
		if loaded.Theme != "rose" {
			t.Errorf("Expected theme 'rose', got '%s'", loaded.Theme)
		}
		if loaded.SoundEnabled {
			t.Errorf("Expected sound disabled")
		}
		if loaded.ShowLegalMoves {
			t.Errorf("Expected legal move hints disabled")
		}
		if loaded.LastPlayed.Before(before) {
			t.Errorf("Expected LastPlayed stamped on save, got %v", loaded.LastPlayed)
		}
	})
}

func TestStats(t *testing.T) {
	s := openTestStorage(t)

	t.Run("EmptyWhenMissing", func(t *testing.T) {
		stats, err := s.LoadStats()
		if err != nil {
			t.Fatalf("LoadStats failed: %v", err)
		}
		if stats.GamesPlayed != 0 {
			t.Errorf("Expected 0 games played")
		}
		if stats.GetWinRate(WinnerWhite) != 0 {
			t.Errorf("Expected 0 win rate")
		}
	})

	t.Run("SaveAndReload", func(t *testing.T) {
		stats := &GameStats{
			GamesPlayed:   7,
			WhiteWins:     4,
			BlackWins:     3,
			TotalMoves:    201,
			LongestGame:   61,
			ShortestWin:   9,
			TotalPlayTime: 95 * time.Minute,
		}
		if err := s.SaveStats(stats); err != nil {
			t.Fatalf("SaveStats failed: %v", err)
		}

		loaded, err := s.LoadStats()
		if err != nil {
			t.Fatalf("LoadStats failed: %v", err)
		}
		if *loaded != *stats {
			t.Errorf("Loaded stats %+v, want %+v", loaded, stats)
		}
	})
}

func TestRecordGame(t *testing.T) {
	s := openTestStorage(t)

	results := []GameResult{
		{Winner: WinnerWhite, Moves: 40, Duration: 10 * time.Minute},
		{Winner: WinnerBlack, Moves: 12, Duration: 3 * time.Minute},
		{Winner: WinnerWhite, Moves: 61, Duration: 20 * time.Minute},
		{Winner: WinnerWhite, Moves: 33, Duration: 7 * time.Minute},
	}
	for _, r := range results {
		if err := s.RecordGame(r); err != nil {
			t.Fatalf("RecordGame(%+v) failed: %v", r, err)
		}
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.GamesPlayed != 4 {
		t.Errorf("Expected 4 games played, got %d", stats.GamesPlayed)
	}
	if stats.WhiteWins != 3 || stats.BlackWins != 1 {
		t.Errorf("Expected 3 white and 1 black win, got %d and %d", stats.WhiteWins, stats.BlackWins)
	}
	if stats.TotalMoves != 146 {
		t.Errorf("Expected 146 total moves, got %d", stats.TotalMoves)
	}
	if stats.LongestGame != 61 {
		t.Errorf("Expected longest game 61, got %d", stats.LongestGame)
	}
	if stats.ShortestWin != 12 {
		t.Errorf("Expected shortest win 12, got %d", stats.ShortestWin)
	}
	if stats.TotalPlayTime != 40*time.Minute {
		t.Errorf("Expected 40m of play, got %v", stats.TotalPlayTime)
	}
	if rate := stats.GetWinRate(WinnerWhite); rate != 75 {
		t.Errorf("Expected 75%% white win rate, got %.2f%%", rate)
	}
	if rate := stats.GetWinRate(WinnerBlack); rate != 25 {
		t.Errorf("Expected 25%% black win rate, got %.2f%%", rate)
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	// Verify directory exists
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	t.Logf("Data directory: %s", dataDir)
}
