package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Keys under which the persisted records live.
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Winner names the side that captured the opposing king.
type Winner int

const (
	WinnerWhite Winner = iota
	WinnerBlack
)

func (w Winner) String() string {
	if w == WinnerBlack {
		return "Black"
	}
	return "White"
}

// UserPreferences holds the settings the player can change in the
// side panel.
type UserPreferences struct {
	Theme          string    `json:"theme"`
	SoundEnabled   bool      `json:"sound_enabled"`
	ShowLegalMoves bool      `json:"show_legal_moves"`
	LastPlayed     time.Time `json:"last_played"`
}

// DefaultPreferences is the state of a fresh install.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Theme:          "classic",
		SoundEnabled:   true,
		ShowLegalMoves: true,
		LastPlayed:     time.Now(),
	}
}

// GameStats accumulates results across finished games.
type GameStats struct {
	GamesPlayed   int           `json:"games_played"`
	WhiteWins     int           `json:"white_wins"`
	BlackWins     int           `json:"black_wins"`
	TotalMoves    int           `json:"total_moves"`
	LongestGame   int           `json:"longest_game"`
	ShortestWin   int           `json:"shortest_win"`
	TotalPlayTime time.Duration `json:"total_play_time"`
}

// NewGameStats returns zeroed statistics.
func NewGameStats() *GameStats {
	return &GameStats{}
}

// GameResult describes one finished game.
type GameResult struct {
	Winner   Winner
	Moves    int
	Duration time.Duration
}

// Storage persists preferences and statistics in a BadgerDB database.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return NewStorageAt(dir)
}

// NewStorageAt opens the database rooted at dir, creating it if needed.
func NewStorageAt(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close releases the database.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// putJSON stores v under key as a JSON document.
func (s *Storage) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// getJSON decodes the document under key into v. A missing key leaves
// v untouched and is not an error.
func (s *Storage) getJSON(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// SavePreferences writes prefs, stamping LastPlayed with the current
// time.
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.putJSON(keyPreferences, prefs)
}

// LoadPreferences reads the stored preferences, or the defaults when
// nothing has been saved yet.
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	if err := s.getJSON(keyPreferences, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// SaveStats writes the accumulated statistics.
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.putJSON(keyStats, stats)
}

// LoadStats reads the stored statistics, or zeroed statistics when
// nothing has been recorded yet.
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	if err := s.getJSON(keyStats, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// RecordGame folds one finished game into the stored statistics.
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	wins := &stats.WhiteWins
	if result.Winner == WinnerBlack {
		wins = &stats.BlackWins
	}
	*wins++

	stats.GamesPlayed++
	stats.TotalMoves += result.Moves
	stats.TotalPlayTime += result.Duration
	if result.Moves > stats.LongestGame {
		stats.LongestGame = result.Moves
	}
	if stats.ShortestWin == 0 || result.Moves < stats.ShortestWin {
		stats.ShortestWin = result.Moves
	}

	return s.SaveStats(stats)
}

// GetWinRate reports the share of recorded games won by w, in percent.
func (s *GameStats) GetWinRate(w Winner) float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	wins := s.WhiteWins
	if w == WinnerBlack {
		wins = s.BlackWins
	}
	return 100 * float64(wins) / float64(s.GamesPlayed)
}
