package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Setting keys used for drawing preferences.
const (
	KeyColorIndex  = "color_index"
	KeyBrushIndex  = "brush_index"
	KeyMenuVisible = "menu_visible"
)

const upsertSetting = `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// SettingsRepository reads and writes key/value settings.
type SettingsRepository struct {
	db *sql.DB
}

// Settings returns the settings repository for this store.
func (s *Store) Settings() *SettingsRepository {
	return &SettingsRepository{db: s.db}
}

// Get returns the value stored under key, or ErrNotFound.
func (r *SettingsRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (r *SettingsRepository) Set(key, value string) error {
	_, err := r.db.Exec(upsertSetting, key, value, time.Now())
	return err
}

// GetInt returns an integer setting.
func (r *SettingsRepository) GetInt(key string) (int, error) {
	v, err := r.Get(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("setting %q: %w", key, err)
	}
	return n, nil
}

// GetBool returns a boolean setting.
func (r *SettingsRepository) GetBool(key string) (bool, error) {
	v, err := r.Get(key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("setting %q: %w", key, err)
	}
	return b, nil
}

// Preferences is the drawing selection restored between runs.
type Preferences struct {
	ColorIndex  int
	BrushIndex  int
	MenuVisible bool
}

// LoadPreferences reads the saved selection. It returns ErrNotFound when
// nothing has been saved yet.
func (r *SettingsRepository) LoadPreferences() (Preferences, error) {
	var p Preferences
	var err error

	if p.ColorIndex, err = r.GetInt(KeyColorIndex); err != nil {
		return Preferences{}, err
	}
	if p.BrushIndex, err = r.GetInt(KeyBrushIndex); err != nil {
		return Preferences{}, err
	}
	if p.MenuVisible, err = r.GetBool(KeyMenuVisible); err != nil {
		return Preferences{}, err
	}
	return p, nil
}

// SavePreferences writes the selection in one transaction.
func (r *SettingsRepository) SavePreferences(p Preferences) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	values := map[string]string{
		KeyColorIndex:  strconv.Itoa(p.ColorIndex),
		KeyBrushIndex:  strconv.Itoa(p.BrushIndex),
		KeyMenuVisible: strconv.FormatBool(p.MenuVisible),
	}
	for key, value := range values {
		if _, err := tx.Exec(upsertSetting, key, value, now); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}

	return tx.Commit()
}
