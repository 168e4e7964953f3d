package store

import (
	"errors"
	"testing"
)

func TestSettings_GetSet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	if _, err := repo.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := repo.Set("theme", "dark"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Set("theme", "light"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	got, err := repo.Get("theme")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "light" {
		t.Errorf("Get() = %q, want light", got)
	}
}

func TestSettings_TypedGetters(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	tests := []struct {
		name    string
		value   string
		wantInt int
		intErr  bool
		want    bool
		boolErr bool
	}{
		{name: "integer", value: "3", wantInt: 3, boolErr: true},
		{name: "boolean", value: "true", intErr: true, want: true},
		{name: "one", value: "1", wantInt: 1, want: true},
		{name: "garbage", value: "blue", intErr: true, boolErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.Set("k", tt.value); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			n, err := repo.GetInt("k")
			if (err != nil) != tt.intErr {
				t.Errorf("GetInt() error = %v, wantErr %v", err, tt.intErr)
			}
			if err == nil && n != tt.wantInt {
				t.Errorf("GetInt() = %d, want %d", n, tt.wantInt)
			}

			b, err := repo.GetBool("k")
			if (err != nil) != tt.boolErr {
				t.Errorf("GetBool() error = %v, wantErr %v", err, tt.boolErr)
			}
			if err == nil && b != tt.want {
				t.Errorf("GetBool() = %v, want %v", b, tt.want)
			}
		})
	}
}

func TestSettings_Preferences(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	if _, err := repo.LoadPreferences(); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadPreferences() on empty store error = %v, want ErrNotFound", err)
	}

	want := Preferences{ColorIndex: 3, BrushIndex: 0, MenuVisible: false}
	if err := repo.SavePreferences(want); err != nil {
		t.Fatalf("SavePreferences() error = %v", err)
	}

	got, err := repo.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences() error = %v", err)
	}
	if got != want {
		t.Errorf("LoadPreferences() = %+v, want %+v", got, want)
	}

	want = Preferences{ColorIndex: 1, BrushIndex: 4, MenuVisible: true}
	if err := repo.SavePreferences(want); err != nil {
		t.Fatalf("SavePreferences() overwrite error = %v", err)
	}
	if got, _ := repo.LoadPreferences(); got != want {
		t.Errorf("LoadPreferences() after overwrite = %+v, want %+v", got, want)
	}
}
