package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ayusman/handwriting/internal/app"
	"github.com/ayusman/handwriting/internal/store"
)

func main() {
	cfg := app.DefaultConfig()

	cameraID := flag.Int("camera", cfg.CameraID, "camera device index")
	width := flag.Int("width", cfg.Width, "capture and canvas width")
	height := flag.Int("height", cfg.Height, "capture and canvas height")
	pinch := flag.Float64("pinch", cfg.PinchThreshold, "thumb to index distance in pixels that counts as a pinch")
	dbPath := flag.String("db", "", "SQLite file for saved preferences and the session journal")
	save := flag.Bool("save", false, "use ~/.handwriting/handwriting.db when -db is not set")
	flag.Parse()

	fmt.Println("Hand Writing - Air drawing with your index finger")

	cfg.CameraID = *cameraID
	cfg.Width = *width
	cfg.Height = *height
	cfg.PinchThreshold = *pinch

	path, err := resolveDBPath(*dbPath, *save)
	if err != nil {
		log.Fatalf("Failed to locate data directory: %v", err)
	}

	if err := run(cfg, path); err != nil {
		log.Fatalf("Drawing loop failed: %v", err)
	}
}

// run opens the optional store and drives the app until it stops.
func run(cfg app.Config, dbPath string) error {
	if dbPath != "" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
		st, err := store.New(dbPath)
		if err != nil {
			return fmt.Errorf("initialize store: %w", err)
		}
		defer st.Close()
		cfg.Store = st
		log.Printf("Saving preferences to %s", dbPath)
	}

	a := app.New(cfg)
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.Run(ctx)
}

// resolveDBPath picks the store location from the -db and -save flags.
// An empty result means nothing is written to disk.
func resolveDBPath(dbPath string, save bool) (string, error) {
	if dbPath != "" || !save {
		return dbPath, nil
	}
	return defaultDBPath()
}

// defaultDBPath returns ~/.handwriting/handwriting.db.
func defaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".handwriting", "handwriting.db"), nil
}
