package detector

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// ServiceScript is the file name of the MediaPipe landmark service.
const ServiceScript = "mediapipe_service.py"

// IdleTimeout is how long the service may sit unused before it is stopped.
const IdleTimeout = 30 * time.Second

// ErrScriptNotFound is returned when the MediaPipe service script cannot be located.
var ErrScriptNotFound = errors.New(ServiceScript + " not found")

// MediaPipeDetector finds hands with a Python MediaPipe service.
//
// Each frame goes out as a 4-byte big-endian length followed by JPEG bytes.
// The service answers with a single JSON line:
//
//	{"hands": [{"points": [{"x":..,"y":..,"z":..}, ...], "handedness": "Right", "score": 0.98}]}
//
// The process starts on the first frame and stops after IdleTimeout
// without frames.
type MediaPipeDetector struct {
	config Config

	mu   sync.Mutex
	svc  *service
	idle *time.Timer
}

// NewMediaPipeDetector locates the service script and prepares a detector.
func NewMediaPipeDetector(config Config) (*MediaPipeDetector, error) {
	script := findMediaPipeScript()
	if script == "" {
		return nil, ErrScriptNotFound
	}

	svc := newService("mediapipe service",
		pythonInterpreter(), script,
		"--max-hands", strconv.Itoa(config.MaxHands),
		"--min-detection-confidence", strconv.FormatFloat(config.MinConfidence, 'f', 2, 64),
		"--min-tracking-confidence", strconv.FormatFloat(config.MinTrackingConf, 'f', 2, 64),
	)

	return &MediaPipeDetector{config: config, svc: svc}, nil
}

// Detect returns at most MaxHands hands found in frame.
func (d *MediaPipeDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if frame == nil || frame.Empty() {
		return nil, nil
	}

	jpeg, err := gocv.IMEncode(gocv.JPEGFileExt, *frame)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer jpeg.Close()

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.svc.start(); err != nil {
		return nil, err
	}
	d.touch()

	reply, err := d.svc.exchange(jpeg.GetBytes())
	if err != nil {
		return nil, err
	}

	hands, err := parseResponse(reply)
	if err != nil {
		return nil, err
	}
	if limit := d.config.MaxHands; limit > 0 && len(hands) > limit {
		hands = hands[:limit]
	}
	return hands, nil
}

// Close stops the service.
func (d *MediaPipeDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.idle != nil {
		d.idle.Stop()
		d.idle = nil
	}
	return d.svc.stop()
}

// touch restarts the idle countdown.
func (d *MediaPipeDetector) touch() {
	if d.idle != nil {
		d.idle.Reset(IdleTimeout)
		return
	}
	d.idle = time.AfterFunc(IdleTimeout, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.svc.stop()
	})
}

// writeFrame writes one length-prefixed frame.
func writeFrame(w io.Writer, data []byte) error {
	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(data)))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write length: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write data: %w", err)
	}
	return nil
}

type serviceReply struct {
	Hands []struct {
		Points     []Point3D `json:"points"`
		Handedness string    `json:"handedness"`
		Score      float64   `json:"score"`
	} `json:"hands"`
}

// parseResponse decodes one reply line. Hands without the full landmark
// set are dropped.
func parseResponse(line []byte) ([]HandLandmarks, error) {
	var reply serviceReply
	if err := json.Unmarshal(line, &reply); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	hands := make([]HandLandmarks, 0, len(reply.Hands))
	for _, h := range reply.Hands {
		if len(h.Points) < NumLandmarks {
			continue
		}
		lm := HandLandmarks{Handedness: h.Handedness, Score: h.Score}
		copy(lm.Points[:], h.Points)
		hands = append(hands, lm)
	}
	return hands, nil
}
