package gesture

import (
	"testing"
	"time"
)

func TestCooldown_Fire(t *testing.T) {
	start := time.Now()

	tests := []struct {
		name   string
		offset time.Duration
		want   bool
	}{
		{name: "first trigger fires", offset: 0, want: true},
		{name: "held pose inside window", offset: 100 * time.Millisecond, want: false},
		{name: "still inside window", offset: 299 * time.Millisecond, want: false},
		{name: "window elapsed", offset: 300 * time.Millisecond, want: true},
		{name: "window restarted by last fire", offset: 450 * time.Millisecond, want: false},
		{name: "second window elapsed", offset: 650 * time.Millisecond, want: true},
	}

	c := NewCooldown(ModeToggleCooldown)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Fire(start.Add(tt.offset)); got != tt.want {
				t.Errorf("Fire(+%v) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestCooldown_ReadyDoesNotConsume(t *testing.T) {
	now := time.Now()
	c := NewCooldown(MenuToggleCooldown)

	if !c.Ready(now) || !c.Ready(now) {
		t.Fatal("fresh cooldown should stay ready")
	}
	if !c.Fire(now) {
		t.Fatal("first Fire should be accepted")
	}
	if c.Ready(now.Add(499 * time.Millisecond)) {
		t.Error("should not be ready inside the 500ms window")
	}
	if !c.Ready(now.Add(500 * time.Millisecond)) {
		t.Error("should be ready once the window has elapsed")
	}
}

func TestCooldown_IndependentWindows(t *testing.T) {
	now := time.Now()
	clearCD := NewCooldown(ClearCooldown)
	menu := NewCooldown(MenuToggleCooldown)

	if !clearCD.Fire(now) || !menu.Fire(now) {
		t.Fatal("both cooldowns should accept their first trigger")
	}

	later := now.Add(400 * time.Millisecond)
	if !clearCD.Fire(later) {
		t.Error("clear cooldown should have expired after 400ms")
	}
	if menu.Fire(later) {
		t.Error("menu cooldown should still be active after 400ms")
	}
}
