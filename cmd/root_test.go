package cmd

import (
	"testing"

	"github.com/jrudowski/minesweep/game"
)

func TestApplyPresetSetsDimensions(t *testing.T) {
	config := game.NewConfig()

	usedPreset, note, err := applyPreset(&config, "hard", false, true)
	if err != nil {
		t.Fatal(err)
	}
	if usedPreset != "hard" || note != "" {
		t.Errorf("applyPreset = (%q, %q), want (hard, no note)", usedPreset, note)
	}
	if config.Width != 30 || config.Height != 16 || config.NumMines != 99 {
		t.Errorf("config after preset = %dx%d/%d, want 30x16/99",
			config.Width, config.Height, config.NumMines)
	}
}

func TestApplyPresetRejectsUnknownName(t *testing.T) {
	config := game.NewConfig()
	if _, _, err := applyPreset(&config, "nightmare", false, true); err == nil {
		t.Error("unknown preset accepted")
	}
}

// Explicit dimensions win over the preset, and the user is told when
// their --preset gets ignored.
func TestApplyPresetCustomDimensionsOverride(t *testing.T) {
	config := game.NewConfig()
	config.Width = 24

	usedPreset, note, err := applyPreset(&config, "hard", true, true)
	if err != nil {
		t.Fatal(err)
	}
	if usedPreset != "" {
		t.Errorf("usedPreset = %q for a custom board, want empty", usedPreset)
	}
	if note == "" {
		t.Error("no note about the ignored --preset")
	}
	if config.Width != 24 {
		t.Errorf("custom width overwritten to %d", config.Width)
	}

	// Default preset name with no --preset flag: override silently
	if _, note, err = applyPreset(&config, "easy", true, false); err != nil || note != "" {
		t.Errorf("applyPreset without explicit --preset = (%q, %v), want no note", note, err)
	}
}
