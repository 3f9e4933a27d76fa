package mandala

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset reports a preset name with no registered bundle.
var ErrUnknownPreset = errors.New("mandala: unknown preset")

// builtinPresets are the named biometric bundles shipped with the package.
// Each is a full record so UI collaborators can bulk-apply it.
var builtinPresets = map[string]Biometrics{
	"morning": {
		HeartRate:  65,
		SleepHours: 8,
		Steps:      500,
		Mood:       7,
		Stress:     3,
		Energy:     6,
	},
	"evening": {
		HeartRate:  62,
		SleepHours: 6.5,
		Steps:      9000,
		Mood:       6,
		Stress:     4,
		Energy:     4,
	},
	"workout": {
		HeartRate:  150,
		SleepHours: 7,
		Steps:      15000,
		Mood:       8,
		Stress:     5,
		Energy:     9,
	},
	"meditation": {
		HeartRate:  55,
		SleepHours: 8,
		Steps:      3000,
		Mood:       8,
		Stress:     1,
		Energy:     5,
	},
}

// Presets returns a copy of the built-in preset table.
func Presets() map[string]Biometrics {
	out := make(map[string]Biometrics, len(builtinPresets))
	for name, b := range builtinPresets {
		out[name] = b
	}
	return out
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(builtinPresets))
	for name := range builtinPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPresetFile reads a YAML preset file mapping names to biometric
// records and returns the bundles clamped to valid ranges. The file format:
//
//	sunrise:
//	  heartRate: 60
//	  sleepHours: 8.5
//	  steps: 1200
//	  mood: 7
//	  stress: 2
//	  energy: 6
func LoadPresetFile(path string) (map[string]Biometrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	var raw map[string]Biometrics
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", path, err)
	}
	out := make(map[string]Biometrics, len(raw))
	for name, b := range raw {
		out[name] = b.Clamped()
	}
	return out, nil
}

// WatchPresets watches a preset file and invokes onChange with the freshly
// loaded table whenever the file is written. onChange runs on the watcher
// goroutine; marshal it onto your update thread before touching an Engine.
// The returned func stops the watcher.
func WatchPresets(path string, onChange func(map[string]Biometrics)) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch presets: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch presets %s: %w", path, err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				table, err := LoadPresetFile(path)
				if err != nil {
					continue // keep the last good table
				}
				onChange(table)
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return watcher.Close, nil
}
