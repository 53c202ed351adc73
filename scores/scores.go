// Package scores keeps per-preset best completion times in a YAML file.
package scores

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"
)

type entry struct {
	Seconds float64 `yaml:"seconds"`
	When    string  `yaml:"when"`
}

type Table struct {
	path string
	best map[string]entry
}

// Load reads the best-times table at path. A missing file yields an
// empty table.
func Load(path string) (*Table, error) {
	table := &Table{
		path: path,
		best: make(map[string]entry),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, &table.best); err != nil {
		return nil, err
	}
	return table, nil
}

func (table *Table) Best(preset string) (time.Duration, bool) {
	e, ok := table.best[preset]
	return time.Duration(e.Seconds * float64(time.Second)), ok
}

// Record stores elapsed as the best time for preset if it improves on
// the recorded one, and reports whether it did. Improvements are
// written through to the file immediately.
func (table *Table) Record(preset string, elapsed time.Duration) (bool, error) {
	if best, ok := table.Best(preset); ok && elapsed >= best {
		return false, nil
	}

	table.best[preset] = entry{
		Seconds: elapsed.Seconds(),
		When:    time.Now().Format(time.RFC3339),
	}
	return true, table.save()
}

func (table *Table) save() error {
	out, err := yaml.Marshal(table.best)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(table.path), 0777); err != nil {
		return err
	}
	return os.WriteFile(table.path, out, 0666)
}

// DefaultPath is the best-times file under the user's config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "best_times.yaml"
	}
	return filepath.Join(dir, "minesweep", "best_times.yaml")
}
