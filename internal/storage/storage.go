// Package storage persists JSON-encoded collection snapshots to named slots
// on the local filesystem. Slots are a cache of the in-memory state, not a
// system of record: loads degrade to a caller-supplied fallback on any
// failure, and saves are best effort.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// SchemaVersion namespaces every slot file. Bumping it abandons all
// previously persisted data in favour of built-in defaults; there is no
// in-place migration.
const SchemaVersion = "v1"

// Slots maps logical slot names to JSON files under a data directory. One
// slot holds one collection's snapshot.
type Slots struct {
	dir    string
	logger zerolog.Logger
}

// NewSlots creates the data directory if needed and returns a slot store
// rooted at it.
func NewSlots(dir string, logger zerolog.Logger) (*Slots, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Slots{
		dir:    dir,
		logger: logger.With().Str("component", "storage").Logger(),
	}, nil
}

// Dir returns the data directory the slots live under.
func (s *Slots) Dir() string {
	return s.dir
}

func (s *Slots) path(name string) string {
	return filepath.Join(s.dir, name+"_"+SchemaVersion+".json")
}

// Load reads the slot named name and decodes it into a value of type T. It
// returns fallback when the slot is absent, holds malformed JSON, holds the
// literal null, or holds a value whose shape disagrees with T (a non-array
// where a sequence is expected fails to decode and falls back). Load never
// returns an error.
func Load[T any](s *Slots, name string, fallback T) T {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("slot", name).Msg("failed to read slot, using fallback")
		}
		return fallback
	}

	if string(bytes.TrimSpace(raw)) == "null" {
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.Warn().Err(err).Str("slot", name).Msg("failed to decode slot, using fallback")
		return fallback
	}
	return v
}

// Save encodes v and writes it to the slot named name, replacing any prior
// content. Failures are logged and otherwise swallowed; the in-memory state
// remains authoritative for the session.
func Save[T any](s *Slots, name string, v T) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error().Err(err).Str("slot", name).Msg("failed to encode slot value")
		return
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		s.logger.Error().Err(err).Str("slot", name).Msg("failed to write slot")
	}
}

// Clear removes every versioned slot file in the data directory. Used by the
// reset-all action so the next construction starts from built-in defaults.
func (s *Slots) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read data directory: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || !strings.Contains(name, "_v") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			return fmt.Errorf("failed to remove slot file %s: %w", name, err)
		}
	}
	return nil
}
