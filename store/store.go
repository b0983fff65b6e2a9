// Package store persists game snapshots as JSON documents on disk, keeping
// a one-deep rollback checkpoint per game.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/4g3nt81lly/smartchess/game"
)

const (
	snapshotExt   = ".json"
	checkpointExt = ".json.bak"
)

// ErrNotFound indicates no saved snapshot exists for the requested game.
var ErrNotFound = errors.New("game not found")

// Store reads and writes snapshots under a single directory. File names are
// the game's UUID, so ids are validated before touching the filesystem.
type Store struct {
	dir string
}

// New opens a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating store directory %s", dir)
	}
	return &Store{dir: dir}, nil
}

// Save writes the game's snapshot atomically (temp file plus rename) and
// keeps the previously saved version as the rollback checkpoint.
func (s *Store) Save(g *game.Game) error {
	snap := g.Copy().Snapshot()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding snapshot")
	}

	path := filepath.Join(s.dir, snap.ID+snapshotExt)
	if _, err := os.Stat(path); err == nil {
		if err := copyFile(path, filepath.Join(s.dir, snap.ID+checkpointExt)); err != nil {
			return errors.Wrap(err, "writing checkpoint")
		}
	}

	tmp, err := os.CreateTemp(s.dir, snap.ID+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return errors.Wrap(err, "writing snapshot")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrap(err, "committing snapshot")
	}
	return nil
}

// Load decodes the saved snapshot of the given game id.
func (s *Store) Load(id string) (*game.Game, error) {
	return s.load(id, snapshotExt)
}

// Rollback restores the checkpointed snapshot over the current one and
// returns the restored game.
func (s *Store) Rollback(id string) (*game.Game, error) {
	g, err := s.load(id, checkpointExt)
	if err != nil {
		return nil, err
	}
	if err := copyFile(
		filepath.Join(s.dir, id+checkpointExt),
		filepath.Join(s.dir, id+snapshotExt),
	); err != nil {
		return nil, errors.Wrap(err, "restoring checkpoint")
	}
	return g, nil
}

// List returns the ids of every saved game.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading store directory %s", s.dir)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, snapshotExt) || strings.HasSuffix(name, checkpointExt) {
			continue
		}
		id := strings.TrimSuffix(name, snapshotExt)
		if _, err := uuid.Parse(id); err == nil {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *Store) load(id, ext string) (*game.Game, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.Wrapf(err, "invalid game id %q", id)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, id+ext))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrNotFound, id)
		}
		return nil, errors.Wrapf(err, "reading snapshot %s", id)
	}
	var snap game.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrapf(err, "decoding snapshot %s", id)
	}
	g, err := game.FromSnapshot(&snap)
	if err != nil {
		return nil, errors.Wrapf(err, "restoring game %s", id)
	}
	return g, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
