package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4g3nt81lly/smartchess/game"
)

func mustSubmit(t *testing.T, g *game.Game, uci string) {
	t.Helper()
	mv, err := g.ParseMove(uci)
	require.NoError(t, err)
	require.NoError(t, g.SubmitMove(mv))
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()
	s, err := New(filepath.Join(t.TempDir(), "games"))
	require.NoError(t, err)

	g, err := game.NewGame(game.WithPlayers(
		game.PlayerInfo{Name: "Ada"},
		game.PlayerInfo{Name: "Brook"},
	))
	require.NoError(t, err)
	mustSubmit(t, g, "e2e4")

	require.NoError(t, s.Save(g))

	loaded, err := s.Load(g.ID())
	require.NoError(t, err)
	assert.Equal(t, g.ID(), loaded.ID())
	assert.Equal(t, g.FEN(), loaded.FEN())
	assert.Equal(t, "Ada", loaded.Player(loaded.Turn().Opposite()).Name)
	assert.Len(t, loaded.History(), 1)
}

func TestLoadNotFound(t *testing.T) {
	t.Parallel()
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load(uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Load("not-a-uuid")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRollback(t *testing.T) {
	t.Parallel()
	s, err := New(t.TempDir())
	require.NoError(t, err)

	g, err := game.NewGame()
	require.NoError(t, err)

	// no checkpoint before the second save
	require.NoError(t, s.Save(g))
	_, err = s.Rollback(g.ID())
	assert.ErrorIs(t, err, ErrNotFound)

	before := g.FEN()
	mustSubmit(t, g, "e2e4")
	require.NoError(t, s.Save(g))

	restored, err := s.Rollback(g.ID())
	require.NoError(t, err)
	assert.Equal(t, before, restored.FEN())

	// rollback also rewrites the current snapshot
	loaded, err := s.Load(g.ID())
	require.NoError(t, err)
	assert.Equal(t, before, loaded.FEN())
}

func TestList(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	ids, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, ids)

	g1, err := game.NewGame()
	require.NoError(t, err)
	g2, err := game.NewGame()
	require.NoError(t, err)
	require.NoError(t, s.Save(g1))
	require.NoError(t, s.Save(g2))

	// strangers and checkpoints are not listed
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("{}"), 0o644))
	mustSubmit(t, g1, "e2e4")
	require.NoError(t, s.Save(g1))

	ids, err = s.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{g1.ID(), g2.ID()}, ids)
}
