package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMissingReadsBlank(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "oledtris.json"), nil)
	require.NoError(t, err)

	seed, err := f.LoadSeed()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xFFFF), seed)

	score, err := f.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, uint16(NoRecord), score)

	name, err := f.LoadName()
	require.NoError(t, err)
	assert.Equal(t, BlankName, name)
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "oledtris.json")
	f, err := NewFile(path, nil)
	require.NoError(t, err)

	require.NoError(t, f.StoreSeed(0xBEEF))
	require.NoError(t, f.StoreHighScore(420))
	require.NoError(t, f.StoreName(Name{'K', 'I', 'M', ' ', ' '}))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file left behind")

	g, err := NewFile(path, nil)
	require.NoError(t, err)

	seed, _ := g.LoadSeed()
	assert.Equal(t, uint16(0xBEEF), seed)
	score, _ := g.LoadHighScore()
	assert.Equal(t, uint16(420), score)
	name, _ := g.LoadName()
	assert.Equal(t, Name{'K', 'I', 'M', ' ', ' '}, name)
}

func TestFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oledtris.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFile(path, nil)
	assert.Error(t, err)
}

func TestFileShortName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oledtris.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seed":1,"high_score":7,"name":"AL"}`), 0o644))

	f, err := NewFile(path, nil)
	require.NoError(t, err)
	name, err := f.LoadName()
	require.NoError(t, err)
	assert.Equal(t, Name{'A', 'L', 0xFF, 0xFF, 0xFF}, name)
	assert.Equal(t, "AL   ", name.String())
}
