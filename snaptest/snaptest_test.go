package snaptest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/cssnap"
	"github.com/npillmayer/cssnap/dom/style/cssom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotMatchesGoldenFile(t *testing.T) {
	sheet := cssom.NewSheet()
	sheet.Insert(".css-a", "color: red;")
	Snapshot(t, "div", cssnap.New(sheet), `<div class="css-a">hi</div>`)
}

func TestMatchWritesMissingFile(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	defer func() { Dir = old }()
	//
	Match(t, "fresh", "content")
	data, err := os.ReadFile(filepath.Join(Dir, "fresh.snap"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
	Match(t, "fresh", "content")
}

func TestGoldenPath(t *testing.T) {
	_, err := goldenPath("../escape")
	assert.Error(t, err)
	_, err = goldenPath("")
	assert.Error(t, err)
	p, err := goldenPath("ok")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(Dir, "ok.snap"), p)
}
