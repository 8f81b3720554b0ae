package wconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Load_ReadsSuppliedFields(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "wparse.toml")
	content := "start_symbol = \"GOAL\"\nprogress = true\nlog_level = \"debug\"\n"
	assert.NoError(os.WriteFile(path, []byte(content), 0o644))

	d, err := Load(path)
	assert.NoError(err)
	assert.Equal("GOAL", d.StartSymbol)
	assert.True(d.Progress)
	assert.Equal("debug", d.LogLevel)
}

func Test_Load_MissingFileIsNotAnError(t *testing.T) {
	assert := assert.New(t)

	d, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.NoError(err)
	assert.Equal(Defaults{}, d)
}
