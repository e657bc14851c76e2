package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestStatusJSON(t *testing.T) {
	opts := DefaultOpts()
	opts.Sample = []SamplePlayer{{Name: "thinkofdeath", ID: uuid.MustParse("4566e69f-c907-48ee-8d71-d7ba5aa00d20")}}

	provider := NewStatusProvider(opts.Description)
	doc, err := NewStatus(*opts, provider.ServerStatus(5, 100), "data:image/png;base64,AA==").JSON()
	require.NoError(t, err)

	assert.Equal(t, "1.21.2", gjson.Get(doc, "version.name").String())
	assert.Equal(t, int64(768), gjson.Get(doc, "version.protocol").Int())
	assert.Equal(t, int64(100), gjson.Get(doc, "players.max").Int())
	assert.Equal(t, int64(5), gjson.Get(doc, "players.online").Int())
	assert.Equal(t, "thinkofdeath", gjson.Get(doc, "players.sample.0.name").String())
	assert.Equal(t, "4566e69f-c907-48ee-8d71-d7ba5aa00d20", gjson.Get(doc, "players.sample.0.id").String())
	assert.Equal(t, "AtmosphereMC - Void", gjson.Get(doc, "description.text").String())
	assert.Equal(t, "data:image/png;base64,AA==", gjson.Get(doc, "favicon").String())
	assert.True(t, gjson.Get(doc, "enforcesSecureChat").Exists())
}

func TestStatusJSONWithoutFavicon(t *testing.T) {
	opts := DefaultOpts()
	doc, err := NewStatus(*opts, NewStatusProvider("x").ServerStatus(0, 1), "").JSON()
	require.NoError(t, err)

	assert.False(t, gjson.Get(doc, "favicon").Exists())
	assert.Equal(t, "[]", gjson.Get(doc, "players.sample").Raw)
}

func TestLoadFavicon(t *testing.T) {
	favicon, err := LoadFavicon("")
	require.NoError(t, err)
	assert.Empty(t, favicon)

	path := filepath.Join(t.TempDir(), "server-icon.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o644))
	favicon, err = LoadFavicon(path)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,iVBORw==", favicon)

	_, err = LoadFavicon(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
