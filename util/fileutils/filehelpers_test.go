package fileutils

import (
	"path/filepath"
	"testing"

	"github.com/buger/jsonparser"
	"github.com/mrnavastar/magma/util"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveProfileCreatesFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	profile := util.Profile{Name: "Magma", Type: "custom", LastVersionId: "1.20.1", Created: "2024-01-01T00:00:00Z"}
	require.NoError(t, SaveProfile(fs, "/mc", profile))

	data, err := afero.ReadFile(fs, "/mc/"+ProfilesFile)
	require.NoError(t, err)
	version, err := jsonparser.GetString(data, "profiles", "Magma", "lastVersionId")
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", version)
}

func TestSaveProfileKeepsOthers(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	existing := `{"profiles":{"default":{"name":"Latest","type":"latest-release"},"Magma":{"name":"Magma","created":"2020-01-01T00:00:00Z","lastVersionId":"1.12.2"}},"settings":{"locale":"en-us"}}`
	require.NoError(t, fs.MkdirAll("/mc", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/mc/"+ProfilesFile, []byte(existing), 0o644))

	profile := util.Profile{Name: "Magma", LastVersionId: "1.19.2", Created: "2024-01-01T00:00:00Z"}
	require.NoError(t, SaveProfile(fs, "/mc", profile))

	data, err := afero.ReadFile(fs, "/mc/"+ProfilesFile)
	require.NoError(t, err)

	version, _ := jsonparser.GetString(data, "profiles", "Magma", "lastVersionId")
	created, _ := jsonparser.GetString(data, "profiles", "Magma", "created")
	other, _ := jsonparser.GetString(data, "profiles", "default", "type")
	locale, _ := jsonparser.GetString(data, "settings", "locale")
	assert.Equal(t, "1.19.2", version)
	assert.Equal(t, "2020-01-01T00:00:00Z", created)
	assert.Equal(t, "latest-release", other)
	assert.Equal(t, "en-us", locale)
}

func TestRemoveProfile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, SaveProfile(fs, "/mc", util.Profile{Name: "Magma"}))
	require.NoError(t, RemoveProfile(fs, "/mc", "Magma"))

	data, err := afero.ReadFile(fs, "/mc/"+ProfilesFile)
	require.NoError(t, err)
	_, _, _, err = jsonparser.Get(data, "profiles", "Magma")
	require.ErrorIs(t, err, jsonparser.KeyPathNotFoundError)

	empty := afero.NewMemMapFs()
	require.NoError(t, RemoveProfile(empty, "/mc", "Magma"))
	exists, _ := afero.Exists(empty, "/mc/"+ProfilesFile)
	assert.False(t, exists)
}

func TestInstalledVersionsMissingDir(t *testing.T) {
	t.Parallel()

	versions, err := InstalledVersions(afero.NewMemMapFs(), "/mc")
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestFolderPath(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path, err := FolderPath(fs, "/mc", "texturepacks")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/mc", "resourcepacks"), path)
	exists, _ := afero.DirExists(fs, path)
	assert.True(t, exists)

	path, err = FolderPath(fs, "/mc", "game")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/mc"), path)

	_, err = FolderPath(fs, "/mc", "screenshots")
	require.ErrorIs(t, err, ErrUnknownFolder)
}
