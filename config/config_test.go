package config

import (
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lai323/jdict/note"
)

func TestInitConfig_WritesDefault(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := InitConfig(fs, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, cfg)

	exist, err := afero.Exists(fs, DefaultConfigPath)
	require.NoError(t, err)
	assert.True(t, exist)
	exist, err = afero.DirExists(fs, DefaultStorageDir)
	require.NoError(t, err)
	assert.True(t, exist)
}

func TestInitConfig_File(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/jdict.yaml", []byte(
		"StoragePath: /data\nVaultPath: /vault\nFolderPath: Japanese/words\nMode: add-furigana\nCopyLink: true\n"), 0644))

	cfg, err := InitConfig(fs, "/etc/jdict.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/data", cfg.StoragePath)
	assert.Equal(t, "/vault", cfg.VaultPath)
	assert.Equal(t, "Japanese/words", cfg.FolderPath)
	assert.Equal(t, note.AddFurigana, cfg.LinkMode())
	assert.True(t, cfg.CopyLink)
	assert.Equal(t, DefaultConfig.Language, cfg.Language, "missing keys keep defaults")
	assert.Equal(t, "/data/jdict.log", cfg.LogFile())
	require.NoError(t, cfg.Validate())
}

func TestInitConfig_EnvOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/jdict.yaml", []byte("Mode: add-furigana\n"), 0644))
	t.Setenv("JDICT_MODE", "replace-kanji-with-furigana")
	t.Setenv("JDICT_FOLDER_PATH", "dict")

	cfg, err := InitConfig(fs, "/jdict.yaml")
	require.NoError(t, err)
	assert.Equal(t, note.ReplaceKanjiWithFurigana, cfg.LinkMode())
	assert.Equal(t, "dict", cfg.FolderPath)
}

func TestInitConfig_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := InitConfig(fs, "/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Init config error: /missing.yaml not exist")

	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("Mode: [\n"), 0644))
	_, err = InitConfig(fs, "/bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Init config error")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig
	require.NoError(t, cfg.Validate())

	cfg.Mode = "furigana"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig
	cfg.VaultPath = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig
	cfg.StoragePath = ""
	assert.Error(t, cfg.Validate())
}

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{LogLevel: "DEBUG"}.Level())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "warn"}.Level())
	assert.Equal(t, slog.LevelInfo, Config{}.Level())
}
