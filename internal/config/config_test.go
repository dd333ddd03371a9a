package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dedene/casekit/internal/config"
)

func intPtr(n int) *int { return &n }

func TestLoadMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nonexistent", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, &config.Config{}, cfg)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	tr := true
	fa := false
	original := &config.Config{
		ZalgoIntensity: intPtr(25),
		AutoCopy:       &tr,
		OpenExport:     nil,
		RecordHistory:  &fa,
		ExportDir:      "/tmp/exports",
		SampleText:     "Sphinx of black quartz",
	}

	require.NoError(t, config.Save(path, original))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadJSON5(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	json5Content := `{
		// User preferences
		"zalgo_intensity": 30,
		"record_history": false,  // trailing comma OK
	}`

	require.NoError(t, os.WriteFile(path, []byte(json5Content), 0o644))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.Intensity())
	assert.False(t, loaded.HistoryEnabled())
}

func TestLoadClampsIntensity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"zalgo_intensity": 500}`), 0o644))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.MaxIntensity, loaded.Intensity())
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not valid`), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestGetSet(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"zalgo_intensity", "0"},
		{"zalgo_intensity", "50"},
		{"auto_copy", "true"},
		{"open_export", "false"},
		{"record_history", "false"},
		{"export_dir", "/tmp/out"},
		{"sample_text", "Hello there"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := &config.Config{}
			require.NoError(t, cfg.Set(tt.key, tt.value))

			got, ok := cfg.Get(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestSetValidation(t *testing.T) {
	tests := []struct {
		key   string
		value string
		errRe string
	}{
		{"zalgo_intensity", "lots", "must be an integer"},
		{"zalgo_intensity", "51", "must be between 0 and 50"},
		{"zalgo_intensity", "-1", "must be between 0 and 50"},
		{"auto_copy", "yes", "must be true or false"},
		{"record_history", "1", "must be true or false"},
		{"unknown_key", "foo", "unknown config key"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := &config.Config{}
			err := cfg.Set(tt.key, tt.value)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errRe)
		})
	}
}

func TestUnset(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Set("sample_text", "hi"))

	_, ok := cfg.Get("sample_text")
	assert.True(t, ok)

	require.NoError(t, cfg.Unset("sample_text"))

	_, ok = cfg.Get("sample_text")
	assert.False(t, ok)
	assert.Equal(t, config.DefaultSampleText, cfg.Sample())
}

func TestUnsetUnknown(t *testing.T) {
	cfg := &config.Config{}
	err := cfg.Unset("nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestBoolPointerDistinction(t *testing.T) {
	cfg := &config.Config{}

	// Unset: nil, history defaults on
	_, ok := cfg.Get("record_history")
	assert.False(t, ok)
	assert.True(t, cfg.HistoryEnabled())

	// Set false: non-nil false
	require.NoError(t, cfg.Set("record_history", "false"))

	val, ok := cfg.Get("record_history")
	assert.True(t, ok)
	assert.Equal(t, "false", val)
	assert.False(t, cfg.HistoryEnabled())

	// Unset: back to nil
	require.NoError(t, cfg.Unset("record_history"))
	assert.Nil(t, cfg.RecordHistory)
}

func TestAccessorDefaults(t *testing.T) {
	var nilCfg *config.Config

	for _, cfg := range []*config.Config{nilCfg, {}} {
		assert.Equal(t, config.DefaultIntensity, cfg.Intensity())
		assert.False(t, cfg.CopyByDefault())
		assert.False(t, cfg.OpenAfterExport())
		assert.True(t, cfg.HistoryEnabled())
		assert.Equal(t, config.DefaultSampleText, cfg.Sample())
	}

	tr := true
	cfg := &config.Config{AutoCopy: &tr, OpenExport: &tr, ZalgoIntensity: intPtr(0)}
	assert.True(t, cfg.CopyByDefault())
	assert.True(t, cfg.OpenAfterExport())
	assert.Equal(t, 0, cfg.Intensity())
}

func TestSaveCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")
	path := filepath.Join(nested, "config.json")

	cfg := &config.Config{SampleText: "x"}
	require.NoError(t, config.Save(path, cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	entries, err := os.ReadDir(nested)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file cleaned up")
}

func TestKnownKeys(t *testing.T) {
	expected := []string{
		"auto_copy", "export_dir", "open_export",
		"record_history", "sample_text", "zalgo_intensity",
	}
	assert.Equal(t, expected, config.KnownKeys())
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfgPath, err := config.ConfigPath()
	require.NoError(t, err)
	assert.Contains(t, cfgPath, "casekit")
	assert.Equal(t, "config.json", filepath.Base(cfgPath))

	favPath, err := config.FavoritesPath()
	require.NoError(t, err)
	assert.Contains(t, favPath, "casekit")
	assert.Equal(t, "favorites.json", filepath.Base(favPath))

	histPath, err := config.HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, "history.json", filepath.Base(histPath))
}

func TestPathsDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	cfgPath, err := config.ConfigPath()
	require.NoError(t, err)
	assert.Contains(t, cfgPath, ".config")
	assert.Contains(t, cfgPath, "casekit")

	dataDir, err := config.DataDir()
	require.NoError(t, err)
	assert.Contains(t, dataDir, filepath.Join(".local", "share", "casekit"))
}

func TestWithConfig_FromContext(t *testing.T) {
	cfg := &config.Config{SampleText: "ctx"}
	ctx := config.WithConfig(context.Background(), cfg)

	got := config.FromContext(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "ctx", got.SampleText)
}

func TestFromContext_Nil(t *testing.T) {
	assert.Nil(t, config.FromContext(context.Background()))
}

func TestWriteFileAtomicReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")

	require.NoError(t, config.WriteFileAtomic(path, []byte("old")))
	require.NoError(t, config.WriteFileAtomic(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDefault(t *testing.T) {
	for _, key := range config.KnownKeys() {
		def, ok := config.Default(key)
		assert.True(t, ok, key)
		assert.NotEmpty(t, def, key)
	}

	def, _ := config.Default("zalgo_intensity")
	assert.Equal(t, "10", def)

	_, ok := config.Default("nope")
	assert.False(t, ok)
}
