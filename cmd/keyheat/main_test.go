package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/keyheat/internal/config"
	"github.com/verte-zerg/keyheat/internal/keystats"
	"github.com/verte-zerg/keyheat/internal/model"
	"github.com/verte-zerg/keyheat/internal/store"
)

func TestValidateConfig(t *testing.T) {
	valid := model.Config{
		Mode:      model.ModeWords,
		Words:     10,
		Level:     "beginner",
		ReleaseMs: 150,
		Theme:     "dark",
	}
	require.NoError(t, validateConfig(valid))

	cases := map[string]func(*model.Config){
		"mode":       func(c *model.Config) { c.Mode = "marathon" },
		"words":      func(c *model.Config) { c.Words = 0 },
		"level":      func(c *model.Config) { c.Level = "expert" },
		"release-ms": func(c *model.Config) { c.ReleaseMs = -1 },
		"theme":      func(c *model.Config) { c.Theme = "neon" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			mutate(&cfg)
			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "--"+name)
		})
	}
}

func TestResolvePracticeConfigFlagsOverrideFile(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--words", "40", "--mode", "Sentence"}))

	fileWords := 5
	fileLevel := "advanced"
	fileKeyboard := false
	fileCfg := config.FileConfig{
		Practice: config.PracticeConfig{Words: &fileWords, Level: &fileLevel},
		UI:       config.UIConfig{Keyboard: &fileKeyboard},
	}
	cfg := resolvePracticeConfig(cmd, fileCfg)

	assert.Equal(t, model.ModeSentence, cfg.Mode)
	assert.Equal(t, 40, cfg.Words)
	assert.Equal(t, "advanced", cfg.Level)
	assert.False(t, cfg.ShowKeyboard)
	assert.Equal(t, defaultReleaseMs, cfg.ReleaseMs)
	assert.Equal(t, defaultTheme, cfg.Theme)
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keyheat", "config.toml")
	require.NoError(t, ensureConfigFile(path))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Practice.Words)
	assert.Nil(t, cfg.UI.Theme)
}

func TestNormalizeCommand(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"normalize", "--key", "a"}, "A\n"},
		{[]string{"normalize", "--key", "ArrowLeft"}, "←\n"},
		{[]string{"normalize", "--key", "7", "--code", "Numpad7"}, "Numpad7\n"},
		{[]string{"normalize", "--key", "Dead", "--code", "Backquote"}, "`\n"},
		{[]string{"normalize", "--key", "Unidentified"}, "Unidentified\t(not on keyboard)\n"},
	}
	for _, tc := range cases {
		normalizeKey, normalizeCode = "", ""
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(tc.args)
		require.NoError(t, cmd.Execute(), "args %v", tc.args)
		assert.Equal(t, tc.want, out.String(), "args %v", tc.args)
	}
}

func TestWriteReportFormats(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "keyheat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	ctx := context.Background()
	require.NoError(t, st.Set(ctx, "Q", model.KeyStats{Hits: 10, Errors: 3}))
	require.NoError(t, st.Bump(ctx, "W", keystats.Outcome{Hit: true}))

	var jsonOut bytes.Buffer
	require.NoError(t, writeReport(ctx, &jsonOut, st, "JSON", false))
	var decoded struct {
		WeakKeys []string `json:"weak_keys"`
	}
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &decoded))
	assert.Equal(t, []string{"Q"}, decoded.WeakKeys)

	var yamlOut bytes.Buffer
	require.NoError(t, writeReport(ctx, &yamlOut, st, "yaml", false))
	assert.Contains(t, yamlOut.String(), "weak_keys:")

	var textOut bytes.Buffer
	require.NoError(t, writeReport(ctx, &textOut, st, "text", false))
	assert.Contains(t, textOut.String(), "No attempts recorded.")

	err = writeReport(ctx, &bytes.Buffer{}, st, "csv", false)
	require.Error(t, err)
}

func TestConfirm(t *testing.T) {
	var prompt bytes.Buffer
	ok, err := confirm(strings.NewReader("y\n"), &prompt, "sure? ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sure? ", prompt.String())

	ok, err = confirm(strings.NewReader(""), &bytes.Buffer{}, "sure? ")
	require.NoError(t, err)
	assert.False(t, ok)
}
