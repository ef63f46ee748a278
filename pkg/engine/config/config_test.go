package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 7, cfg.CellSize)
	assert.Equal(t, RendererTUI, cfg.Renderer)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		EnvRenderer:  "ebiten",
		EnvCellSize:  "4",
		EnvStepLimit: "100000",
		"LANG":       "ja_JP.UTF-8",
	}))
	require.NoError(t, err)
	assert.Equal(t, RendererEbiten, cfg.Renderer)
	assert.Equal(t, 4, cfg.CellSize)
	assert.Equal(t, 100000, cfg.StepLimit)
	assert.Equal(t, "ja_JP.UTF-8", cfg.Language)
}

func TestFromEnv_ExplicitLanguageWins(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		EnvLanguage: "en",
		"LANG":      "ja_JP.UTF-8",
	}))
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
}

func TestFromEnv_Errors(t *testing.T) {
	_, err := FromEnv(lookupFrom(map[string]string{EnvCellSize: "big"}))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = FromEnv(lookupFrom(map[string]string{EnvRenderer: "sdl"}))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = FromEnv(lookupFrom(map[string]string{EnvStepLimit: "-1"}))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBind_FlagsOverride(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{"-renderer", "ebiten", "-cell-size", "3", "-dump"}))
	assert.Equal(t, RendererEbiten, cfg.Renderer)
	assert.Equal(t, 3, cfg.CellSize)
	assert.True(t, cfg.Dump)
	assert.NoError(t, cfg.Validate())
}
