package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.flagSet = newTestFlagSet()
	b.args = args
	return b
}

func TestConfigBuilder_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_API_KEY":    "env-secret",
		"SERVER_ADDRESS": "127.0.0.1:8000",
	})

	cfg, err := newTestBuilder("-api-key", "flag-secret").withEnv().withFlags().withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "flag-secret", cfg.App.APIKey)
	// not overridden by an unset flag
	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	// env default survives the merge
	assert.Equal(t, "system_answer_bot", cfg.App.AnswerAuthor)
}

func TestConfigBuilder_JSONOverridesFlagsAndEnv(t *testing.T) {
	p := writeJSONConfig(t, `{
		"app": {"api_key": "json-secret"},
		"server": {"request_timeout": "45s"}
	}`)
	setEnvVars(t, map[string]string{
		"APP_API_KEY": "env-secret",
		"CONFIG":      p,
	})

	cfg, err := newTestBuilder("-api-key", "flag-secret").withEnv().withFlags().withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "json-secret", cfg.App.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestConfigBuilder_JSONPathFromFlag(t *testing.T) {
	clearEnvVars(t)
	p := writeJSONConfig(t, `{"app": {"version": "3.0.0"}}`)

	cfg, err := newTestBuilder("-c", p).withEnv().withFlags().withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "3.0.0", cfg.App.Version)
}

func TestConfigBuilder_ErrorsAreCollected(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "broken",
	})

	cfg, err := newTestBuilder("-a", "broken").withEnv().withFlags().withJSON().build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestConfigBuilder_MissingJSONFile(t *testing.T) {
	clearEnvVars(t)

	_, err := newTestBuilder("-c", "/definitely/not/here.json").withEnv().withFlags().withJSON().build()

	require.Error(t, err)
}
