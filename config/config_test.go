package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: auth
http:
  port: 8080
secretKey:
  token: token-salt
  password: password-salt
redis:
  addr: localhost:6379
auth:
  storeTimeout: 2s
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))

	return dir
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	t.Chdir(writeConfig(t, testConfigYAML))
	t.Setenv("SECRETKEY_TOKEN", "from-env")
	t.Setenv("AUTH_STORETIMEOUT", "5s")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "auth", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.SecretKey.Token)
	assert.Equal(t, "password-salt", cfg.SecretKey.Password)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 5*time.Second, cfg.Auth.StoreTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "redis", cfg.TokenStore.Provider)
	assert.Equal(t, defaultCleanupInterval, cfg.TokenStore.CleanupInterval)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 3*time.Second, cfg.Auth.StoreTimeout)
	assert.Equal(t, 5, cfg.Auth.RegistryMaxAttempts)
	assert.Equal(t, 20, cfg.Pagination.PageSize)
	assert.NotNil(t, cfg.PubSub)
	assert.False(t, cfg.Schema.MigrateOnStart)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Redis: &RedisConfig{Addr: "localhost:6379"}}
		cfg.SecretKey.Token = "t"
		cfg.SecretKey.Password = "p"
		applyDefaults(cfg)

		return cfg
	}

	require.NoError(t, valid().validate())

	cfg := valid()
	cfg.SecretKey.Token = " "
	assert.ErrorContains(t, cfg.validate(), "secretKey.token")

	cfg = valid()
	cfg.SecretKey.Password = ""
	assert.ErrorContains(t, cfg.validate(), "secretKey.password")

	cfg = valid()
	cfg.Redis = nil
	assert.ErrorContains(t, cfg.validate(), "redis.addr")

	cfg = valid()
	cfg.Redis = nil
	cfg.TokenStore.Provider = "postgres"
	assert.NoError(t, cfg.validate())

	cfg = valid()
	cfg.TokenStore.Provider = "memcached"
	assert.ErrorContains(t, cfg.validate(), "memcached")
}
