package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"shortener": map[string]any{
			"apiKey": "",
		},
		"telegram": map[string]any{
			"botToken":      "",
			"webhookSecret": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SHORTENER_APIKEY", want: "shortener.apiKey"},
		{envKey: "TELEGRAM_BOTTOKEN", want: "telegram.botToken"},
		{envKey: "TELEGRAM_WEBHOOKSECRET", want: "telegram.webhookSecret"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.BaseURL = "https://arthurflix.example/"

	cfg.applyDefaults()

	assert.Equal(t, "https://arthurflix.example", cfg.HTTP.BaseURL)
	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.Token.DownloadTTL)
	assert.Equal(t, 24*time.Hour, cfg.Token.DirectTTL)
	assert.Equal(t, 12, cfg.Token.DirectLength)
	assert.Equal(t, defaultLoginAttempts, cfg.RateLimit.LoginAttempts)
	assert.False(t, cfg.Sweeper.Enabled)
	assert.Equal(t, time.Hour, cfg.Sweeper.Interval)
	require.NotNil(t, cfg.Telegram)
	require.NotNil(t, cfg.Site)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Token:   &TokenConfig{DownloadTTL: time.Minute, DirectTTL: time.Hour, DirectLength: 16},
		Sweeper: &SweeperConfig{Enabled: true, Interval: 5 * time.Minute},
	}

	cfg.applyDefaults()

	assert.Equal(t, time.Minute, cfg.Token.DownloadTTL)
	assert.Equal(t, time.Hour, cfg.Token.DirectTTL)
	assert.Equal(t, 16, cfg.Token.DirectLength)
	assert.Equal(t, 5*time.Minute, cfg.Sweeper.Interval)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.ErrorContains(t, cfg.validate(), "postgres")

	cfg.Postgres = &postgres.DBConn{}
	assert.ErrorContains(t, cfg.validate(), "secretKey.session")

	cfg.SecretKey.Session = "s3cret"
	assert.NoError(t, cfg.validate())
}

func TestValidate_TokenLengthsFitColumns(t *testing.T) {
	tests := []struct {
		name       string
		direct     int
		key        int
		wantErrMsg string
	}{
		{name: "defaults", direct: 12, key: 32},
		{name: "widest allowed", direct: 12, key: 64},
		{name: "direct token too long", direct: 13, key: 32, wantErrMsg: "token.directLength"},
		{name: "membership key too long", direct: 12, key: 65, wantErrMsg: "membership.keyLength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Postgres: &postgres.DBConn{}}
			cfg.SecretKey.Session = "s3cret"
			cfg.Token = &TokenConfig{DirectLength: tt.direct}
			cfg.Membership = &MembershipConfig{KeyLength: tt.key}

			err := cfg.validate()
			if tt.wantErrMsg == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErrMsg)
		})
	}
}
