package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultPort               = 8000

	defaultSessionCookieName = "arthurflix_session"
	defaultSessionTTL        = 14 * 24 * time.Hour

	defaultMembershipTermDays = 365
	defaultMembershipKeyLen   = 32
	maxMembershipKeyLength    = 64 // membership_keys.key is varchar(64)

	defaultDownloadTokenTTL  = 30 * time.Minute
	defaultDirectTokenTTL    = 24 * time.Hour
	defaultDirectTokenLength = 12
	maxDirectTokenLength     = 12 // direct_download_tokens.token is varchar(12)

	defaultPageSize     = 12
	defaultRecentVisits = 3

	defaultShortenerEndpoint = "https://shrinkearn.com/api"
	defaultShortenerTimeout  = 10 * time.Second

	defaultTelegramTimeout = 15 * time.Second

	defaultLoginAttempts   = 20
	defaultRateLimitWindow = 15 * time.Minute

	defaultSweepInterval = time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// BaseURL is used to build absolute links handed to third parties. When empty the
		// request scheme and host are used.
		BaseURL  string `json:"baseUrl" yaml:"baseUrl"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Membership *MembershipConfig `json:"membership" yaml:"membership"`

	Token *TokenConfig `json:"token" yaml:"token"`

	Catalogue *CatalogueConfig `json:"catalogue" yaml:"catalogue"`

	// Shortener configuration for the monetized link hop
	Shortener *ShortenerConfig `json:"shortener" yaml:"shortener"`

	// Telegram configuration for the delivery bot
	Telegram *TelegramConfig `json:"telegram" yaml:"telegram"`

	// QRCode configuration for deep link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis configuration, optional. Rate limiting is disabled without it.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Sweeper *SweeperConfig `json:"sweeper" yaml:"sweeper"`

	Site *SiteConfig `json:"site" yaml:"site"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SessionConfig defines the login session cookie
type SessionConfig struct {
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
	Secure     bool          `json:"secure" yaml:"secure"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// MembershipConfig defines membership key rules
type MembershipConfig struct {
	TermDays  int `json:"termDays" yaml:"termDays"`
	KeyLength int `json:"keyLength" yaml:"keyLength"`
}

// TokenConfig defines download token lifetimes
type TokenConfig struct {
	DownloadTTL  time.Duration `json:"downloadTtl" yaml:"downloadTtl"`
	DirectTTL    time.Duration `json:"directTtl" yaml:"directTtl"`
	DirectLength int           `json:"directLength" yaml:"directLength"`
}

type CatalogueConfig struct {
	PageSize     int `json:"pageSize" yaml:"pageSize"`
	RecentVisits int `json:"recentVisits" yaml:"recentVisits"`
}

// ShortenerConfig defines the link shortener API. An empty APIKey disables shortening.
type ShortenerConfig struct {
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// TelegramConfig defines the Telegram bot used to hand out files
type TelegramConfig struct {
	BotToken      string        `json:"botToken" yaml:"botToken"`
	BotUsername   string        `json:"botUsername" yaml:"botUsername"`
	WebhookSecret string        `json:"webhookSecret" yaml:"webhookSecret"`
	APIEndpoint   string        `json:"apiEndpoint" yaml:"apiEndpoint"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// RateLimitConfig bounds login and registration attempts per client IP
type RateLimitConfig struct {
	LoginAttempts int           `json:"loginAttempts" yaml:"loginAttempts"`
	Window        time.Duration `json:"window" yaml:"window"`
}

// SweeperConfig controls the in-process expired token sweep
type SweeperConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// SiteConfig maps host names to site branding
type SiteConfig struct {
	DefaultSite string                `json:"defaultSite" yaml:"defaultSite"`
	Domains     map[string]SiteDomain `json:"domains" yaml:"domains"`
}

type SiteDomain struct {
	Name         string `json:"name" yaml:"name"`
	Domain       string `json:"domain" yaml:"domain"`
	Logo         string `json:"logo" yaml:"logo"`
	PrimaryColor string `json:"primaryColor" yaml:"primaryColor"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env overrides are aligned with the YAML key spelling, e.g. SHORTENER_APIKEY -> shortener.apiKey
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills every optional section so callers never nil-check them.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	cfg.HTTP.BaseURL = strings.TrimRight(cfg.HTTP.BaseURL, "/")

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	if cfg.Membership == nil {
		cfg.Membership = &MembershipConfig{}
	}
	if cfg.Membership.TermDays <= 0 {
		cfg.Membership.TermDays = defaultMembershipTermDays
	}
	if cfg.Membership.KeyLength <= 0 {
		cfg.Membership.KeyLength = defaultMembershipKeyLen
	}

	if cfg.Token == nil {
		cfg.Token = &TokenConfig{}
	}
	if cfg.Token.DownloadTTL <= 0 {
		cfg.Token.DownloadTTL = defaultDownloadTokenTTL
	}
	if cfg.Token.DirectTTL <= 0 {
		cfg.Token.DirectTTL = defaultDirectTokenTTL
	}
	if cfg.Token.DirectLength <= 0 {
		cfg.Token.DirectLength = defaultDirectTokenLength
	}

	if cfg.Catalogue == nil {
		cfg.Catalogue = &CatalogueConfig{}
	}
	if cfg.Catalogue.PageSize <= 0 {
		cfg.Catalogue.PageSize = defaultPageSize
	}
	if cfg.Catalogue.RecentVisits <= 0 {
		cfg.Catalogue.RecentVisits = defaultRecentVisits
	}

	if cfg.Shortener == nil {
		cfg.Shortener = &ShortenerConfig{}
	}
	if cfg.Shortener.Endpoint == "" {
		cfg.Shortener.Endpoint = defaultShortenerEndpoint
	}
	if cfg.Shortener.Timeout <= 0 {
		cfg.Shortener.Timeout = defaultShortenerTimeout
	}

	if cfg.Telegram == nil {
		cfg.Telegram = &TelegramConfig{}
	}
	if cfg.Telegram.Timeout <= 0 {
		cfg.Telegram.Timeout = defaultTelegramTimeout
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.LoginAttempts <= 0 {
		cfg.RateLimit.LoginAttempts = defaultLoginAttempts
	}
	if cfg.RateLimit.Window <= 0 {
		cfg.RateLimit.Window = defaultRateLimitWindow
	}

	if cfg.Sweeper == nil {
		cfg.Sweeper = &SweeperConfig{}
	}
	if cfg.Sweeper.Interval <= 0 {
		cfg.Sweeper.Interval = defaultSweepInterval
	}

	if cfg.Site == nil {
		cfg.Site = &SiteConfig{}
	}
}

func (cfg *Config) validate() error {
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is required")
	}
	if strings.TrimSpace(cfg.SecretKey.Session) == "" {
		return errors.New("secretKey.session is required")
	}
	if cfg.Token != nil && cfg.Token.DirectLength > maxDirectTokenLength {
		return errors.Errorf("token.directLength %d exceeds the %d character column", cfg.Token.DirectLength, maxDirectTokenLength)
	}
	if cfg.Membership != nil && cfg.Membership.KeyLength > maxMembershipKeyLength {
		return errors.Errorf("membership.keyLength %d exceeds the %d character column", cfg.Membership.KeyLength, maxMembershipKeyLength)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
