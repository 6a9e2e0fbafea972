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
	defaultMaxRequestBodySize = "12MB"
	defaultMaxUploadBytes     = 10 << 20
	defaultAccessTokenTTL     = 30 * time.Minute
	defaultReviewStatsPages   = 5
	defaultSQLitePath         = "nativoseo.db"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		UploadsDir         string   `json:"uploadsDir" yaml:"uploadsDir"` // served under /uploads when set
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	BusinessProfile *BusinessProfileConfig `json:"businessProfile" yaml:"businessProfile"`

	Posts *PostsConfig `json:"posts" yaml:"posts"`

	// Storage configures where uploaded post images are kept
	Storage *StorageConfig `json:"storage" yaml:"storage"`
}

// DatabaseConfig selects the gorm dialector.
type DatabaseConfig struct {
	// Driver is "sqlite" (default) or "postgres"
	Driver string `json:"driver" yaml:"driver"`

	// SQLitePath is the sqlite DSN, used only by the sqlite driver
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`

	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold logs queries slower than this at warn level
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

// GoogleOAuthConfig holds the web client used for the Business Profile consent flow.
type GoogleOAuthConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string   `json:"redirectUri" yaml:"redirectUri"`
	TestRedirect string   `json:"testRedirectUri" yaml:"testRedirectUri"`
	Scopes       []string `json:"scopes" yaml:"scopes"`

	// FrontendConnectURL receives the tokens after /auth/callback-test
	FrontendConnectURL string `json:"frontendConnectUrl" yaml:"frontendConnectUrl"`
}

// BusinessProfileConfig overrides upstream endpoints, mostly for tests.
type BusinessProfileConfig struct {
	V4BaseURL                   string        `json:"v4BaseUrl" yaml:"v4BaseUrl"`
	AccountManagementEndpoint   string        `json:"accountManagementEndpoint" yaml:"accountManagementEndpoint"`
	BusinessInformationEndpoint string        `json:"businessInformationEndpoint" yaml:"businessInformationEndpoint"`
	RequestTimeout              time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	ReviewStatsMaxPages         int           `json:"reviewStatsMaxPages" yaml:"reviewStatsMaxPages"`
}

// PostsConfig holds defaults applied to simple post creation.
type PostsConfig struct {
	LanguageCode     string `json:"languageCode" yaml:"languageCode"`
	DefaultCTAType   string `json:"defaultCtaType" yaml:"defaultCtaType"`
	DefaultCTAURL    string `json:"defaultCtaUrl" yaml:"defaultCtaUrl"`
	DefaultTopicType string `json:"defaultTopicType" yaml:"defaultTopicType"`
}

// StorageConfig defines the gocloud.dev bucket used for image uploads
type StorageConfig struct {
	// BucketURL is a gocloud.dev URL, e.g. file:///var/lib/nativoseo/images or s3://temp-images?endpoint=...
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL is used when the bucket driver cannot sign URLs
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	SignedURLExpiry time.Duration `json:"signedUrlExpiry" yaml:"signedUrlExpiry"`
	MaxUploadBytes  int64         `json:"maxUploadBytes" yaml:"maxUploadBytes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads <currEnv>.yaml through koanf and overlays environment variables.
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

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// GOOGLEOAUTH_CLIENTSECRET -> googleOAuth.clientSecret
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
				mapstructure.StringToSliceHookFunc(","),
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

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverSQLite
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = defaultSQLitePath
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &GoogleOAuthConfig{}
	}
	if len(cfg.GoogleOAuth.Scopes) == 0 {
		cfg.GoogleOAuth.Scopes = []string{"https://www.googleapis.com/auth/business.manage"}
	}

	if cfg.BusinessProfile == nil {
		cfg.BusinessProfile = &BusinessProfileConfig{}
	}
	if cfg.BusinessProfile.ReviewStatsMaxPages <= 0 {
		cfg.BusinessProfile.ReviewStatsMaxPages = defaultReviewStatsPages
	}

	if cfg.Posts == nil {
		cfg.Posts = &PostsConfig{}
	}
	if cfg.Posts.LanguageCode == "" {
		cfg.Posts.LanguageCode = "es"
	}
	if cfg.Posts.DefaultTopicType == "" {
		cfg.Posts.DefaultTopicType = "STANDARD"
	}
	if cfg.Posts.DefaultCTAType == "" {
		cfg.Posts.DefaultCTAType = "LEARN_MORE"
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = "file://./uploads?create_dir=true"
	}
	if cfg.Storage.SignedURLExpiry <= 0 {
		cfg.Storage.SignedURLExpiry = 24 * time.Hour
	}
	if cfg.Storage.MaxUploadBytes <= 0 {
		cfg.Storage.MaxUploadBytes = defaultMaxUploadBytes
	}
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
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
