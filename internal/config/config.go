package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Credential Credential `mapstructure:",squash"`
	Extraction Extraction `mapstructure:",squash"`
	Retry      Retry      `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Render     Render     `mapstructure:",squash"`
	Schedule   Schedule   `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Meta struct {
	BaseURL            string `mapstructure:"meta_base_url"`
	TokenVersion       string `mapstructure:"meta_token_version"`
	AdsVersion         string `mapstructure:"meta_ads_version"`
	PageLimit          int    `mapstructure:"meta_page_limit"`
	HTTPTimeoutSeconds int    `mapstructure:"meta_http_timeout_seconds"`
}

type Credential struct {
	Store        string `mapstructure:"credential_store"`
	TokenPath    string `mapstructure:"token_path"`
	MaxAgeDays   int    `mapstructure:"token_max_age_days"`
	ForceRefresh bool   `mapstructure:"force_refresh"`
}

type Extraction struct {
	AccountIDsRaw string `mapstructure:"account_ids"`
	Fields        string `mapstructure:"fields"`
	FilteringRaw  string `mapstructure:"filtering"`
	DaysBack      string `mapstructure:"days_back"`
	OutputFile    string `mapstructure:"output_file"`
	OutputDir     string `mapstructure:"output_dir"`

	// Derivados em Validate
	AccountIDs []string `mapstructure:"-"`
	Filtering  string   `mapstructure:"-"`
	OutputPath string   `mapstructure:"-"`
}

type Retry struct {
	TokenRefreshMaxAttempts       int `mapstructure:"token_refresh_max_attempts"`
	TokenRefreshRetryDelaySeconds int `mapstructure:"token_refresh_retry_delay_seconds"`
	FetchMaxAttempts              int `mapstructure:"fetch_max_attempts"`
	FetchRetryDelaySeconds        int `mapstructure:"fetch_retry_delay_seconds"`
	AccountPacingSeconds          int `mapstructure:"account_pacing_seconds"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Render struct {
	APIKey     string `mapstructure:"render_api_key"`
	ServiceID  string `mapstructure:"render_service_id"`
	SecretName string `mapstructure:"render_secret_name"`
}

// Enabled indica se o espelhamento do token no Render está configurado
func (r Render) Enabled() bool {
	return r.APIKey != "" && r.ServiceID != ""
}

type Schedule struct {
	Cron string `mapstructure:"extract_cron"`
}

// Server é o servidor de status, ativo apenas no modo agendado e com PORT definido
type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

func (s Server) Enabled() bool {
	return s.Port != ""
}

type Auth struct {
	JWTSecret string `mapstructure:"api_jwt_secret"`
}

const (
	CredentialStoreCSV      = "csv"
	CredentialStorePostgres = "postgres"
)

func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	v.SetDefault("META_TOKEN_VERSION", "v17.0")
	v.SetDefault("META_ADS_VERSION", "v12.0")
	v.SetDefault("META_PAGE_LIMIT", 100)
	v.SetDefault("META_HTTP_TIMEOUT_SECONDS", 60)

	v.SetDefault("CREDENTIAL_STORE", CredentialStoreCSV)
	v.SetDefault("TOKEN_PATH", "/data/out/tables/token_meta_ads.csv")
	v.SetDefault("TOKEN_MAX_AGE_DAYS", 40) // Renovar com 40 dias, antes dos 60 de validade
	v.SetDefault("FORCE_REFRESH", false)

	v.SetDefault("ACCOUNT_IDS", "")
	v.SetDefault("FIELDS", "")
	v.SetDefault("FILTERING", "")
	v.SetDefault("DAYS_BACK", "")
	v.SetDefault("OUTPUT_FILE", "")
	v.SetDefault("OUTPUT_DIR", "/data/out/tables/")

	v.SetDefault("TOKEN_REFRESH_MAX_ATTEMPTS", 3)
	v.SetDefault("TOKEN_REFRESH_RETRY_DELAY_SECONDS", 10)
	v.SetDefault("FETCH_MAX_ATTEMPTS", 5)
	v.SetDefault("FETCH_RETRY_DELAY_SECONDS", 30)
	v.SetDefault("ACCOUNT_PACING_SECONDS", 5)

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/meta_ads")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")

	v.SetDefault("RENDER_API_KEY", "")
	v.SetDefault("RENDER_SERVICE_ID", "")
	v.SetDefault("RENDER_SECRET_NAME", "meta_access_token")

	v.SetDefault("EXTRACT_CRON", "") // Vazio: uma execução e sai

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "")
	v.SetDefault("API_JWT_SECRET", "")
}

// NewConfig carrega .env (se existir) e variáveis de ambiente.
// A configuração retornada ainda precisa passar por Validate.
func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = buildDSN(config.Database)

	return config, nil
}

// Validate valida as entradas e preenche os campos derivados.
// Todos os erros são do tipo domain.ErrConfiguration.
func (c *Config) Validate(now time.Time) error {
	accounts, err := ParseAccountIDs(c.Extraction.AccountIDsRaw)
	if err != nil {
		return err
	}
	c.Extraction.AccountIDs = accounts

	c.Extraction.Fields = strings.TrimSpace(c.Extraction.Fields)
	if err := requireVariable("FIELDS", c.Extraction.Fields); err != nil {
		return err
	}

	filtering, err := BuildFiltering(c.Extraction.FilteringRaw, c.Extraction.DaysBack, now)
	if err != nil {
		return err
	}
	c.Extraction.Filtering = filtering

	outputPath, err := OutputPath(c.Extraction.OutputDir, c.Extraction.OutputFile)
	if err != nil {
		return err
	}
	c.Extraction.OutputPath = outputPath

	switch c.Credential.Store {
	case CredentialStoreCSV, CredentialStorePostgres:
	default:
		return invalidVariable("CREDENTIAL_STORE", "valores aceitos: csv, postgres")
	}

	if c.Credential.MaxAgeDays <= 0 {
		return invalidVariable("TOKEN_MAX_AGE_DAYS", "deve ser maior que zero")
	}
	if c.Retry.TokenRefreshMaxAttempts <= 0 {
		return invalidVariable("TOKEN_REFRESH_MAX_ATTEMPTS", "deve ser maior que zero")
	}
	if c.Retry.FetchMaxAttempts <= 0 {
		return invalidVariable("FETCH_MAX_ATTEMPTS", "deve ser maior que zero")
	}

	return nil
}

func buildDSN(db Database) string {
	return db.Driver + "://" + db.User + ":" + db.Password + "@" + db.URL
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
