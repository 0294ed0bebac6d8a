package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Meta     Meta     `mapstructure:",squash"`
	Sync     Sync     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string `mapstructure:"-"`
	Driver          string `mapstructure:"database_driver"`
	URL             string `mapstructure:"database_url"`
	User            string `mapstructure:"database_user"`
	Password        string `mapstructure:"database_password"`
	ServiceUser     string `mapstructure:"database_service_user"`
	ServicePassword string `mapstructure:"database_service_password"`
}

type Meta struct {
	BaseURL                  string `mapstructure:"meta_base_url"`
	URL                      string `mapstructure:"-"`
	Version                  string `mapstructure:"meta_version"`
	EntityBatchSize          int    `mapstructure:"meta_entity_batch_size"`
	InsightPageLimit         int    `mapstructure:"meta_insight_page_limit"`
	RateLimitCooldownSeconds int    `mapstructure:"meta_rate_limit_cooldown_seconds"`
}

type Sync struct {
	DefaultCurrency   string `mapstructure:"sync_default_currency"`
	DefaultDatePreset string `mapstructure:"sync_default_date_preset"`
	UpsertBatchSize   int    `mapstructure:"sync_upsert_batch_size"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8080)

	viper.SetDefault("DATABASE_DRIVER", "postgres")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ENTITY_BATCH_SIZE", 50)         // Limite seguro da Graph API para busca em lote
	viper.SetDefault("META_INSIGHT_PAGE_LIMIT", 100)       // Reduzido para evitar limites da API
	viper.SetDefault("META_RATE_LIMIT_COOLDOWN_SECONDS", 60)

	viper.SetDefault("SYNC_DEFAULT_CURRENCY", "USD")
	viper.SetDefault("SYNC_DEFAULT_DATE_PRESET", "last_3d")
	viper.SetDefault("SYNC_UPSERT_BATCH_SIZE", 100)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	// A credencial privilegiada (service) tem preferência sobre a restrita.
	// Sem URL ou sem credenciais o processo não sobe.
	user, password := config.Database.User, config.Database.Password
	if config.Database.ServiceUser != "" && config.Database.ServicePassword != "" {
		user, password = config.Database.ServiceUser, config.Database.ServicePassword
	}

	if config.Database.URL == "" {
		return nil, fmt.Errorf("configuração ausente: DATABASE_URL é obrigatória")
	}
	if user == "" || password == "" {
		return nil, fmt.Errorf("configuração ausente: defina DATABASE_SERVICE_USER/DATABASE_SERVICE_PASSWORD (recomendado) ou DATABASE_USER/DATABASE_PASSWORD")
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		user,
		password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
