package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	SerpAPI        SerpAPI        `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	RankUpdateSync RankUpdateSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type SerpAPI struct {
	BaseURL      string `mapstructure:"serpapi_base_url"`
	APIKey       string `mapstructure:"serpapi_api_key"`
	GoogleDomain string `mapstructure:"serpapi_google_domain"`
	Language     string `mapstructure:"serpapi_language"`
	TimeoutSecs  int    `mapstructure:"serpapi_timeout_seconds"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type RankUpdateSync struct {
	CronSchedule        string `mapstructure:"rank_update_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"rank_update_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"rank_update_sync_enabled"`
}

// ErrMissingSerpAPIKey impede qualquer consulta ao provedor de busca
var ErrMissingSerpAPIKey = errors.New("SERPAPI_API_KEY não configurada")

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ranktracker")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SERPAPI_BASE_URL", "https://serpapi.com/search")
	viper.SetDefault("SERPAPI_GOOGLE_DOMAIN", "google.com")
	viper.SetDefault("SERPAPI_LANGUAGE", "en")
	viper.SetDefault("SERPAPI_TIMEOUT_SECONDS", 30)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults da sincronização diária de posições
	viper.SetDefault("RANK_UPDATE_SYNC_CRON", "0 5 * * *")        // Todos os dias às 5h da manhã
	viper.SetDefault("RANK_UPDATE_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre identidades
	viper.SetDefault("RANK_UPDATE_SYNC_ENABLED", false)           // Habilitar atualização diária

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate falha cedo quando a configuração não permite processar consultas
func (c *Config) Validate() error {
	if c.SerpAPI.APIKey == "" {
		return ErrMissingSerpAPIKey
	}
	return nil
}

// loadEnvFile carrega o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

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
