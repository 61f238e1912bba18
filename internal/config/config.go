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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	IntegraContador IntegraContador `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
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

// IntegraContador reúne as credenciais e endpoints da API Integra Contador
// do SERPRO. O certificado é um bundle PKCS#12 (e-CNPJ) exigido pelo mTLS.
type IntegraContador struct {
	AuthURL        string `mapstructure:"integra_contador_auth_url"`
	EmitirURL      string `mapstructure:"integra_contador_emitir_url"`
	ConsumerKey    string `mapstructure:"integra_contador_consumer_key"`
	ConsumerSecret string `mapstructure:"integra_contador_consumer_secret"`
	CertPath       string `mapstructure:"cert_path"`
	CertPassphrase string `mapstructure:"cert_pass"`
	CNPJ           string `mapstructure:"cnpj_integra_contador"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/bookkeeper")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key") // ONLY LOCAL

	viper.SetDefault("INTEGRA_CONTADOR_AUTH_URL", "https://autenticacao.sapi.serpro.gov.br/authenticate")
	viper.SetDefault("INTEGRA_CONTADOR_EMITIR_URL", "https://gateway.apiserpro.serpro.gov.br/integra-contador/v1/Emitir")
	viper.SetDefault("INTEGRA_CONTADOR_CONSUMER_KEY", "")
	viper.SetDefault("INTEGRA_CONTADOR_CONSUMER_SECRET", "")
	viper.SetDefault("CERT_PATH", "")
	viper.SetDefault("CERT_PASS", "")
	viper.SetDefault("CNPJ_INTEGRA_CONTADOR", "")

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

// loadEnvFile tenta carregar o arquivo .env nas localizações usuais
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado; usando variáveis de ambiente")
}
