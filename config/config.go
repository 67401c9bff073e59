package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	HTTP        HTTP
	Auth        Auth
	API         API
	GLM         GLM
	Storage     Storage
	Postgres    Postgres
	Redis       Redis
	Cache       Cache
	Jobs        Jobs
	Kafka       Kafka
	GoogleDrive GoogleDrive
	Telegram    Telegram
}

type HTTP struct {
	Addr           string        `env:"HTTP_ADDR" envDefault:":3000"`
	ReadTimeout    time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout   time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"90s"`
	StaticDir      string        `env:"HTTP_STATIC_DIR" envDefault:""`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Auth with an empty username or password disables basic auth.
type Auth struct {
	Username string `env:"AUTH_USERNAME" envDefault:""`
	Password string `env:"AUTH_PASSWORD" envDefault:""`
}

func (a Auth) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

type API struct {
	Debug    bool          `env:"API_DEBUG" envDefault:"false"`
	Timeout  time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	QuoteApi QuoteApi
	ChartApi ChartApi
}

type QuoteApi struct {
	TencentUrl string `env:"QUOTE_TENCENT_URL" envDefault:"http://qt.gtimg.cn"`
	SinaUrl    string `env:"QUOTE_SINA_URL" envDefault:"http://hq.sinajs.cn"`
}

type ChartApi struct {
	MinuteUrl string `env:"CHART_MINUTE_URL" envDefault:"https://web.ifzq.gtimg.cn/appstock/app/minute/query"`
	DailyUrl  string `env:"CHART_DAILY_URL" envDefault:"https://money.finance.sina.com.cn/quotes_service/api/json_v2.php/CN_MarketData.getKLineData"`
}

type GLM struct {
	ApiKey  string        `env:"GLM_API_KEY" envDefault:""`
	Url     string        `env:"GLM_URL" envDefault:"https://open.bigmodel.cn/api/paas/v4/chat/completions"`
	Model   string        `env:"GLM_MODEL" envDefault:"glm-4.5"`
	Timeout time.Duration `env:"GLM_TIMEOUT" envDefault:"60s"`
}

type Storage struct {
	Driver   string `env:"STORAGE_DRIVER" envDefault:"file"`
	FilePath string `env:"STORAGE_FILE_PATH" envDefault:"data/concepts.json"`
}

type Postgres struct {
	Host            string `env:"PG_HOST" envDefault:"localhost"`
	Port            int    `env:"PG_PORT" envDefault:"5432"`
	DbName          string `env:"PG_DB_NAME" envDefault:"concept"`
	Password        string `env:"PG_PASSWORD" envDefault:""`
	User            string `env:"PG_USER" envDefault:"postgres"`
	MaxOpenConns    int    `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	ConnMaxLifetime int    `env:"PG_CONN_MAX_LIFETIME" envDefault:"300"`
	MaxIdleConns    int    `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxIdleTime int    `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"60"`
	MigrationDir    string `env:"PG_MIGRATION_DIR" envDefault:"migrations"`
}

type Redis struct {
	Enabled  bool   `env:"REDIS_ENABLED" envDefault:"false"`
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Cache struct {
	QuotesExpiration time.Duration `env:"CACHE_QUOTES_EXPIRATION" envDefault:"30s"`
	ChartsExpiration time.Duration `env:"CACHE_CHARTS_EXPIRATION" envDefault:"5m"`
}

type Jobs struct {
	FillQuoteCacheInterval time.Duration `env:"QUOTE_CACHE_JOB_INTERVAL" envDefault:"1m"`
	ExportCrontab          string        `env:"EXPORT_JOB_CRONTAB" envDefault:"0 0 16 * * 1-5"`
}

type Kafka struct {
	Brokers      []string `env:"KAFKA_BROKERS" envDefault:"" envSeparator:","`
	ConceptTopic string   `env:"KAFKA_CONCEPT_TOPIC" envDefault:"concept-events"`
}

type GoogleDrive struct {
	CredentialsFile string        `env:"GOOGLE_DRIVE_CREDENTIALS_FILE" envDefault:""`
	FileTTL         time.Duration `env:"GOOGLE_DRIVE_FILE_TTL" envDefault:"168h"`
}

type Telegram struct {
	Token      string        `env:"TELEGRAM_TOKEN" envDefault:""`
	UpdTimeout time.Duration `env:"TELEGRAM_UPD_TIMEOUT" envDefault:"10s"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
