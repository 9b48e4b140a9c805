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
	App           App           `mapstructure:",squash"`
	WB            WB            `mapstructure:",squash"`
	Optimizer     Optimizer     `mapstructure:",squash"`
	BudgetPlanner BudgetPlanner `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	StatsCache    StatsCache    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Pretty   bool   `mapstructure:"pretty_output"`
}

type WB struct {
	BaseURL           string `mapstructure:"wb_base_url"`
	Token             string `mapstructure:"wb_token"`
	TimeoutSeconds    int    `mapstructure:"wb_timeout_seconds"`
	MaxRetries        int    `mapstructure:"wb_max_retries"`
	RetryDelaySeconds int    `mapstructure:"wb_retry_delay_seconds"`
}

// Optimizer reúne os padrões do motor de recomendação de lances.
// Todas as flags do comando bids-plan caem nestes valores quando omitidas.
type Optimizer struct {
	LookbackDays         int     `mapstructure:"optimizer_lookback_days"`
	MinClicks            int     `mapstructure:"optimizer_min_clicks"`
	KillClicks           int     `mapstructure:"optimizer_kill_clicks"`
	MaxAvgPos            float64 `mapstructure:"optimizer_max_avg_pos"`
	IncreasePct          int     `mapstructure:"optimizer_increase_pct"`
	DecreasePct          int     `mapstructure:"optimizer_decrease_pct"`
	StrongDecreasePct    int     `mapstructure:"optimizer_strong_decrease_pct"`
	MinOrdersForIncrease int     `mapstructure:"optimizer_min_orders_for_increase"`
	BidStepKopecks       int64   `mapstructure:"optimizer_bid_step_kopecks"`
}

// BudgetPlanner reúne os padrões do planejador de orçamento
type BudgetPlanner struct {
	LookbackDays      int     `mapstructure:"budget_lookback_days"`
	TargetRunwayDays  float64 `mapstructure:"budget_target_runway_days"`
	MinSpendPerDayRub float64 `mapstructure:"budget_min_spend_per_day_rub"`
	RoundToKopecks    int64   `mapstructure:"budget_round_to_kopecks"`
	MinTopUpKopecks   int64   `mapstructure:"budget_min_topup_kopecks"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// StatsCache controla o cache local (Postgres) de estatísticas diárias
type StatsCache struct {
	Enabled              bool `mapstructure:"stats_cache_enabled"`
	MaxConcurrentFetches int  `mapstructure:"stats_cache_max_concurrent_fetches"`
	RetentionDays        int  `mapstructure:"stats_cache_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PRETTY_OUTPUT", false)

	viper.SetDefault("WB_BASE_URL", "https://advert-api.wildberries.ru")
	viper.SetDefault("WB_TOKEN", "")
	viper.SetDefault("WB_TIMEOUT_SECONDS", 30)
	viper.SetDefault("WB_MAX_RETRIES", 3)
	viper.SetDefault("WB_RETRY_DELAY_SECONDS", 2)

	// Padrões do motor de recomendação de lances
	viper.SetDefault("OPTIMIZER_LOOKBACK_DAYS", 3)          // Últimos 3 dias fechados
	viper.SetDefault("OPTIMIZER_MIN_CLICKS", 15)            // Cliques mínimos antes de decidir
	viper.SetDefault("OPTIMIZER_KILL_CLICKS", 35)           // Cliques sem pedido para redução forte
	viper.SetDefault("OPTIMIZER_MAX_AVG_POS", 6.0)          // Posição média aceitável
	viper.SetDefault("OPTIMIZER_INCREASE_PCT", 10)          // Percentual de aumento
	viper.SetDefault("OPTIMIZER_DECREASE_PCT", 10)          // Percentual de redução
	viper.SetDefault("OPTIMIZER_STRONG_DECREASE_PCT", 20)   // Percentual de redução forte
	viper.SetDefault("OPTIMIZER_MIN_ORDERS_FOR_INCREASE", 2)
	viper.SetDefault("OPTIMIZER_BID_STEP_KOPECKS", 10)

	// Padrões do planejador de orçamento
	viper.SetDefault("BUDGET_LOOKBACK_DAYS", 7)
	viper.SetDefault("BUDGET_TARGET_RUNWAY_DAYS", 3.0)
	viper.SetDefault("BUDGET_MIN_SPEND_PER_DAY_RUB", 50.0)
	viper.SetDefault("BUDGET_ROUND_TO_KOPECKS", 10000)
	viper.SetDefault("BUDGET_MIN_TOPUP_KOPECKS", 10000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/wbpromote")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STATS_CACHE_ENABLED", false)
	viper.SetDefault("STATS_CACHE_MAX_CONCURRENT_FETCHES", 5)
	viper.SetDefault("STATS_CACHE_RETENTION_DAYS", 90)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
