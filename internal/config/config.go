package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores database connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a Postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores dispatch-events consumer settings. Empty brokers disable
// the consumer.
type Kafka struct {
	Brokers []string
	GroupID string
	Topic   string
}

// OrgGateway stores organization-resolver gateway settings.
type OrgGateway struct {
	BaseURL     string
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Board stores reconciliation settings.
type Board struct {
	OperationTimeout time.Duration
}

// RateLimit stores HTTP rate limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores the optional pprof server settings. User and Pass guard
// non-loopback access.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Config stores all service settings.
type Config struct {
	Port       int
	DB         DB
	Kafka      Kafka
	OrgGateway OrgGateway
	Board      Board
	RateLimit  RateLimit
	Pprof      Pprof
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:       envInt("PORT", DefaultPort()),
		DB:         loadDB(),
		Kafka:      loadKafka(),
		OrgGateway: loadOrgGateway(),
		Board:      loadBoard(),
		RateLimit:  loadRateLimit(),
		Pprof:      loadPprof(),
	}

	fs := pflag.NewFlagSet("opsboard", pflag.ContinueOnError)
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	return cfg, nil
}

func loadDB() DB {
	db := DefaultDB()
	db.Host = envStr("DB_HOST", db.Host)
	db.Port = envStr("DB_PORT", db.Port)
	db.User = envStr("DB_USER", db.User)
	db.Pass = envStr("DB_PASS", db.Pass)
	db.Name = envStr("DB_NAME", db.Name)
	return db
}

func loadKafka() Kafka {
	k := Kafka{
		GroupID: envStr("KAFKA_GROUP_ID", defaultKafkaGroupID),
		Topic:   envStr("KAFKA_TOPIC", defaultKafkaTopic),
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				k.Brokers = append(k.Brokers, b)
			}
		}
	}
	return k
}

func loadOrgGateway() OrgGateway {
	gw := DefaultOrgGateway()
	gw.BaseURL = envStr("ORG_RESOLVER_URL", gw.BaseURL)
	gw.MaxAttempts = envInt("ORG_RESOLVER_MAX_ATTEMPTS", gw.MaxAttempts)
	gw.BaseDelay = envDuration("ORG_RESOLVER_BASE_DELAY", gw.BaseDelay)
	gw.MaxDelay = envDuration("ORG_RESOLVER_MAX_DELAY", gw.MaxDelay)
	return gw
}

func loadBoard() Board {
	b := DefaultBoard()
	b.OperationTimeout = envDuration("BOARD_OPERATION_TIMEOUT", b.OperationTimeout)
	return b
}

func loadRateLimit() RateLimit {
	rl := DefaultRateLimit()
	rl.Enabled = envBool("RATE_LIMIT_ENABLED", rl.Enabled)
	rl.Rate = envFloat("RATE_LIMIT_RATE", rl.Rate)
	rl.Burst = envInt("RATE_LIMIT_BURST", rl.Burst)
	rl.TTL = envDuration("RATE_LIMIT_TTL", rl.TTL)
	rl.MaxBuckets = envInt("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets)
	return rl
}

func loadPprof() Pprof {
	return Pprof{
		Enabled: envBool("PPROF_ENABLED", false),
		Addr:    envStr("PPROF_ADDR", defaultPprofAddr),
		User:    envStr("PPROF_USER", ""),
		Pass:    envStr("PPROF_PASS", ""),
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
