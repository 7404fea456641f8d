package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDB_DSN(t *testing.T) {
	db := DB{Host: "db.local", Port: "5433", User: "u", Pass: "p", Name: "boards"}
	require.Equal(t, "postgres://u:p@db.local:5433/boards?sslmode=disable", db.DSN())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultPort(), cfg.Port)
	require.Equal(t, DefaultDB(), cfg.DB)
	require.Equal(t, DefaultBoard(), cfg.Board)
	require.Empty(t, cfg.Kafka.Brokers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("KAFKA_BROKERS", "b1:9092, b2:9092,")
	t.Setenv("BOARD_OPERATION_TIMEOUT", "7s")
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := load(nil)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "pg.internal", cfg.DB.Host)
	require.Equal(t, []string{"b1:9092", "b2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, 7*time.Second, cfg.Board.OperationTimeout)
	require.True(t, cfg.RateLimit.Enabled)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := load(nil)
	require.Error(t, err)
}

func TestLoad_BadEnvValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("BOARD_OPERATION_TIMEOUT", "soon")

	cfg, err := load(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultPort(), cfg.Port)
	require.Equal(t, DefaultBoard().OperationTimeout, cfg.Board.OperationTimeout)
}
