package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func TestHallConfig_Location(t *testing.T) {
	loc, err := HallConfig{Timezone: "Asia/Qatar"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Qatar", loc.String())

	_, err = HallConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := map[string]logger.Level{
		"debug": logger.DebugLevel,
		"info":  logger.InfoLevel,
		"warn":  logger.WarnLevel,
		"error": logger.ErrorLevel,
		"":      logger.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, LoggerConfig{Level: in}.LogLevel(), in)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "hall_booking", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=hall_booking sslmode=disable", p.DSN())
}
