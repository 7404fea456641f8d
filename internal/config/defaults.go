package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "opsboard",
	Pass: "opsboard",
	Name: "opsboard",
}

const (
	defaultKafkaGroupID = "opsboard-dispatch"
	defaultKafkaTopic   = "dispatch-events"
)

var defaultOrgGateway = OrgGateway{
	BaseURL:     "",
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultBoard = Board{
	OperationTimeout: 3 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       50,
	Burst:      100,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

const defaultPprofAddr = "127.0.0.1:6060"

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultOrgGateway returns the default organization-resolver settings.
func DefaultOrgGateway() OrgGateway {
	return defaultOrgGateway
}

// DefaultBoard returns the default reconciliation settings.
func DefaultBoard() Board {
	return defaultBoard
}

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
