package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable is invalid")

const (
	apiPortEnvKey        = "API_PORT"
	ethNodeEnvKey        = "ETH_NODE_URL"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	jwtSecretEnvKey      = "JWT_SECRET"
	logLevelEnvKey       = "LOG_LEVEL"
	numericBackendEnvKey = "NUMERIC_BACKEND"
	addressErrorEnvKey   = "ADDRESS_ERROR_MESSAGE"
	coinIndexEnvKey      = "COIN_INDEX"
	coinSymbolEnvKey     = "COIN_SYMBOL"
	coinNameEnvKey       = "COIN_NAME"
	otelEndpointEnvKey   = "OTEL_ENDPOINT"
	kafkaBrokersEnvKey   = "KAFKA_BROKERS"
	kafkaPrefixEnvKey    = "KAFKA_TOPIC_PREFIX"
	redisAddrEnvKey      = "REDIS_ADDR"
	cacheTTLEnvKey       = "CACHE_TTL"
)

const (
	defaultLogLevel       = "info"
	defaultNumericBackend = "big"
	defaultAddressError   = "Invalid Moac Address"
	defaultCoinIndex      = 60
	defaultCoinSymbol     = "ETH"
	defaultCoinName       = "Ethereum"
	defaultKafkaPrefix    = "txmerge-transactions"
	defaultCacheTTL       = 5 * time.Minute
)

type App struct {
	Port                string
	NodeURL             string
	DBConnectionURL     string
	JWTSecret           string
	LogLevel            string
	NumericBackend      string
	AddressErrorMessage string
	CoinIndex           int
	CoinSymbol          string
	CoinName            string

	// Optional integrations, disabled when empty.
	OtelEndpoint     string
	KafkaBrokers     []string
	KafkaTopicPrefix string
	RedisAddr        string
	CacheTTL         time.Duration
}

// LoadDotEnv seeds the environment from path when the file exists.
// Variables already set in the environment win.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	coinIndex := defaultCoinIndex
	if raw, ok := os.LookupEnv(coinIndexEnvKey); ok {
		idx, err := strconv.Atoi(raw)
		if err != nil || idx < 0 {
			return App{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, coinIndexEnvKey, raw)
		}
		coinIndex = idx
	}

	cacheTTL := defaultCacheTTL
	if raw, ok := os.LookupEnv(cacheTTLEnvKey); ok && raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return App{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, cacheTTLEnvKey, raw)
		}
		cacheTTL = ttl
	}

	return App{
		Port:                port,
		NodeURL:             nodeURL,
		DBConnectionURL:     dbConn,
		JWTSecret:           jwtSecret,
		LogLevel:            lookupOr(logLevelEnvKey, defaultLogLevel),
		NumericBackend:      lookupOr(numericBackendEnvKey, defaultNumericBackend),
		AddressErrorMessage: lookupOr(addressErrorEnvKey, defaultAddressError),
		CoinIndex:           coinIndex,
		CoinSymbol:          lookupOr(coinSymbolEnvKey, defaultCoinSymbol),
		CoinName:            lookupOr(coinNameEnvKey, defaultCoinName),
		OtelEndpoint:        os.Getenv(otelEndpointEnvKey),
		KafkaBrokers:        splitList(os.Getenv(kafkaBrokersEnvKey)),
		KafkaTopicPrefix:    lookupOr(kafkaPrefixEnvKey, defaultKafkaPrefix),
		RedisAddr:           os.Getenv(redisAddrEnvKey),
		CacheTTL:            cacheTTL,
	}, nil
}

func lookupOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
