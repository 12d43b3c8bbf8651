package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osu-ultimate/tournament-console/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	ShutdownTimeout             time.Duration
	CORSAllowedOrigins          []string
	SwaggerEnabled              bool
	ConsoleToken                string
	OSUAPIBaseURL               string
	OSUAPITimeout               time.Duration
	OSUAPICircuitEnabled        bool
	OSUAPICircuitFailureCount   int
	OSUAPICircuitOpenTimeout    time.Duration
	OSUAPICircuitHalfOpenMaxReq int
	QueryStaleTime              time.Duration
	QueryGCTime                 time.Duration
	QueryMaxEntries             int
	QueryMaxRetries             int
	QueryRetryBaseDelay         time.Duration
	QueryRetryMaxDelay          time.Duration
	WarmerEnabled               bool
	WarmerInterval              time.Duration
	WarmerWorkers               int
	PprofEnabled                bool
	PprofAddr                   string
	UptraceEnabled              bool
	UptraceDSN                  string
	UptraceLogsEnabled          bool
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeBasicAuthUser      string
	PyroscopeBasicAuthPassword  string
	PyroscopeUploadRate         time.Duration
	LogLevel                    logging.Level
}

// LoadDotEnv reads the given .env files into the process environment.
// Missing files are skipped; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getEnvAsDuration("APP_SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}

	consoleToken := strings.TrimSpace(getEnv("CONSOLE_TOKEN", ""))
	if appEnv == EnvProd && consoleToken == "" {
		return Config{}, fmt.Errorf("CONSOLE_TOKEN is required when APP_ENV=%s", EnvProd)
	}

	osuAPIBaseURL := strings.TrimRight(strings.TrimSpace(getEnv("OSU_API_BASE_URL", "http://localhost:8000")), "/")
	if !strings.HasPrefix(osuAPIBaseURL, "http://") && !strings.HasPrefix(osuAPIBaseURL, "https://") {
		return Config{}, fmt.Errorf("OSU_API_BASE_URL must start with http:// or https://, got %q", osuAPIBaseURL)
	}
	osuAPITimeout, err := getEnvAsDuration("OSU_API_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	osuAPICircuitEnabled, err := strconv.ParseBool(getEnv("OSU_API_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse OSU_API_CIRCUIT_ENABLED: %w", err)
	}
	osuAPICircuitFailureCount, err := getEnvAsInt("OSU_API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse OSU_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if osuAPICircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("OSU_API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	osuAPICircuitOpenTimeout, err := getEnvAsDuration("OSU_API_CIRCUIT_OPEN_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	osuAPICircuitHalfOpenMaxReq, err := getEnvAsInt("OSU_API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse OSU_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if osuAPICircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("OSU_API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	// Negative keeps results until invalidated.
	queryStaleTime, err := time.ParseDuration(strings.TrimSpace(getEnv("QUERY_STALE_TIME", "5m")))
	if err != nil {
		return Config{}, fmt.Errorf("parse QUERY_STALE_TIME: %w", err)
	}
	if queryStaleTime == 0 {
		return Config{}, fmt.Errorf("QUERY_STALE_TIME must not be 0")
	}
	queryGCTime, err := getEnvAsDuration("QUERY_GC_TIME", "5m")
	if err != nil {
		return Config{}, err
	}
	queryMaxEntries, err := getEnvAsInt("QUERY_MAX_ENTRIES", 2000)
	if err != nil {
		return Config{}, fmt.Errorf("parse QUERY_MAX_ENTRIES: %w", err)
	}
	if queryMaxEntries < 0 {
		return Config{}, fmt.Errorf("QUERY_MAX_ENTRIES must be >= 0")
	}
	queryMaxRetries, err := getEnvAsInt("QUERY_MAX_RETRIES", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse QUERY_MAX_RETRIES: %w", err)
	}
	if queryMaxRetries < 0 {
		return Config{}, fmt.Errorf("QUERY_MAX_RETRIES must be >= 0")
	}
	queryRetryBaseDelay, err := getEnvAsDuration("QUERY_RETRY_BASE_DELAY", "1s")
	if err != nil {
		return Config{}, err
	}
	queryRetryMaxDelay, err := getEnvAsDuration("QUERY_RETRY_MAX_DELAY", "30s")
	if err != nil {
		return Config{}, err
	}
	if queryRetryMaxDelay < queryRetryBaseDelay {
		return Config{}, fmt.Errorf("QUERY_RETRY_MAX_DELAY must be >= QUERY_RETRY_BASE_DELAY")
	}

	warmerEnabled, err := strconv.ParseBool(getEnv("WARMER_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WARMER_ENABLED: %w", err)
	}
	warmerInterval, err := getEnvAsDuration("WARMER_INTERVAL", "2m")
	if err != nil {
		return Config{}, err
	}
	warmerWorkers, err := getEnvAsInt("WARMER_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse WARMER_WORKERS: %w", err)
	}
	if warmerWorkers < 1 {
		return Config{}, fmt.Errorf("WARMER_WORKERS must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "tournament-console"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		ShutdownTimeout:             shutdownTimeout,
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:              swaggerEnabled,
		ConsoleToken:                consoleToken,
		OSUAPIBaseURL:               osuAPIBaseURL,
		OSUAPITimeout:               osuAPITimeout,
		OSUAPICircuitEnabled:        osuAPICircuitEnabled,
		OSUAPICircuitFailureCount:   osuAPICircuitFailureCount,
		OSUAPICircuitOpenTimeout:    osuAPICircuitOpenTimeout,
		OSUAPICircuitHalfOpenMaxReq: osuAPICircuitHalfOpenMaxReq,
		QueryStaleTime:              queryStaleTime,
		QueryGCTime:                 queryGCTime,
		QueryMaxEntries:             queryMaxEntries,
		QueryMaxRetries:             queryMaxRetries,
		QueryRetryBaseDelay:         queryRetryBaseDelay,
		QueryRetryMaxDelay:          queryRetryMaxDelay,
		WarmerEnabled:               warmerEnabled,
		WarmerInterval:              warmerInterval,
		WarmerWorkers:               warmerWorkers,
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		UptraceLogsEnabled:          uptraceLogsEnabled,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
		LogLevel:                    logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

// getEnvAsDuration parses a positive duration.
func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return d, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
