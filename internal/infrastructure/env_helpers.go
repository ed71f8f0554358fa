package infrastructure

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// envOr parses the variable named key with parse and returns fallback when
// it is unset or does not parse.
func envOr[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		return fallback
	}
	return v
}

// GetEnvAsInt returns key as an int, or defaultValue when unset or invalid.
func GetEnvAsInt(key string, defaultValue int) int {
	return envOr(key, defaultValue, strconv.Atoi)
}

// GetEnvAsFloat returns key as a float64, or defaultValue when unset or
// invalid.
func GetEnvAsFloat(key string, defaultValue float64) float64 {
	return envOr(key, defaultValue, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// GetEnvAsDuration returns key parsed by time.ParseDuration, or defaultValue
// when unset or invalid.
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	return envOr(key, defaultValue, time.ParseDuration)
}

// GetEnvAsString returns key, or defaultValue when unset or blank.
func GetEnvAsString(key string, defaultValue string) string {
	return envOr(key, defaultValue, func(s string) (string, error) { return s, nil })
}

// GetEnvAsBool returns key parsed by strconv.ParseBool, or defaultValue when
// unset or invalid.
func GetEnvAsBool(key string, defaultValue bool) bool {
	return envOr(key, defaultValue, strconv.ParseBool)
}

// GetEnvAsList splits a comma separated variable, dropping blank entries.
func GetEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
