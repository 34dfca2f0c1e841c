package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func envStr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// envAs parses key with parse; unset or unparsable values yield fallback
func envAs[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	value, err := parse(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	return envAs(key, fallback, strconv.Atoi)
}

func envBool(key string, fallback bool) bool {
	return envAs(key, fallback, strconv.ParseBool)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	return envAs(key, fallback, time.ParseDuration)
}

// envList splits a comma separated value, dropping blanks
func envList(key string, fallback []string) []string {
	raw := envStr(key, "")
	if raw == "" {
		return fallback
	}

	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}
