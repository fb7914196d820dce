// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strconv"

	"github.com/Nutek/blender-export-svg/internal/log"
)

// ParseString returns the value of the environment variable key, or
// def when unset or empty.
func ParseString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		log.WithComponent("config").Debug().
			Str("key", key).
			Str("value", v).
			Str("source", "environment").
			Msg("config value resolved")
		return v
	}
	return def
}

// ParseBool returns the boolean value of the environment variable key,
// or def when unset, empty or unparseable.
func ParseBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.WithComponent("config").Warn().
			Str("key", key).
			Str("value", v).
			Bool("default", def).
			Msg("invalid boolean, using default")
		return def
	}
	log.WithComponent("config").Debug().
		Str("key", key).
		Bool("value", b).
		Str("source", "environment").
		Msg("config value resolved")
	return b
}

// ParseInt returns the integer value of the environment variable key,
// or def when unset, empty or unparseable.
func ParseInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.WithComponent("config").Warn().
			Str("key", key).
			Str("value", v).
			Int("default", def).
			Msg("invalid integer, using default")
		return def
	}
	log.WithComponent("config").Debug().
		Str("key", key).
		Int("value", n).
		Str("source", "environment").
		Msg("config value resolved")
	return n
}

// ParseInt64 returns the 64-bit integer value of the environment
// variable key, or def when unset, empty or unparseable.
func ParseInt64(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.WithComponent("config").Warn().
			Str("key", key).
			Str("value", v).
			Int64("default", def).
			Msg("invalid integer, using default")
		return def
	}
	log.WithComponent("config").Debug().
		Str("key", key).
		Int64("value", n).
		Str("source", "environment").
		Msg("config value resolved")
	return n
}

// ParseFloat returns the float value of the environment variable key,
// or def when unset, empty or unparseable.
func ParseFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.WithComponent("config").Warn().
			Str("key", key).
			Str("value", v).
			Float64("default", def).
			Msg("invalid float, using default")
		return def
	}
	log.WithComponent("config").Debug().
		Str("key", key).
		Float64("value", f).
		Str("source", "environment").
		Msg("config value resolved")
	return f
}
