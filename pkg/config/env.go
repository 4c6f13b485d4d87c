package config

import (
	"os"
	"strconv"
	"strings"
)

// Source looks up raw environment values.
type Source interface {
	LookupEnv(key string) (string, bool)
}

// OSEnv reads from the process environment.
type OSEnv struct{}

func (OSEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// MapEnv is an in-memory Source, mostly for tests and tooling.
type MapEnv map[string]string

func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// lookup treats an empty value the same as an unset one.
func lookup(src Source, key string) (string, bool) {
	if src == nil {
		src = OSEnv{}
	}
	v, ok := src.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Required returns the value of key or a *MissingVarError if it is unset or empty.
func Required(src Source, key string) (string, error) {
	v, ok := lookup(src, key)
	if !ok {
		return "", &MissingVarError{Key: key}
	}
	return v, nil
}

// Optional returns the value of key, or def if it is unset or empty.
func Optional(src Source, key, def string) string {
	if v, ok := lookup(src, key); ok {
		return v
	}
	return def
}

// Bool returns def if key is unset or empty. Otherwise only a
// case-insensitive "true" yields true; every other value yields false.
func Bool(src Source, key string, def bool) bool {
	v, ok := lookup(src, key)
	if !ok {
		return def
	}
	return strings.EqualFold(v, "true")
}

// Int returns the base-10 integer value of key, or def if the key is
// unset, empty or not an integer.
func Int(src Source, key string, def int) int {
	v, ok := lookup(src, key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}
