package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// envReader collects parse failures so Load can report all of them at once
type envReader struct {
	problems []string
}

func (r *envReader) fail(key, value, want string) {
	r.problems = append(r.problems, fmt.Sprintf("%s=%q: expected %s", key, value, want))
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (r *envReader) String(key, def string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return def
}

func (r *envReader) Int(key string, def int) int {
	v, ok := lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, "an integer")
		return def
	}
	return n
}

func (r *envReader) Uint64(key string, def uint64) uint64 {
	v, ok := lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		r.fail(key, v, "an unsigned integer")
		return def
	}
	return n
}

func (r *envReader) Float(key string, def float64) float64 {
	v, ok := lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, v, "a number")
		return def
	}
	return f
}

func (r *envReader) Bool(key string, def bool) bool {
	v, ok := lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, v, "a boolean")
		return def
	}
	return b
}

// Millis reads an integer millisecond count
func (r *envReader) Millis(key string, def time.Duration) time.Duration {
	v, ok := lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, "milliseconds")
		return def
	}
	return time.Duration(n) * time.Millisecond
}
