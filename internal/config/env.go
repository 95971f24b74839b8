// internal/config/env.go
package config

import "github.com/kelseyhightower/envconfig"

// Env carries COVTABLE_* environment overrides for flag defaults. Pointer
// fields distinguish "unset" from a zero value; an unset field leaves the
// built-in default in place.
type Env struct {
	Threads *int   `envconfig:"THREADS"`
	Seed    *int64 `envconfig:"SEED"`
	Quiet   *bool  `envconfig:"QUIET"`
}

// Load reads the environment. Malformed values are reported so a typo in a
// shell profile does not silently fall back.
func Load() (Env, error) {
	var e Env
	if err := envconfig.Process("covtable", &e); err != nil {
		return Env{}, err
	}
	return e, nil
}

// IntDefault returns *v when set, otherwise def.
func IntDefault(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

// Int64Default returns *v when set, otherwise def.
func Int64Default(v *int64, def int64) int64 {
	if v != nil {
		return *v
	}
	return def
}

// BoolDefault returns *v when set, otherwise def.
func BoolDefault(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}
