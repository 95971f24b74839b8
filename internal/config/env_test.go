package config

import "testing"

func TestDefaultHelpers(t *testing.T) {
	if IntDefault(nil, 12) != 12 {
		t.Error("nil int must yield default")
	}
	n := 3
	if IntDefault(&n, 12) != 3 {
		t.Error("set int must win over default")
	}
	s := int64(5)
	if Int64Default(nil, 42) != 42 || Int64Default(&s, 42) != 5 {
		t.Error("int64 default helper broken")
	}
	b := true
	if BoolDefault(nil, false) || !BoolDefault(&b, false) {
		t.Error("bool default helper broken")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("COVTABLE_THREADS", "4")
	t.Setenv("COVTABLE_SEED", "7")
	t.Setenv("COVTABLE_QUIET", "true")
	e, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := IntDefault(e.Threads, 12); got != 4 {
		t.Errorf("threads = %d, want 4", got)
	}
	if got := Int64Default(e.Seed, 42); got != 7 {
		t.Errorf("seed = %d, want 7", got)
	}
	if !BoolDefault(e.Quiet, false) {
		t.Error("quiet override not applied")
	}
}

func TestLoadMalformed(t *testing.T) {
	t.Setenv("COVTABLE_THREADS", "lots")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed integer")
	}
}
