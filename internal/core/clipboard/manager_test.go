package clipboard

import (
	"errors"
	"testing"
)

func TestRegisterOnly(t *testing.T) {
	m := NewManager(false)
	if _, err := m.Paste(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Paste err=%v, want ErrEmpty", err)
	}
	if err := m.Copy("hello"); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if got, err := m.Paste(); err != nil || got != "hello" {
		t.Fatalf("Paste=%q,%v, want hello", got, err)
	}
}

func TestSystemClipboardFallsBackToRegister(t *testing.T) {
	broken := errors.New("no display")
	m := &Manager{
		useSystem:   true,
		readSystem:  func() (string, error) { return "", broken },
		writeSystem: func(string) error { return broken },
	}
	if err := m.Copy("line"); !errors.Is(err, broken) {
		t.Fatalf("Copy err=%v, want the system error", err)
	}
	if got, err := m.Paste(); err != nil || got != "line" {
		t.Fatalf("Paste=%q,%v, want register contents", got, err)
	}
}

func TestSystemClipboardPreferred(t *testing.T) {
	var stored string
	m := &Manager{
		useSystem:   true,
		readSystem:  func() (string, error) { return "from system", nil },
		writeSystem: func(s string) error { stored = s; return nil },
	}
	m.Copy("x")
	if stored != "x" {
		t.Fatalf("system clipboard got %q, want x", stored)
	}
	if got, _ := m.Paste(); got != "from system" {
		t.Fatalf("Paste=%q, want system contents", got)
	}
}
