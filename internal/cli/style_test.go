package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestStylesDisabledForNonTTY(t *testing.T) {
	s := newStyles(&bytes.Buffer{})
	if s.enabled {
		t.Fatal("styles must be disabled when writer is not a terminal")
	}
	if got := s.kv("Listening", "127.0.0.1:8094"); got != "  Listening:     127.0.0.1:8094" {
		t.Errorf("kv = %q", got)
	}
	if got := s.errPrefix(); got != "ERROR:" {
		t.Errorf("errPrefix = %q", got)
	}
	if got := s.slug("note-5"); got != "note-5" {
		t.Errorf("slug = %q", got)
	}
}

func TestSeparator(t *testing.T) {
	s := newStyles(&bytes.Buffer{})
	if got := s.separator(0); len([]rune(got)) != 40 {
		t.Errorf("default separator width = %d", len([]rune(got)))
	}
	if !strings.HasPrefix(s.separator(3), "───") {
		t.Error("separator must be a rule of box-drawing characters")
	}
}
