package engine

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestParamsSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	p := DefaultParams()
	p.KnightValue = 330
	p.Knight.MG[square("e5")] = 42
	p.KingSafetyTropism[15] = 250

	if err := p.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected temp file to be renamed away, got %v", err)
	}

	loaded, err := LoadParams(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *p {
		t.Fatalf("expected loaded params to match saved params")
	}
}

func TestLoadParamsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"rook_value": 510, "tempo": {"mg": 7, "eg": 9}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := LoadParams(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.RookValue != 510 || p.Tempo != (Pair{7, 9}) {
		t.Fatalf("expected overridden rook value and tempo, got %d %+v", p.RookValue, p.Tempo)
	}
	if p.QueenValue != DefaultParams().QueenValue {
		t.Fatalf("expected default queen value, got %d", p.QueenValue)
	}
}

func TestLoadParamsRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"pawn_table_size": 0}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadParams(bad); err == nil {
		t.Fatalf("expected an error for a zero pawn table")
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte(`{"pawn_value":`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadParams(broken); err == nil {
		t.Fatalf("expected a decode error")
	}

	if _, err := LoadParams(filepath.Join(dir, "missing.json")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestKingSafetyTableGrows(t *testing.T) {
	table := buildKingSafety(DefaultParams())
	if table[0][0] != 0 {
		t.Fatalf("expected no penalty without defects or tropism, got %d", table[0][0])
	}
	for i := 1; i < 16; i++ {
		if table[i][i] <= table[i-1][i-1] {
			t.Fatalf("expected the diagonal to grow at %d: %d <= %d", i, table[i][i], table[i-1][i-1])
		}
	}
}
