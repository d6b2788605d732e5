package matcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewVocabularyKeepsOrder(t *testing.T) {
	v := NewVocabulary("Zed", " Ahri ", "", "Zed", "Lux")
	if diff := cmp.Diff([]string{"Zed", "Ahri", "Lux"}, v.Names()); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}
	if !v.Contains("Ahri") || v.Contains(" Ahri ") || v.Contains("") {
		t.Error("Contains mismatch")
	}

	names := v.Names()
	names[0] = "mutated"
	if v.Names()[0] != "Zed" {
		t.Error("Names exposed internal slice")
	}
}

func TestLoadAssets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	data := []byte("champions:\n  - Ahri\n  - Zed\nitems:\n  - Deathblade\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	champions, items, err := LoadAssets(path)
	if err != nil {
		t.Fatalf("LoadAssets: %v", err)
	}
	if champions.Len() != 2 || items.Len() != 1 || !items.Contains("Deathblade") {
		t.Errorf("champions=%v items=%v", champions.Names(), items.Names())
	}
}

func TestParseAssetsErrors(t *testing.T) {
	if _, _, err := ParseAssets([]byte("items: [Deathblade]\n")); err == nil {
		t.Error("expected error for missing champions")
	}
	if _, _, err := ParseAssets([]byte("champions: {")); err == nil {
		t.Error("expected parse error")
	}
	if _, _, err := LoadAssets(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected read error")
	}
}
