package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "nope", "engine.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != Default() {
		t.Errorf("got %+v, want defaults %+v", p, Default())
	}
}

func TestLoadFromInvalidYAMLReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte("show_fps: [not a bool"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != Default() {
		t.Errorf("got %+v, want defaults %+v", p, Default())
	}
}

func TestSaveToLoadFromRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "engine.yaml")
	want := EnginePrefs{ShowFPS: true, ShowCamera: true, LogInput: false}
	if err := SaveTo(path, want); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadFromPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte("show_fps: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.ShowFPS {
		t.Error("show_fps not applied")
	}
	if !p.LogInput {
		t.Error("unset log_input lost its default")
	}
}
