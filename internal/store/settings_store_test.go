package store_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"chartleap/internal/domain"
	"chartleap/internal/store"
)

func TestSettings_MissingFileYieldsDefaults(t *testing.T) {
	var ss domain.SettingsStore = store.NewSettingsFileStore(t.TempDir())

	got, err := ss.LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if !reflect.DeepEqual(got, domain.DefaultSettings()) {
		t.Fatalf("got %+v, want defaults", got)
	}
}

func TestSettings_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	ss := store.NewSettingsFileStore(home)

	want := domain.DefaultSettings()
	want.Palette = []string{"#000000", "teal"}
	want.LineWidth = 3.5
	want.Grid = domain.Range{Min: -5, Max: 5, Step: 0.5}

	if err := ss.SaveSettings(want); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	got, err := store.NewSettingsFileStore(home).LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("mismatch after load:\n got %+v\nwant %+v", got, want)
	}
}

func TestSettings_PartialFileKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	ss := store.NewSettingsFileStore(home)
	if err := os.WriteFile(ss.Path(), []byte(`{"line_width": 4}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ss.LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if got.LineWidth != 4 {
		t.Fatalf("line width = %v, want 4", got.LineWidth)
	}
	if got.Explicit != domain.DefaultSettings().Explicit {
		t.Fatalf("explicit range = %+v, want default", got.Explicit)
	}
}

func TestSettings_Invalid_Fails(t *testing.T) {
	home := t.TempDir()
	ss := store.NewSettingsFileStore(home)

	bad := domain.DefaultSettings()
	bad.Polar.Step = 0
	if err := ss.SaveSettings(bad); err == nil {
		t.Fatal("expected error saving zero step")
	}
	if _, err := os.Stat(ss.Path()); !os.IsNotExist(err) {
		t.Fatalf("invalid settings were written: %v", err)
	}

	if err := os.WriteFile(ss.Path(), []byte(`{"grid": {"min": 1, "max": 0, "step": 1}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ss.LoadSettings(); err == nil {
		t.Fatal("expected error loading reversed grid range")
	}

	if err := os.WriteFile(ss.Path(), []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ss.LoadSettings(); err == nil {
		t.Fatal("expected error loading malformed file")
	}
}

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "plot.json")
	if err := store.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "{}" {
		t.Fatalf("content = %q", b)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}
