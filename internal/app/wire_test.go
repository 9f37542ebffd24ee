package app_test

import (
	"net/http/httptest"
	"testing"

	"chartleap/internal/app"
	"chartleap/internal/domain"
	"chartleap/internal/server"
	"chartleap/internal/store"
)

func TestNewWire_Local(t *testing.T) {
	w, err := app.NewWire(app.Config{Home: t.TempDir()})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.Remote != nil {
		t.Fatal("remote client set without a server URL")
	}
	res, err := w.Plots.Plot([]string{"y = x"})
	if err != nil || len(res.Traces) != 1 {
		t.Fatalf("plot: %d traces, err %v", len(res.Traces), err)
	}
}

func TestNewWire_UsesStoredSettings(t *testing.T) {
	home := t.TempDir()
	s := domain.DefaultSettings()
	s.Palette = []string{"#123456"}
	if err := store.NewSettingsFileStore(home).SaveSettings(s); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	w, err := app.NewWire(app.Config{Home: home})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	res, _ := w.Plots.Plot([]string{"y = x", "y = 2*x"})
	for i, tr := range res.Traces {
		if tr.Meta().Color != "#123456" {
			t.Fatalf("trace %d color = %s", i, tr.Meta().Color)
		}
	}
}

func TestNewWire_BadPalette_Fails(t *testing.T) {
	home := t.TempDir()
	s := domain.DefaultSettings()
	s.Palette = []string{"not-a-color"}
	if err := store.NewSettingsFileStore(home).SaveSettings(s); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if _, err := app.NewWire(app.Config{Home: home}); err == nil {
		t.Fatal("expected error for unknown palette color")
	}
}

func TestNewWire_Remote(t *testing.T) {
	engine, err := app.NewEngine(domain.DefaultSettings())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ts := httptest.NewServer(server.New(engine.Plots, engine.Classifier))
	defer ts.Close()

	w, err := app.NewWire(app.Config{Home: t.TempDir(), ServerURL: ts.URL})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.Remote == nil {
		t.Fatal("remote client not wired")
	}
	res, err := w.Plots.Plot([]string{"x^2 + y^2 = 1"})
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	if len(res.Traces) != 1 || res.Traces[0].Kind() != domain.KindField {
		t.Fatalf("got %+v", res.Traces)
	}
}
