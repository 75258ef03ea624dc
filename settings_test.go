package grip

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsRoundtrip(t *testing.T) {
	v := newTestView()
	v.Resize(75)
	v.Workspace = 2

	s := v.Settings("geometry")
	if s.Name != "geometry" || s.Zoom != 75 || s.Workspace != 2 {
		t.Fatalf("Settings = %+v", s)
	}

	other := newTestView()
	other.ApplySettings(s)
	if other.Size() != 75 {
		t.Errorf("Size after apply = %d, want 75", other.Size())
	}
	if other.Workspace != 2 {
		t.Errorf("Workspace after apply = %d, want 2", other.Workspace)
	}
}

func TestSettingsFileRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.yaml")
	want := Settings{Name: "geometry", Zoom: 40, Workspace: 1}

	if err := SaveSettings(path, want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != want {
		t.Errorf("roundtrip = %+v, want %+v", got, want)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
