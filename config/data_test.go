package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ptr234/christheartMinistrieswebsitegg/data"
	"github.com/Ptr234/christheartMinistrieswebsitegg/models"
)

func TestLoadDataWithoutDataDir(t *testing.T) {
	t.Setenv("DATA_DIR", "")

	branches := len(data.Branches)
	if err := LoadData(); err != nil {
		t.Fatalf("LoadData without overrides: %v", err)
	}
	if len(data.Branches) != branches {
		t.Errorf("built-in branch dataset changed: %d -> %d", branches, len(data.Branches))
	}
}

func TestLoadDataAppliesOverrides(t *testing.T) {
	oldEvents := data.Events
	t.Cleanup(func() { data.Events = oldEvents })

	dir := t.TempDir()
	override := `
- id: special-convention
  name: Special Convention
  date: July 2027
  location: Christ's Heart Kampala
`
	if err := os.WriteFile(filepath.Join(dir, "events.yaml"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DATA_DIR", dir)

	if err := LoadData(); err != nil {
		t.Fatalf("LoadData with override: %v", err)
	}
	if len(data.Events) != 1 || data.Events[0].ID != "special-convention" {
		t.Errorf("events override not applied, got %+v", data.Events)
	}
}

func TestLoadDataRejectsMalformedYAML(t *testing.T) {
	oldEvents := data.Events
	t.Cleanup(func() { data.Events = oldEvents })

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "events.yaml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DATA_DIR", dir)

	if err := LoadData(); err == nil {
		t.Error("expected an error for malformed override file")
	}
}

func TestValidateScheduleDoesNotPanic(t *testing.T) {
	validateSchedule([]models.RecurringService{
		{ID: "no-days", StartMinute: 600, EndMinute: 700},
		{ID: "bad-minutes", Days: []time.Weekday{time.Monday}, StartMinute: -5, EndMinute: 2000},
		{ID: "inverted", Days: []time.Weekday{time.Monday}, StartMinute: 700, EndMinute: 600},
	})
}

func TestGetCacheKey(t *testing.T) {
	if got := GetCacheKey("sermons", "page_token=abc"); got != "sermons:page_token=abc" {
		t.Errorf("GetCacheKey = %q", got)
	}
	if got := GetCacheKey("geocode"); got != "geocode" {
		t.Errorf("GetCacheKey with no params = %q", got)
	}
}
