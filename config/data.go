package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Ptr234/christheartMinistrieswebsitegg/data"
	"github.com/Ptr234/christheartMinistrieswebsitegg/models"
)

// LoadData applies optional YAML overrides from the data directory and then
// validates the weekly schedule. The built-in datasets are used for any file
// that is absent, so a fresh checkout runs with no data directory at all.
func LoadData() error {
	dir := GetDataDir()
	if dir != "" {
		if err := loadYAML(filepath.Join(dir, "branches.yaml"), &data.Branches); err != nil {
			return err
		}
		if err := loadYAML(filepath.Join(dir, "events.yaml"), &data.Events); err != nil {
			return err
		}
		if err := loadYAML(filepath.Join(dir, "services.yaml"), &data.Services); err != nil {
			return err
		}
		if err := loadYAML(filepath.Join(dir, "schedule.yaml"), &data.WeeklySchedule); err != nil {
			return err
		}
	}

	validateSchedule(data.WeeklySchedule)

	log.Printf("Datasets loaded: %d branches, %d events, %d services, %d schedule entries",
		len(data.Branches), len(data.Events), len(data.Services), len(data.WeeklySchedule))
	return nil
}

func loadYAML(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return err
	}
	log.Printf("Loaded dataset override from %s", path)
	return nil
}

// validateSchedule surfaces configuration mistakes at startup. Bad entries
// are logged, not rejected: the resolver has defined fallback behavior and
// the site should still come up.
func validateSchedule(schedule []models.RecurringService) {
	for _, svc := range schedule {
		if len(svc.Days) == 0 {
			log.Printf("Warning: service %q has no weekdays configured and will never be scheduled", svc.ID)
		}
		if svc.StartMinute < 0 || svc.StartMinute >= 24*60 {
			log.Printf("Warning: service %q has start minute %d outside [0,1440)", svc.ID, svc.StartMinute)
		}
		if svc.EndMinute < 0 || svc.EndMinute >= 24*60 {
			log.Printf("Warning: service %q has end minute %d outside [0,1440)", svc.ID, svc.EndMinute)
		}
		if !svc.Overnight && svc.EndMinute <= svc.StartMinute {
			log.Printf("Warning: service %q ends before it starts but is not marked overnight", svc.ID)
		}
	}
}
