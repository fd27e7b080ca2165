package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/colmenar/agenda/internal/calendar"
	"github.com/colmenar/agenda/internal/plan"
)

func newViper(t *testing.T) (*viper.Viper, string) {
	t.Helper()
	dir := t.TempDir()
	v := viper.New()
	SetDefaults(v, dir)
	return v, dir
}

func TestLoad_Defaults(t *testing.T) {
	v, dir := newViper(t)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PlansFile != filepath.Join(dir, "plans.json") {
		t.Errorf("PlansFile = %q", cfg.PlansFile)
	}
	if cfg.DBFile != filepath.Join(dir, "agenda.db") {
		t.Errorf("DBFile = %q", cfg.DBFile)
	}
	if cfg.LogFile != filepath.Join(dir, "agenda.log") {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.Calendar.View != calendar.ModeMonth {
		t.Errorf("View = %v, want month", cfg.Calendar.View)
	}
	if !cfg.Calendar.ColorByModule || !cfg.Calendar.GroupGantt || cfg.Calendar.ForceIndicators {
		t.Errorf("unexpected calendar defaults %+v", cfg.Calendar)
	}
	if cfg.Calendar.DefaultModule != "" {
		t.Errorf("expected no default module, got %q", cfg.Calendar.DefaultModule)
	}
}

func TestLoad_Overrides(t *testing.T) {
	v, dir := newViper(t)
	v.Set(KeyView, "gantt")
	v.Set(KeyDefaultModule, "Apicultura")
	v.Set(KeyPlansFile, "/srv/agenda/plans.json")
	v.Set(KeyDBFile, "")
	v.Set(KeyGroupGantt, false)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Calendar.View != calendar.ModeGantt {
		t.Errorf("View = %v, want gantt", cfg.Calendar.View)
	}
	if cfg.Calendar.DefaultModule != plan.ModuleApiculture {
		t.Errorf("DefaultModule = %q", cfg.Calendar.DefaultModule)
	}
	if cfg.PlansFile != "/srv/agenda/plans.json" {
		t.Errorf("expected absolute path kept, got %q", cfg.PlansFile)
	}
	if cfg.DBFile != "" {
		t.Errorf("expected empty DBFile, got %q", cfg.DBFile)
	}
	if cfg.Calendar.GroupGantt {
		t.Error("expected GroupGantt=false")
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"unknown view", KeyView, "year", KeyView},
		{"unknown module", KeyDefaultModule, "pesca", KeyDefaultModule},
		{"unknown log level", KeyLogLevel, "verbose", KeyLogLevel},
		{"empty data dir", KeyDataDir, "", KeyDataDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newViper(t)
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}
