package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	// Should not be empty
	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	// Should contain "gfpint"
	if !strings.Contains(configDir, "gfpint") {
		t.Errorf("GetConfigDir() = %v, should contain 'gfpint'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	// Should end with config.yaml
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	t.Logf("Config path: %s", configPath)
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}

	if reg.Venues == nil {
		t.Error("NewRegistry().Venues should not be nil")
	}

	if reg.Preferences == nil {
		t.Error("NewRegistry().Preferences should not be nil")
	}

	if reg.Preferences.DebounceMillis != 300 {
		t.Errorf("NewRegistry().Preferences.DebounceMillis = %v, want 300", reg.Preferences.DebounceMillis)
	}

	if reg.Preferences.MaxSuggestions != 20 {
		t.Errorf("NewRegistry().Preferences.MaxSuggestions = %v, want 20", reg.Preferences.MaxSuggestions)
	}

	if reg.BaseURL() != DefaultBaseURL {
		t.Errorf("NewRegistry().BaseURL() = %v, want %v", reg.BaseURL(), DefaultBaseURL)
	}
}

func TestRegistryEnsureVenue(t *testing.T) {
	reg := NewRegistry()

	// First call should create venue
	venue1 := reg.EnsureVenue("1182", "The Gluten Free Arms")
	if venue1 == nil {
		t.Fatal("EnsureVenue() returned nil")
	}
	if venue1.Name != "The Gluten Free Arms" {
		t.Errorf("Name = %v, want The Gluten Free Arms", venue1.Name)
	}

	// Second call should return same venue
	venue2 := reg.EnsureVenue("1182", "The Gluten Free Arms")
	if venue1 != venue2 {
		t.Error("EnsureVenue() should return same instance for same id")
	}

	// Different id should create new venue
	venue3 := reg.EnsureVenue("2205", "Crafty Corner")
	if venue1 == venue3 {
		t.Error("EnsureVenue() should create new instance for different id")
	}
}

func TestRegistryRecordReport(t *testing.T) {
	reg := NewRegistry()

	before := time.Now()
	reg.RecordReport("1182", "The Gluten Free Arms")
	after := time.Now()

	venue := reg.GetVenue("1182")
	if venue == nil {
		t.Fatal("Venue should exist after RecordReport()")
	}

	if venue.LastReport.Before(before) || venue.LastReport.After(after) {
		t.Errorf("LastReport = %v, should be between %v and %v", venue.LastReport, before, after)
	}
}

func TestRegistryIdentity(t *testing.T) {
	reg := NewRegistry()

	if reg.HasIdentity() {
		t.Error("HasIdentity() should be false for a fresh registry")
	}

	reg.SetIdentity("u-42", "beerhunter")

	if !reg.HasIdentity() {
		t.Error("HasIdentity() should be true after SetIdentity()")
	}
	if reg.Identity.UserID != "u-42" {
		t.Errorf("UserID = %v, want u-42", reg.Identity.UserID)
	}
	if reg.Identity.SubmittedBy != "beerhunter" {
		t.Errorf("SubmittedBy = %v, want beerhunter", reg.Identity.SubmittedBy)
	}

	// Identity with empty user id is not usable
	reg.SetIdentity("", "anon")
	if reg.HasIdentity() {
		t.Error("HasIdentity() should be false for empty user id")
	}
}

func TestRegistryFallbacks(t *testing.T) {
	reg := &Registry{Version: 1}

	if reg.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() fallback = %v, want %v", reg.BaseURL(), DefaultBaseURL)
	}
	if reg.FeedURL() != DefaultFeedURL {
		t.Errorf("FeedURL() fallback = %v, want %v", reg.FeedURL(), DefaultFeedURL)
	}
	if reg.DebounceInterval() != 300*time.Millisecond {
		t.Errorf("DebounceInterval() fallback = %v, want 300ms", reg.DebounceInterval())
	}
}

func TestRegistryYAMLRoundTrip(t *testing.T) {
	reg := NewRegistry()
	reg.SetIdentity("u-42", "beerhunter")
	reg.EnsureVenue("1182", "The Gluten Free Arms").Address = "12 Mill Lane"
	reg.Preferences.DefaultFormat = "cask"

	data, err := yaml.Marshal(reg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var loaded Registry
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if loaded.Identity == nil || loaded.Identity.UserID != "u-42" {
		t.Errorf("Identity not preserved: %+v", loaded.Identity)
	}
	venue := loaded.GetVenue("1182")
	if venue == nil || venue.Address != "12 Mill Lane" {
		t.Errorf("Venue not preserved: %+v", venue)
	}
	if loaded.Preferences.DefaultFormat != "cask" {
		t.Errorf("DefaultFormat = %v, want cask", loaded.Preferences.DefaultFormat)
	}
}

func TestSaveCreatesFile(t *testing.T) {
	// Redirect config dir to a temp location
	tmp := t.TempDir()
	switch runtime.GOOS {
	case "windows":
		t.Setenv("LOCALAPPDATA", tmp)
	case "darwin":
		t.Setenv("HOME", tmp)
	default:
		t.Setenv("XDG_CONFIG_HOME", tmp)
	}

	reg := NewRegistry()
	reg.SetIdentity("u-1", "tester")

	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if !strings.Contains(string(data), "user_id: u-1") {
		t.Errorf("saved config missing identity, got:\n%s", data)
	}

	// Temp file from atomic write should not linger
	if _, err := os.Stat(configPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be removed after save")
	}
}
