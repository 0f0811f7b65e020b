package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStore 在临时 HOME 下打开 gdata 存储
func openTestStore(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.DebugOverlay {
		t.Error("DebugOverlay: got true, want false")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if sm.IsPersistent() {
		t.Error("nil manager should not be persistent")
	}

	// 降级模式下保存不报错
	sm.SetDebugOverlay(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got %v", err)
	}
	if !sm.GetSettings().DebugOverlay {
		t.Error("in-memory setting should be kept")
	}
}

func TestSettingsLoadSave(t *testing.T) {
	manager := openTestStore(t, "fluffy_test_settings")

	sm1, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if !sm1.IsPersistent() {
		t.Fatal("expected persistent settings manager")
	}

	sm1.SetDebugOverlay(true)
	sm1.SetFullscreen(true)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	got := sm2.GetSettings()
	if !got.DebugOverlay || !got.Fullscreen {
		t.Errorf("expected saved settings to be loaded, got %+v", *got)
	}
}

func TestSettingsLoadCorrupted(t *testing.T) {
	manager := openTestStore(t, "fluffy_test_settings_corrupted")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("debugOverlay: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm.GetSettings().DebugOverlay {
		t.Error("corrupted settings should fall back to defaults")
	}
	if err := sm.Load(); err == nil {
		t.Error("expected Load() to report the unmarshal error")
	}
}
