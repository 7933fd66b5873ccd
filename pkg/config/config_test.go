package config

import (
	"path/filepath"
	"testing"
)

func TestInitConfigCreatesDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexarbor", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.CLI.DefaultLimit != DefaultConfig().CLI.DefaultLimit {
		t.Errorf("DefaultLimit = %d; want %d", cfg.CLI.DefaultLimit, DefaultConfig().CLI.DefaultLimit)
	}

	again, err := InitConfig(path)
	if err != nil {
		t.Fatalf("second InitConfig: %v", err)
	}
	if again.Dict.Path != cfg.Dict.Path {
		t.Errorf("second InitConfig loaded different Dict.Path: %q vs %q", again.Dict.Path, cfg.Dict.Path)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Dict.Path = "/custom/dict.txt"
	cfg.Tokenizer.IncludeHyphens = true
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Dict.Path != "/custom/dict.txt" {
		t.Errorf("Dict.Path = %q; want /custom/dict.txt", loaded.Dict.Path)
	}
	if !loaded.Tokenizer.IncludeHyphens {
		t.Error("Tokenizer.IncludeHyphens = false; want true")
	}
}

func TestUpdatePersistsChangedFieldsOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	cfg := DefaultConfig()
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatal(err)
	}

	newLimit := 42
	if err := cfg.Update(path, nil, &newLimit, nil, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.CLI.DefaultLimit != 42 {
		t.Errorf("CLI.DefaultLimit = %d; want 42", loaded.CLI.DefaultLimit)
	}
	if loaded.Dict.Path != DefaultConfig().Dict.Path {
		t.Errorf("Dict.Path changed unexpectedly: %q", loaded.Dict.Path)
	}
}
