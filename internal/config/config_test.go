package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("VERDANT_TEST_KEY", "from-env")

	if got := getConfigValue("from-flag", "VERDANT_TEST_KEY", "default"); got != "from-flag" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := getConfigValue("", "VERDANT_TEST_KEY", "default"); got != "from-env" {
		t.Errorf("env should win over default, got %q", got)
	}
	if got := getConfigValue("", "VERDANT_TEST_MISSING", "default"); got != "default" {
		t.Errorf("default should apply, got %q", got)
	}
}

func TestGetBoolConfigValue(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := getBoolConfigValue(tt.value, "VERDANT_TEST_BOOL", true); got != tt.want {
				t.Errorf("getBoolConfigValue(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}

	if !getBoolConfigValue("", "VERDANT_TEST_BOOL_MISSING", true) {
		t.Error("empty value should fall back to default")
	}
}

func TestGetFloatConfigValue(t *testing.T) {
	if got := getFloatConfigValue("2.5", "VERDANT_TEST_FLOAT", 1.0); got != 2.5 {
		t.Errorf("got %v, want 2.5", got)
	}
	if got := getFloatConfigValue("not-a-number", "VERDANT_TEST_FLOAT", 1.0); got != 1.0 {
		t.Errorf("invalid value should fall back to default, got %v", got)
	}
	if got := getFloatConfigValue("", "VERDANT_TEST_FLOAT_MISSING", 1.0); got != 1.0 {
		t.Errorf("missing value should fall back to default, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{
		App:     AppConfig{Environment: "development"},
		Logger:  LoggerConfig{Level: "info"},
		Data:    DataConfig{BasePath: "/tmp/verdant"},
		PlantID: PlantIDConfig{RequestsPerSecond: 1.0},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config should pass, got %v", err)
	}

	t.Run("bad environment", func(t *testing.T) {
		cfg := *valid
		cfg.App.Environment = "testing"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for invalid environment")
		}
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := *valid
		cfg.Logger.Level = "verbose"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for invalid log level")
		}
	})

	t.Run("zero rps", func(t *testing.T) {
		cfg := *valid
		cfg.PlantID.RequestsPerSecond = 0
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for non-positive rate limit")
		}
	})

	t.Run("empty api key allowed", func(t *testing.T) {
		cfg := *valid
		cfg.PlantID.APIKey = ""
		if err := cfg.Validate(); err != nil {
			t.Errorf("empty API key should not fail validation, got %v", err)
		}
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	t.Run("tilde expansion", func(t *testing.T) {
		got, err := expandPath("~/verdant-data", "")
		if err != nil {
			t.Fatal(err)
		}
		want := filepath.Join(home, "verdant-data")
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("empty uses default", func(t *testing.T) {
		got, err := expandPath("", "/default/path")
		if err != nil {
			t.Fatal(err)
		}
		if got != "/default/path" {
			t.Errorf("got %q, want /default/path", got)
		}
	})

	t.Run("relative becomes absolute", func(t *testing.T) {
		got, err := expandPath("data", "")
		if err != nil {
			t.Fatal(err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("expected absolute path, got %q", got)
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := strings.Join([]string{
		"# comment",
		"",
		"VERDANT_ENVFILE_A=hello",
		`VERDANT_ENVFILE_B="quoted"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("VERDANT_ENVFILE_A", "")
	t.Setenv("VERDANT_ENVFILE_B", "")
	os.Unsetenv("VERDANT_ENVFILE_A")
	os.Unsetenv("VERDANT_ENVFILE_B")

	if err := loadEnvFile(path); err != nil {
		t.Fatalf("loadEnvFile failed: %v", err)
	}

	if got := os.Getenv("VERDANT_ENVFILE_A"); got != "hello" {
		t.Errorf("VERDANT_ENVFILE_A = %q, want hello", got)
	}
	if got := os.Getenv("VERDANT_ENVFILE_B"); got != "quoted" {
		t.Errorf("VERDANT_ENVFILE_B = %q, want quoted (quotes stripped)", got)
	}
}

func TestLoadEnvFile_DoesNotOverrideEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("VERDANT_ENVFILE_C=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("VERDANT_ENVFILE_C", "from-env")

	if err := loadEnvFile(path); err != nil {
		t.Fatalf("loadEnvFile failed: %v", err)
	}

	if got := os.Getenv("VERDANT_ENVFILE_C"); got != "from-env" {
		t.Errorf("existing env var should win over .env file, got %q", got)
	}
}
