package config

import (
	"os"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid file backend config",
			config: Config{
				DataBackend:  "file",
				ExpensesFile: "expenses.txt",
				LogLevel:     "warn",
			},
			wantErr: false,
		},
		{
			name: "valid sqlite backend config",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: "./test.db",
				LogLevel:     "info",
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				DataBackend: "memory",
				LogLevel:    "debug",
			},
			wantErr: false,
		},
		{
			name: "invalid data backend",
			config: Config{
				DataBackend: "redis",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "invalid data backend 'redis'",
		},
		{
			name: "file backend missing file path",
			config: Config{
				DataBackend:  "file",
				ExpensesFile: "",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "expenses file path cannot be empty",
		},
		{
			name: "sqlite backend missing database path",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: "",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name: "invalid log level",
			config: Config{
				DataBackend:  "file",
				ExpensesFile: "expenses.txt",
				LogLevel:     "loud",
			},
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	originalVars := map[string]string{
		"DATA_BACKEND":   os.Getenv("DATA_BACKEND"),
		"EXPENSES_FILE":  os.Getenv("EXPENSES_FILE"),
		"SQLITE_DB_PATH": os.Getenv("SQLITE_DB_PATH"),
		"LOG_LEVEL":      os.Getenv("LOG_LEVEL"),
	}
	for key := range originalVars {
		os.Unsetenv(key)
	}
	defer func() {
		for key, value := range originalVars {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.DataBackend != "file" {
			t.Errorf("Load() DataBackend = %v, want file", cfg.DataBackend)
		}
		if cfg.ExpensesFile != "expenses.txt" {
			t.Errorf("Load() ExpensesFile = %v, want expenses.txt", cfg.ExpensesFile)
		}
		if cfg.LogLevel != "warn" {
			t.Errorf("Load() LogLevel = %v, want warn", cfg.LogLevel)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		os.Setenv("DATA_BACKEND", "sqlite")
		os.Setenv("SQLITE_DB_PATH", "/tmp/test.db")
		os.Setenv("LOG_LEVEL", "debug")

		cfg := Load()

		if cfg.DataBackend != "sqlite" {
			t.Errorf("Load() DataBackend = %v, want sqlite", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "/tmp/test.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want /tmp/test.db", cfg.SQLiteDBPath)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
	})
}
