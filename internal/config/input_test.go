package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()

	config, err := parser.LoadFromFile(filepath.Join("testdata", "valid.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Test Creator", config.CreatorName)
	assert.Equal(t, "uk", config.Region)
	assert.Equal(t, "yearly", config.TimePeriod)
	require.Len(t, config.Scenarios, 2)

	base := config.Scenarios[0]
	require.Len(t, base.Platforms, 2)
	assert.Equal(t, "youtube", base.Platforms[0].Platform)
	assert.Equal(t, 500000.0, base.Platforms[0].Inputs["monthlyViews"])
	assert.Equal(t, "finance", config.NicheFor(&base))
	assert.Equal(t, "gaming", config.NicheFor(&config.Scenarios[1]))
	assert.Equal(t, "uk", config.RegionFor(&config.Scenarios[1]))
}

func TestLoadFromFile_Errors(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	_, err = parser.Parse([]byte("scenarios: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration_ReportsEveryProblem(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile(filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		`unknown region "mars"`,
		`unknown platform "myspace"`,
		`cannot be negative`,
		`patreon has no input "likes"`,
		`duplicate scenario name "base"`,
	} {
		assert.Contains(t, msg, want)
	}

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr), "errors should unwrap to ValidationError")
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()
	valid := func() *domain.Configuration {
		return &domain.Configuration{
			Scenarios: []domain.Scenario{{
				Name:      "s",
				Platforms: []domain.PlatformEntry{{Platform: "patreon", Inputs: domain.InputValues{"patrons": 1}}},
			}},
		}
	}

	tests := []struct {
		name    string
		modify  func(c *domain.Configuration)
		wantErr string
	}{
		{"valid", func(c *domain.Configuration) {}, ""},
		{"no scenarios", func(c *domain.Configuration) { c.Scenarios = nil }, "at least one scenario"},
		{"missing name", func(c *domain.Configuration) { c.Scenarios[0].Name = "" }, "is required"},
		{"bad niche", func(c *domain.Configuration) { c.Niche = "knitting" }, `unknown niche "knitting"`},
		{"bad time period", func(c *domain.Configuration) { c.TimePeriod = "hourly" }, `unknown time period "hourly"`},
		{"bad scenario region", func(c *domain.Configuration) { c.Scenarios[0].Region = "moon" }, "scenarios[0].region"},
		{"mixed case platform", func(c *domain.Configuration) { c.Scenarios[0].Platforms[0].Platform = "Patreon" }, `must be written as "patreon"`},
		{"platform twice", func(c *domain.Configuration) {
			c.Scenarios[0].Platforms = append(c.Scenarios[0].Platforms, c.Scenarios[0].Platforms[0])
		}, "listed twice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.modify(config)
			err := parser.ValidateConfiguration(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Error(t, parser.ValidateConfiguration(nil))
}

func TestSaveScenario_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "saved.yaml")
	config := &domain.Configuration{
		Region: "ca",
		Scenarios: []domain.Scenario{{
			ID:        "3b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed",
			Name:      "snapshot",
			Platforms: []domain.PlatformEntry{{Platform: "kofi", Inputs: domain.InputValues{"members": 40, "membershipPrice": 5, "tipsPercent": 10}}},
		}},
	}

	require.NoError(t, SaveScenario(path, config))

	loaded, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)

	assert.Error(t, SaveScenario(path, nil))
}

func TestLoadSettings(t *testing.T) {
	t.Run("defaults when no file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		settings, err := LoadSettings("")
		require.NoError(t, err)
		assert.Equal(t, "info", settings.Logging.Level)
		assert.Equal(t, "console", settings.Logging.Format)
		assert.Equal(t, "us", settings.Defaults.Region)
		assert.Equal(t, "general", settings.Defaults.Niche)
		assert.Equal(t, "monthly", settings.Defaults.TimePeriod)
		assert.Equal(t, ":8080", settings.Server.Addr)
		assert.Equal(t, 10*time.Second, settings.Server.ShutdownTimeout)
	})

	t.Run("file values", func(t *testing.T) {
		settings, err := LoadSettings(filepath.Join("testdata", "settings.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "debug", settings.Logging.Level)
		assert.Equal(t, "json", settings.Logging.Format)
		assert.Equal(t, "de", settings.Defaults.Region)
		assert.Equal(t, "monthly", settings.Defaults.TimePeriod)
		assert.Equal(t, ":9090", settings.Server.Addr)
		assert.Equal(t, 5*time.Second, settings.Server.ShutdownTimeout)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("CREATORCALC_DEFAULTS_NICHE", "gaming")
		settings, err := LoadSettings(filepath.Join("testdata", "settings.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "gaming", settings.Defaults.Niche)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("CREATORCALC_LOGGING_LEVEL", "loud")
		_, err := LoadSettings(filepath.Join("testdata", "settings.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid log level "loud"`)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join("testdata", "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.NoError(t, settings.Validate())
	assert.Equal(t, "us", settings.Defaults.Region)
}
