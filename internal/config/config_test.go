package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	validConfig := Config{
		GitHub: GitHub{
			APIURL:  "https://github.example.com/api/v3",
			Token:   "some-very-secret-token",
			Org:     "holbertonschool",
			Timeout: 10 * time.Second,
			Retries: 2,
		},
		Log:  Log{Level: "debug"},
		Demo: Demo{Unit: 100 * time.Millisecond},
	}

	tests := []struct {
		name    string
		path    string
		want    *Config
		wantErr bool
	}{
		{
			name:    "happy_path",
			path:    "testdata/config.yml",
			want:    &validConfig,
			wantErr: false,
		},
		{
			name:    "defaults_without_file",
			path:    "",
			want:    NewConfig(),
			wantErr: false,
		},
		{
			name:    "error parsing configuration",
			path:    "invalid_testdata_dir/",
			want:    nil,
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			path:    "testdata/invalid.yml",
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewConfigParser()
			got, err := parser.Parse(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("ORGSCOPE_GITHUB_ORG", "google")
	t.Setenv("ORGSCOPE_GITHUB_RETRIES", "5")
	t.Setenv("ORGSCOPE_DEMO_UNIT", "5ms")

	got, err := NewConfigParser().Parse("testdata/config.yml")
	require.NoError(t, err)

	assert.Equal(t, "google", got.GitHub.Org)
	assert.Equal(t, 5, got.GitHub.Retries)
	assert.Equal(t, 5*time.Millisecond, got.Demo.Unit)
	assert.Equal(t, "debug", got.Log.Level)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func() *Config
		wantErr error
		anyErr  bool
	}{
		{
			name:    "defaults",
			cfg:     NewConfig,
			wantErr: nil,
		},
		{
			name: "valid_org",
			cfg: func() *Config {
				cfg := NewConfig()
				cfg.GitHub.Org = "holberton-school"
				return cfg
			},
			wantErr: nil,
		},
		{
			name: "invalid_org",
			cfg: func() *Config {
				cfg := NewConfig()
				cfg.GitHub.Org = "my awesome/org"
				return cfg
			},
			wantErr: ErrInvalidOrgName,
		},
		{
			name: "leading_hyphen",
			cfg: func() *Config {
				cfg := NewConfig()
				cfg.GitHub.Org = "-org"
				return cfg
			},
			wantErr: ErrInvalidOrgName,
		},
		{
			name: "missing_api_url",
			cfg: func() *Config {
				cfg := NewConfig()
				cfg.GitHub.APIURL = ""
				return cfg
			},
			anyErr: true,
		},
		{
			name: "negative_retries",
			cfg: func() *Config {
				cfg := NewConfig()
				cfg.GitHub.Retries = -1
				return cfg
			},
			anyErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg().Validate()

			switch {
			case tt.anyErr:
				assert.Error(t, err)
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
