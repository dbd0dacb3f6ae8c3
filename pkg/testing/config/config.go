/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/unikorn-cloud/manila/pkg/constants"
)

var (
	// ErrMissingField is returned when a required setting is absent.
	ErrMissingField = errors.New("required configuration missing")

	// ErrInvalidField is returned when a setting is present but unusable.
	ErrInvalidField = errors.New("invalid configuration")
)

// Environment variables shared with the wider OpenStack test tooling.
const (
	EnvTestTimeout   = "OS_TEST_TIMEOUT"
	EnvStdoutCapture = "OS_STDOUT_CAPTURE"
	EnvStderrCapture = "OS_STDERR_CAPTURE"
	EnvLogCapture    = "OS_LOG_CAPTURE"
	EnvExecDir       = "OS_MANILACLIENT_EXEC_DIR"
)

// Harness specific settings.
const (
	KeyAPIVersion              = "MANILA_API_VERSION"
	KeyMinAPIMicroversion      = "MANILA_MIN_API_MICROVERSION"
	KeyMaxAPIMicroversion      = "MANILA_MAX_API_MICROVERSION"
	KeyShareNetwork            = "MANILA_SHARE_NETWORK"
	KeyShareType               = "MANILA_SHARE_TYPE"
	KeyEnableProtocols         = "MANILA_ENABLE_PROTOCOLS"
	KeyBuildInterval           = "MANILA_BUILD_INTERVAL"
	KeyBuildTimeout            = "MANILA_BUILD_TIMEOUT"
	KeySuppressErrorsInCleanup = "MANILA_SUPPRESS_ERRORS_IN_CLEANUP"
	KeyRegion                  = "MANILA_REGION"
	KeyOTLPEndpoint            = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// TestConfig is everything the functional tests need to know.
type TestConfig struct {
	// APIVersion is the manila API version to use, "2.latest" means the
	// newest supported.  When empty the API client uses version 2 and the
	// CLI its own default.
	APIVersion string
	// MinAPIMicroversion and MaxAPIMicroversion bound what tests may use.
	MinAPIMicroversion string
	MaxAPIMicroversion string
	// ShareNetwork is used for shares when none is given, some backends
	// require one.
	ShareNetwork string
	// ShareType is used for shares when none is given.
	ShareType string
	// EnableProtocols lists the share protocols under test, the first
	// is the default.
	EnableProtocols []string
	// BuildInterval is the time between status checks.
	BuildInterval time.Duration
	// BuildTimeout is how long to wait for a status change.
	BuildTimeout time.Duration
	// SuppressErrorsInCleanup stops any cleanup error failing a test.
	SuppressErrorsInCleanup bool
	// Region selects the manila endpoint from the catalog.
	Region string
	// ExecDir is where the manila CLI lives.
	ExecDir string
	// TestTimeout bounds each test, zero means no limit.
	TestTimeout time.Duration
	// StdoutCapture and StderrCapture keep CLI output out of the console.
	StdoutCapture bool
	StderrCapture bool
	// LogCapture sends logs to the test framework rather than stderr.
	LogCapture bool
	// OTLPEndpoint, if set, ships traces of API calls.
	OTLPEndpoint string
}

// DefaultProtocol is the protocol used when a test doesn't choose one.
func (c *TestConfig) DefaultProtocol() string {
	if len(c.EnableProtocols) == 0 {
		return ""
	}

	return c.EnableProtocols[0]
}

func defaultExecDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	return filepath.Join(cwd, ".tox", "functional", "bin")
}

// LoadTestConfig loads configuration from flags, environment variables and
// .env files using viper.  The flags may be nil.
func LoadTestConfig(flags *pflag.FlagSet) (*TestConfig, error) {
	// .env lives at the repository root, tests are run from their package
	// directories so look a couple of levels up too.
	configPaths := []string{
		".",
		"../..",
		"../../..",
	}

	return loadTestConfig(flags, configPaths)
}

func loadTestConfig(flags *pflag.FlagSet, configPaths []string) (*TestConfig, error) {
	defaults := map[string]any{
		KeyMinAPIMicroversion:      constants.MinAPIVersion,
		KeyMaxAPIMicroversion:      constants.MaxAPIVersion,
		KeyEnableProtocols:         "nfs,cifs",
		KeyBuildInterval:           "3s",
		KeyBuildTimeout:            "500s",
		KeySuppressErrorsInCleanup: true,
		EnvExecDir:                 defaultExecDir(),
	}

	v, err := SetupViper(".env", configPaths, defaults)
	if err != nil {
		return nil, err
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	config := &TestConfig{
		APIVersion:              v.GetString(KeyAPIVersion),
		MinAPIMicroversion:      v.GetString(KeyMinAPIMicroversion),
		MaxAPIMicroversion:      v.GetString(KeyMaxAPIMicroversion),
		ShareNetwork:            v.GetString(KeyShareNetwork),
		ShareType:               v.GetString(KeyShareType),
		EnableProtocols:         splitList(v.GetString(KeyEnableProtocols)),
		BuildInterval:           GetDurationFromViper(v, KeyBuildInterval, 3*time.Second),
		BuildTimeout:            GetDurationFromViper(v, KeyBuildTimeout, 500*time.Second),
		SuppressErrorsInCleanup: v.GetBool(KeySuppressErrorsInCleanup),
		Region:                  v.GetString(KeyRegion),
		ExecDir:                 v.GetString(EnvExecDir),
		TestTimeout:             testTimeout(v.GetString(EnvTestTimeout)),
		StdoutCapture:           enabled(v.GetString(EnvStdoutCapture)),
		StderrCapture:           enabled(v.GetString(EnvStderrCapture)),
		LogCapture:              !disabled(v.GetString(EnvLogCapture)),
		OTLPEndpoint:            v.GetString(KeyOTLPEndpoint),
	}

	required := map[string]string{
		KeyMinAPIMicroversion: config.MinAPIMicroversion,
		KeyMaxAPIMicroversion: config.MaxAPIMicroversion,
		KeyEnableProtocols:    config.DefaultProtocol(),
		EnvExecDir:            config.ExecDir,
	}

	if err := ValidateRequiredFields(required); err != nil {
		return nil, err
	}

	if config.BuildInterval <= 0 || config.BuildTimeout < config.BuildInterval {
		return nil, fmt.Errorf("%w: build interval %v must be positive and no longer than build timeout %v", ErrInvalidField, config.BuildInterval, config.BuildTimeout)
	}

	return config, nil
}

// SetupViper creates a viper instance that reads the named env file from the
// first of the paths it's found in, then lets the environment override it.
// A missing file is not an error.
func SetupViper(configName string, configPaths []string, defaults map[string]any) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("env")

	for _, path := range configPaths {
		v.AddConfigPath(path)
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s: %w", configName, err)
		}
	}

	return v, nil
}

// GetDurationFromViper reads a duration, a bare integer is taken as seconds.
func GetDurationFromViper(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(v.GetString(key))
	if value == "" {
		return defaultValue
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// ValidateRequiredFields checks that all the named values are set.
func ValidateRequiredFields(required map[string]string) error {
	var missing []string

	for key, value := range required {
		if value == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) != 0 {
		slices.Sort(missing)

		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	return nil
}

// testTimeout parses a timeout in whole seconds, anything that isn't a
// positive integer disables it.
func testTimeout(value string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds <= 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}

func enabled(value string) bool {
	return value == "True" || value == "1"
}

func disabled(value string) bool {
	return value == "False" || value == "0"
}

func splitList(value string) []string {
	var result []string

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}

	return result
}
