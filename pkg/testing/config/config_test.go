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
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/manila/pkg/constants"
)

//nolint:gochecknoglobals
var allKeys = []string{
	KeyAPIVersion,
	KeyMinAPIMicroversion,
	KeyMaxAPIMicroversion,
	KeyShareNetwork,
	KeyShareType,
	KeyEnableProtocols,
	KeyBuildInterval,
	KeyBuildTimeout,
	KeySuppressErrorsInCleanup,
	KeyRegion,
	KeyOTLPEndpoint,
	EnvTestTimeout,
	EnvStdoutCapture,
	EnvStderrCapture,
	EnvLogCapture,
	EnvExecDir,
}

// clearEnvironment blanks anything the host may have set, viper ignores
// empty variables.
func clearEnvironment(t *testing.T) {
	t.Helper()

	for _, key := range allKeys {
		t.Setenv(key, "")
	}
}

// TestDefaults tests the configuration when nothing is set.
func TestDefaults(t *testing.T) {
	clearEnvironment(t)

	config, err := loadTestConfig(nil, []string{t.TempDir()})
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	require.Empty(t, config.APIVersion)
	require.Equal(t, constants.MinAPIVersion, config.MinAPIMicroversion)
	require.Equal(t, constants.MaxAPIVersion, config.MaxAPIMicroversion)
	require.Equal(t, []string{"nfs", "cifs"}, config.EnableProtocols)
	require.Equal(t, "nfs", config.DefaultProtocol())
	require.Equal(t, 3*time.Second, config.BuildInterval)
	require.Equal(t, 500*time.Second, config.BuildTimeout)
	require.True(t, config.SuppressErrorsInCleanup)
	require.Equal(t, filepath.Join(cwd, ".tox", "functional", "bin"), config.ExecDir)
	require.Zero(t, config.TestTimeout)
	require.False(t, config.StdoutCapture)
	require.False(t, config.StderrCapture)
	require.True(t, config.LogCapture)
	require.Empty(t, config.ShareNetwork)
	require.Empty(t, config.ShareType)
}

// TestEnvironment tests the environment overrides defaults.
func TestEnvironment(t *testing.T) {
	clearEnvironment(t)

	t.Setenv(KeyAPIVersion, "2.latest")
	t.Setenv(KeyShareNetwork, "net")
	t.Setenv(KeyShareType, "default")
	t.Setenv(KeyEnableProtocols, " cephfs , nfs,")
	t.Setenv(KeyBuildInterval, "1")
	t.Setenv(KeyBuildTimeout, "2m")
	t.Setenv(KeySuppressErrorsInCleanup, "false")
	t.Setenv(EnvTestTimeout, "60")
	t.Setenv(EnvStdoutCapture, "True")
	t.Setenv(EnvStderrCapture, "1")
	t.Setenv(EnvLogCapture, "False")
	t.Setenv(EnvExecDir, "/opt/manila/bin")

	config, err := loadTestConfig(nil, []string{t.TempDir()})
	require.NoError(t, err)

	require.Equal(t, "2.latest", config.APIVersion)
	require.Equal(t, "net", config.ShareNetwork)
	require.Equal(t, "default", config.ShareType)
	require.Equal(t, []string{"cephfs", "nfs"}, config.EnableProtocols)
	require.Equal(t, time.Second, config.BuildInterval)
	require.Equal(t, 2*time.Minute, config.BuildTimeout)
	require.False(t, config.SuppressErrorsInCleanup)
	require.Equal(t, time.Minute, config.TestTimeout)
	require.True(t, config.StdoutCapture)
	require.True(t, config.StderrCapture)
	require.False(t, config.LogCapture)
	require.Equal(t, "/opt/manila/bin", config.ExecDir)
}

// TestTestTimeout tests only positive integers enable a test timeout.
func TestTestTimeout(t *testing.T) {
	t.Parallel()

	require.Equal(t, 10*time.Second, testTimeout("10"))
	require.Zero(t, testTimeout("0"))
	require.Zero(t, testTimeout("-5"))
	require.Zero(t, testTimeout("ten"))
	require.Zero(t, testTimeout(""))
}

// TestLogCapture tests log capture is only disabled explicitly.
func TestLogCapture(t *testing.T) {
	t.Parallel()

	require.True(t, disabled("False"))
	require.True(t, disabled("0"))
	require.False(t, disabled("false"))
	require.False(t, disabled(""))
	require.False(t, disabled("yes"))
}

// TestEnvFile tests settings are read from a .env file.
func TestEnvFile(t *testing.T) {
	clearEnvironment(t)

	dir := t.TempDir()

	data := []byte("MANILA_SHARE_TYPE=from-file\nMANILA_REGION=RegionTwo\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), data, 0o600))

	t.Setenv(KeyRegion, "RegionOne")

	config, err := loadTestConfig(nil, []string{dir})
	require.NoError(t, err)

	require.Equal(t, "from-file", config.ShareType)
	require.Equal(t, "RegionOne", config.Region)
}

// TestFlags tests flags take precedence and unset flags don't mask defaults.
func TestFlags(t *testing.T) {
	clearEnvironment(t)

	t.Setenv(KeyShareType, "from-env")
	t.Setenv(KeyShareNetwork, "from-env")

	options := &Options{}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	options.AddFlags(flags)

	require.NoError(t, flags.Parse([]string{"--manila-share-type=from-flag", "--manila-build-timeout=30"}))

	config, err := loadTestConfig(flags, []string{t.TempDir()})
	require.NoError(t, err)

	require.Equal(t, "from-flag", config.ShareType)
	require.Equal(t, "from-env", config.ShareNetwork)
	require.Equal(t, 30*time.Second, config.BuildTimeout)
	require.Equal(t, 3*time.Second, config.BuildInterval)
	require.True(t, config.SuppressErrorsInCleanup)
}

// TestGoFlags tests flags set through go test's flag set override the
// environment, and untouched flags don't.
func TestGoFlags(t *testing.T) {
	clearEnvironment(t)

	t.Setenv(KeyShareNetwork, "from-env")
	t.Setenv(KeyAPIVersion, "2.40")

	options := &Options{}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	options.AddFlags(flags)

	goflags := flag.NewFlagSet("go-test", flag.ContinueOnError)
	RegisterGoFlags(flags, goflags)

	require.NoError(t, goflags.Parse([]string{"-manila-api-version=2.51", "-manila-suppress-errors-in-cleanup=false"}))
	require.Equal(t, "2.51", options.APIVersion)
	require.True(t, flags.Changed("manila-api-version"))
	require.False(t, flags.Changed("manila-share-network"))

	config, err := loadTestConfig(flags, []string{t.TempDir()})
	require.NoError(t, err)

	require.Equal(t, "2.51", config.APIVersion)
	require.Equal(t, "from-env", config.ShareNetwork)
	require.False(t, config.SuppressErrorsInCleanup)
}

// TestInvalidBuildTimes tests a timeout shorter than the interval is rejected.
func TestInvalidBuildTimes(t *testing.T) {
	clearEnvironment(t)

	t.Setenv(KeyBuildInterval, "10s")
	t.Setenv(KeyBuildTimeout, "5s")

	_, err := loadTestConfig(nil, []string{t.TempDir()})
	require.ErrorIs(t, err, ErrInvalidField)
}

// TestMissingProtocols tests an empty protocol list is rejected.
func TestMissingProtocols(t *testing.T) {
	clearEnvironment(t)

	t.Setenv(KeyEnableProtocols, ",")

	_, err := loadTestConfig(nil, []string{t.TempDir()})
	require.ErrorIs(t, err, ErrMissingField)
}

// TestValidateRequiredFields tests missing fields are all reported.
func TestValidateRequiredFields(t *testing.T) {
	t.Parallel()

	err := ValidateRequiredFields(map[string]string{
		"B": "",
		"A": "",
		"C": "set",
	})
	require.ErrorIs(t, err, ErrMissingField)
	require.ErrorContains(t, err, "A, B")
}
