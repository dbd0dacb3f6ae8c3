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

package functional

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"

	"github.com/unikorn-cloud/manila/pkg/testing/config"
	"github.com/unikorn-cloud/manila/pkg/testing/microversion"

	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// UniqueName generates a resource name that won't collide with other runs.
func UniqueName(prefix string) string {
	return fmt.Sprintf("manila-functional-%s-%s", prefix, uuid.NewString()[:8])
}

// IsMicroversionSupported reports whether the configuration allows tests
// to use the microversion.
func IsMicroversionSupported(config *config.TestConfig, version string) (bool, error) {
	return microversion.IsSupported(config.MinAPIMicroversion, config.MaxAPIMicroversion, version)
}

// SkipIfMicroversionNotSupported skips the current spec when the
// microversion is outside the configured range.
func SkipIfMicroversionNotSupported(config *config.TestConfig, version string) {
	supported, err := IsMicroversionSupported(config, version)
	if err != nil {
		ginkgo.Fail(err.Error())
	}

	if !supported {
		ginkgo.Skip(fmt.Sprintf("Skipped. Test requires microversion %s that is not allowed to be used by configuration.", version))
	}
}

// NewLogger returns a logger for Ginkgo suites, either captured by Ginkgo
// and only shown for failures, or written straight to stderr.
func NewLogger(config *config.TestConfig) logr.Logger {
	if config.LogCapture {
		return ginkgo.GinkgoLogr
	}

	return zap.New(zap.UseDevMode(true), zap.WriteTo(os.Stderr))
}

// SuiteOptions returns the suite options implied by the configuration for
// a Ginkgo suite.
func SuiteOptions(config *config.TestConfig) []Option {
	var stdout, stderr io.Writer = os.Stdout, os.Stderr

	if config.StdoutCapture {
		stdout = ginkgo.GinkgoWriter
	}

	if config.StderrCapture {
		stderr = ginkgo.GinkgoWriter
	}

	return []Option{
		WithLogger(NewLogger(config)),
		WithOutput(stdout, stderr),
	}
}
