//go:build integration
// +build integration

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

//nolint:gochecknoglobals,gochecknoinits,revive,paralleltest,testpackage // global vars and dot imports standard for Ginkgo
package suites

import (
	"context"
	"flag"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/unikorn-cloud/manila/pkg/testing/config"
	"github.com/unikorn-cloud/manila/pkg/testing/tracing"
	"github.com/unikorn-cloud/manila/test/functional"
)

var (
	ctx            context.Context
	testConfig     *config.TestConfig
	suite          *functional.Suite
	tracerProvider *trace.TracerProvider

	options = &config.Options{}
	flags   = pflag.NewFlagSet("manila", pflag.ContinueOnError)
)

// Flags are passed after -args, e.g. -args -manila-api-version=2.51.
func init() {
	options.AddFlags(flags)
	config.RegisterGoFlags(flags, flag.CommandLine)
}

var _ = BeforeSuite(func() {
	var err error

	testConfig, err = config.LoadTestConfig(flags)
	Expect(err).NotTo(HaveOccurred(), "Failed to load test configuration")

	logger := functional.NewLogger(testConfig)

	tracerProvider, err = tracing.Setup(context.Background(), logger, testConfig.OTLPEndpoint)
	Expect(err).NotTo(HaveOccurred(), "Failed to set up tracing")

	suite, err = functional.NewSuite(context.Background(), testConfig, functional.SuiteOptions(testConfig)...)
	Expect(err).NotTo(HaveOccurred(), "Failed to set up the test suite")

	DeferCleanup(func() {
		Expect(suite.TearDownSuite(context.Background())).To(Succeed())
		Expect(tracerProvider.Shutdown(context.Background())).To(Succeed())
	})
})

var _ = BeforeEach(func() {
	var cancel context.CancelFunc

	ctx, cancel = suite.SetUpTest(context.Background())

	DeferCleanup(func() {
		defer cancel()

		Expect(suite.TearDownTest(context.Background())).To(Succeed())
	})
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Manila Functional Test Suites")
}
