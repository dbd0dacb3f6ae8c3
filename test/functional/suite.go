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
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/unikorn-cloud/manila/pkg/constants"
	"github.com/unikorn-cloud/manila/pkg/providers/openstack"
	"github.com/unikorn-cloud/manila/pkg/testing/cleanup"
	"github.com/unikorn-cloud/manila/pkg/testing/cli"
	"github.com/unikorn-cloud/manila/pkg/testing/cloudconfig"
	"github.com/unikorn-cloud/manila/pkg/testing/config"
	"github.com/unikorn-cloud/manila/pkg/testing/microversion"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

type options struct {
	client      openstack.SharedFileSystemInterface
	cli         *cli.Client
	credentials *cloudconfig.Credentials
	logger      *logr.Logger
	stdout      io.Writer
	stderr      io.Writer
}

// Option customizes a suite.
type Option func(*options)

// WithClient uses the given API client rather than one built from the
// cloud configuration.
func WithClient(client openstack.SharedFileSystemInterface) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithCLI uses the given CLI client.
func WithCLI(client *cli.Client) Option {
	return func(o *options) {
		o.cli = client
	}
}

// WithCredentials skips cloud configuration lookup.
func WithCredentials(credentials *cloudconfig.Credentials) Option {
	return func(o *options) {
		o.credentials = credentials
	}
}

// WithLogger sets the logger installed by SetUpTest.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

// WithOutput sets where CLI output is copied to, typically the test
// framework's writer when capturing, the console otherwise.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// Suite is shared by all tests in a test suite.
type Suite struct {
	config     *config.TestConfig
	apiVersion string
	client     openstack.SharedFileSystemInterface
	cli        *cli.Client
	registry   *cleanup.Registry
	logger     logr.Logger
}

// NewSuite resolves credentials and creates the clients for a test suite.
func NewSuite(ctx context.Context, config *config.TestConfig, opts ...Option) (*Suite, error) {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	logger := zap.New(zap.UseDevMode(true))
	if o.logger != nil {
		logger = *o.logger
	}

	ctx = log.IntoContext(ctx, logger)

	apiVersion := microversion.Normalize(config.APIVersion)

	if _, err := microversion.Parse(apiVersion); err != nil {
		return nil, fmt.Errorf("invalid API version: %w", err)
	}

	s := &Suite{
		config:     config,
		apiVersion: apiVersion,
		client:     o.client,
		cli:        o.cli,
		logger:     logger,
	}

	credentials := o.credentials

	if credentials == nil && (s.client == nil || s.cli == nil) {
		resolved, err := cloudconfig.Resolve(ctx)
		if err != nil {
			return nil, err
		}

		credentials = resolved
	}

	if s.client == nil {
		region := config.Region
		if region == "" {
			region = credentials.Region
		}

		clientOptions := &openstack.SharedFileSystemOptions{
			Region:        region,
			Microversion:  apiVersion,
			BuildInterval: config.BuildInterval,
			BuildTimeout:  config.BuildTimeout,
		}

		client, err := openstack.NewSharedFileSystemClient(ctx, credentials.Provider(), clientOptions)
		if err != nil {
			return nil, err
		}

		s.client = client
	}

	if s.cli == nil {
		s.cli = cli.NewClient(credentials.Username, credentials.Password, credentials.ProjectName, credentials.AuthURL, config.ExecDir).WithOutput(o.stdout, o.stderr)
	}

	policy := cleanup.Policy{
		SuppressAll: config.SuppressErrorsInCleanup,
	}

	s.registry = cleanup.NewRegistry(policy, s.cleanupClient)

	return s, nil
}

func (s *Suite) cleanupClient(_ context.Context) (cleanup.Client, error) {
	return s.client, nil
}

// Config returns the test configuration.
func (s *Suite) Config() *config.TestConfig {
	return s.config
}

// APIVersion is the microversion the API client uses by default.
func (s *Suite) APIVersion() string {
	return s.apiVersion
}

// Client returns the API client.
func (s *Suite) Client() openstack.SharedFileSystemInterface {
	return s.client
}

// CLI returns the command line client.
func (s *Suite) CLI() *cli.Client {
	return s.cli
}

// Registry returns the resources awaiting cleanup.
func (s *Suite) Registry() *cleanup.Registry {
	return s.registry
}

// Logger returns the suite's logger.
func (s *Suite) Logger() logr.Logger {
	return s.logger
}

// withLogger installs the suite's logger in the context.
func (s *Suite) withLogger(ctx context.Context) context.Context {
	return log.IntoContext(ctx, s.logger)
}

// SetUpTest prepares a context for a single test, bounded by the test
// timeout if there is one.  The cancel function must always be called.
func (s *Suite) SetUpTest(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = s.withLogger(ctx)

	if s.config.TestTimeout > 0 {
		return context.WithTimeout(ctx, s.config.TestTimeout)
	}

	return context.WithCancel(ctx)
}

// TearDownTest removes everything the test registered for method cleanup.
func (s *Suite) TearDownTest(ctx context.Context) error {
	return s.registry.ClearMethod(s.withLogger(ctx))
}

// TearDownSuite removes everything registered for class cleanup.
func (s *Suite) TearDownSuite(ctx context.Context) error {
	return s.registry.ClearClass(s.withLogger(ctx))
}

// Manila runs the manila CLI, selecting the configured API version if any.
func (s *Suite) Manila(ctx context.Context, action string, opts ...cli.Option) (string, error) {
	if s.config.APIVersion != "" {
		opts = append(opts, cli.WithFlags(constants.ManilaAPIVersionFlag+" "+s.config.APIVersion))
	}

	return s.cli.Manila(s.withLogger(ctx), action, opts...)
}
