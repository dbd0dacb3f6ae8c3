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

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/shlex"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	// ErrCommandFailed is returned when a command exits non-zero and
	// failure wasn't expected.
	ErrCommandFailed = errors.New("command failed")
)

const (
	// ManilaCommand is the name of the CLI binary.
	ManilaCommand = "manila"

	// DefaultEndpointType is the catalog interface used by the CLI.
	DefaultEndpointType = "publicURL"
)

// CommandError records what happened when a command failed.
type CommandError struct {
	// Command is the command line, without credentials.
	Command string
	// ExitCode is the return code.
	ExitCode int
	// Stdout and Stderr are the captured output.
	Stdout string
	Stderr string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %q returned exit code %d: %s", ErrCommandFailed.Error(), e.Command, e.ExitCode, strings.TrimSpace(e.Stderr))
}

func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}

// Client runs OpenStack CLI commands with a fixed set of credentials.
type Client struct {
	username   string
	password   string
	tenantName string
	uri        string
	cliDir     string

	// stdout and stderr, when set, receive a copy of command output.
	stdout io.Writer
	stderr io.Writer
}

// NewClient creates a CLI client that runs binaries from cliDir.
func NewClient(username, password, tenantName, uri, cliDir string) *Client {
	return &Client{
		username:   username,
		password:   password,
		tenantName: tenantName,
		uri:        uri,
		cliDir:     cliDir,
	}
}

// WithOutput copies command output to the given writers, either may be nil.
func (c *Client) WithOutput(stdout, stderr io.Writer) *Client {
	c.stdout = stdout
	c.stderr = stderr

	return c
}

// Dir returns the directory commands are run from.
func (c *Client) Dir() string {
	return c.cliDir
}

type options struct {
	flags        string
	params       string
	failOK       bool
	endpointType string
	mergeStderr  bool
}

// Option modifies how a command is run.
type Option func(*options)

// WithFlags adds global flags, these precede the action.
func WithFlags(flags string) Option {
	return func(o *options) {
		if o.flags == "" {
			o.flags = flags
			return
		}

		o.flags += " " + flags
	}
}

// WithParams adds the action's parameters.
func WithParams(params string) Option {
	return func(o *options) {
		o.params = params
	}
}

// WithFailOK returns output rather than an error on a non-zero exit.
func WithFailOK() Option {
	return func(o *options) {
		o.failOK = true
	}
}

// WithEndpointType selects the catalog interface to use.
func WithEndpointType(endpointType string) Option {
	return func(o *options) {
		o.endpointType = endpointType
	}
}

// WithMergeStderr includes stderr in the returned output.
func WithMergeStderr() Option {
	return func(o *options) {
		o.mergeStderr = true
	}
}

// Manila runs the manila CLI and returns its output.
func (c *Client) Manila(ctx context.Context, action string, opts ...Option) (string, error) {
	return c.Run(ctx, ManilaCommand, action, opts...)
}

// Run runs a CLI binary from the client's directory with credentials, then
// the flags, the action and finally the parameters.
func (c *Client) Run(ctx context.Context, command, action string, opts ...Option) (string, error) {
	log := log.FromContext(ctx)

	o := &options{
		endpointType: DefaultEndpointType,
	}

	for _, opt := range opts {
		opt(o)
	}

	flags, err := shlex.Split(o.flags)
	if err != nil {
		return "", fmt.Errorf("failed to parse flags %q: %w", o.flags, err)
	}

	actions, err := shlex.Split(action)
	if err != nil {
		return "", fmt.Errorf("failed to parse action %q: %w", action, err)
	}

	params, err := shlex.Split(o.params)
	if err != nil {
		return "", fmt.Errorf("failed to parse params %q: %w", o.params, err)
	}

	credentials := []string{
		"--os-username", c.username,
		"--os-tenant-name", c.tenantName,
		"--os-password", c.password,
		"--os-auth-url", c.uri,
		"--endpoint-type", o.endpointType,
	}

	public := make([]string, 0, len(flags)+len(actions)+len(params))
	public = append(public, flags...)
	public = append(public, actions...)
	public = append(public, params...)

	args := make([]string, 0, len(credentials)+len(public))
	args = append(args, credentials...)
	args = append(args, public...)

	path := filepath.Join(c.cliDir, command)

	commandLine := strings.Join(append([]string{path}, public...), " ")

	log.V(1).Info("running command", "command", commandLine)

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = tee(&stdout, c.stdout)

	// A shared writer is only written by one goroutine at a time.
	if o.mergeStderr {
		cmd.Stderr = cmd.Stdout
	} else {
		cmd.Stderr = tee(&stderr, c.stderr)
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("failed to run %s: %w", path, err)
		}

		if !o.failOK {
			return "", &CommandError{
				Command:  commandLine,
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
		}

		log.V(1).Info("command failed as permitted", "command", commandLine, "exitCode", exitErr.ExitCode())
	}

	return stdout.String(), nil
}

func tee(buffer *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buffer
	}

	return io.MultiWriter(buffer, w)
}
