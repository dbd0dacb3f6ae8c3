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

package openstack

import (
	"context"
	"fmt"
	"time"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"

	"k8s.io/apimachinery/pkg/util/wait"
)

const (
	defaultBuildInterval = 3 * time.Second
	defaultBuildTimeout  = 500 * time.Second
)

// SharedFileSystemOptions control how the client talks to manila.
type SharedFileSystemOptions struct {
	// Region selects the catalog endpoint, empty picks the first one.
	Region string
	// Microversion is the default API microversion, used whenever a
	// call doesn't ask for a specific one.
	Microversion string
	// BuildInterval is the time between status checks.
	BuildInterval time.Duration
	// BuildTimeout is how long to wait for a status change in total.
	BuildTimeout time.Duration
}

func (o *SharedFileSystemOptions) buildInterval() time.Duration {
	if o == nil || o.BuildInterval <= 0 {
		return defaultBuildInterval
	}

	return o.BuildInterval
}

func (o *SharedFileSystemOptions) buildTimeout() time.Duration {
	if o == nil || o.BuildTimeout <= 0 {
		return defaultBuildTimeout
	}

	return o.BuildTimeout
}

// SharedFileSystemClient wraps the generic client because gophercloud is unsafe.
type SharedFileSystemClient struct {
	options *SharedFileSystemOptions
	client  *gophercloud.ServiceClient
}

// Ensure the interface is implemented.
var _ SharedFileSystemInterface = &SharedFileSystemClient{}

// NewSharedFileSystemClient provides a simple one-liner to start sharing.
func NewSharedFileSystemClient(ctx context.Context, provider CredentialProvider, options *SharedFileSystemOptions) (*SharedFileSystemClient, error) {
	providerClient, err := provider.Client(ctx)
	if err != nil {
		return nil, err
	}

	endpointOpts := gophercloud.EndpointOpts{}

	if options != nil {
		endpointOpts.Region = options.Region
	}

	client, err := openstack.NewSharedFileSystemV2(providerClient, endpointOpts)
	if err != nil {
		return nil, err
	}

	return NewSharedFileSystemClientFromServiceClient(client, options), nil
}

// NewSharedFileSystemClientFromServiceClient wraps an existing service client,
// typically one pointed at a fake API.
func NewSharedFileSystemClientFromServiceClient(client *gophercloud.ServiceClient, options *SharedFileSystemOptions) *SharedFileSystemClient {
	if options != nil && options.Microversion != "" {
		client.Microversion = options.Microversion
	}

	return &SharedFileSystemClient{
		options: options,
		client:  client,
	}
}

// Microversion returns the default microversion for calls.
func (c *SharedFileSystemClient) Microversion() string {
	return c.client.Microversion
}

// serviceClient returns a client bound to the requested microversion.
// The shared client is copied rather than mutated, so one call cannot
// leak its version into another.
func (c *SharedFileSystemClient) serviceClient(microversion string) *gophercloud.ServiceClient {
	if microversion == "" || microversion == c.client.Microversion {
		return c.client
	}

	client := *c.client
	client.Microversion = microversion

	return &client
}

// poll runs the condition until it's done, errors, or the build timeout
// expires.
func (c *SharedFileSystemClient) poll(ctx context.Context, what string, condition wait.ConditionWithContextFunc) error {
	if err := wait.PollUntilContextTimeout(ctx, c.options.buildInterval(), c.options.buildTimeout(), true, condition); err != nil {
		if wait.Interrupted(err) {
			return fmt.Errorf("%w: %s", ErrTimeout, what)
		}

		return err
	}

	return nil
}

// waitForDeletion polls a getter until it reports not found.
func (c *SharedFileSystemClient) waitForDeletion(ctx context.Context, what string, get func(ctx context.Context) error) error {
	return c.poll(ctx, what+" deletion", func(ctx context.Context) (bool, error) {
		if err := get(ctx); err != nil {
			if IsNotFound(err) {
				return true, nil
			}

			return false, err
		}

		return false, nil
	})
}
