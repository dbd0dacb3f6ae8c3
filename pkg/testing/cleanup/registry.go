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

package cleanup

import (
	"context"
	"errors"
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	// ErrUnsupportedKind is raised when asked to delete something we
	// don't know how to.
	ErrUnsupportedKind = errors.New("unsupported resource kind")

	// ErrClientLookup is raised when no client can be found to delete
	// a resource with.
	ErrClientLookup = errors.New("cleanup client lookup failed")
)

// Registry remembers resources created by tests so they can be removed
// again.  Resources are kept newest first, later resources may depend on
// earlier ones e.g. a share in a share network, so must go first.
// A registry belongs to a single suite and is not safe for concurrent use.
type Registry struct {
	policy Policy
	lookup ClientLookupFunc

	class  []*Resource
	method []*Resource
}

// NewRegistry creates an empty registry.  The lookup function may be nil
// if every resource will carry its own client.
func NewRegistry(policy Policy, lookup ClientLookupFunc) *Registry {
	return &Registry{
		policy: policy,
		lookup: lookup,
	}
}

// Add registers a resource for cleanup at the front of the scope's list.
func (r *Registry) Add(scope Scope, resource *Resource) {
	if scope == ScopeClass {
		r.class = append([]*Resource{resource}, r.class...)
		return
	}

	r.method = append([]*Resource{resource}, r.method...)
}

// Resources returns the resources currently registered in a scope, in
// cleanup order.
func (r *Registry) Resources(scope Scope) []*Resource {
	if scope == ScopeClass {
		return r.class
	}

	return r.method
}

// ClearMethod deletes everything created by the current test.  Anything
// that could not be deleted stays in the method scope.
func (r *Registry) ClearMethod(ctx context.Context) error {
	remaining, err := r.clearScope(ctx, r.method)
	r.method = remaining

	return err
}

// ClearClass deletes everything created for the suite.  Anything that
// could not be deleted stays in the class scope.
func (r *Registry) ClearClass(ctx context.Context) error {
	remaining, err := r.clearScope(ctx, r.class)
	r.class = remaining

	return err
}

// ClearResources attempts to delete every resource in order, a nil list
// means the method scope.  Each resource is deleted and waited for under
// the cleanup policy, anything not found is assumed to have been deleted
// by the test itself.  A failure does not stop the remaining resources
// being attempted, all unsuppressed errors are returned together and the
// failed resources are left marked as not deleted.
func (r *Registry) ClearResources(ctx context.Context, resources []*Resource) error {
	if resources == nil {
		resources = r.method
	}

	return r.clearAll(ctx, resources)
}

// clearScope clears a scope's resources and returns those still
// outstanding, in their original order.
func (r *Registry) clearScope(ctx context.Context, resources []*Resource) ([]*Resource, error) {
	err := r.clearAll(ctx, resources)

	var remaining []*Resource

	for _, resource := range resources {
		if !resource.Deleted {
			remaining = append(remaining, resource)
		}
	}

	return remaining, err
}

func (r *Registry) clearAll(ctx context.Context, resources []*Resource) error {
	var errs []error

	for _, resource := range resources {
		if resource.Deleted {
			continue
		}

		if err := r.clear(ctx, resource); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", resource, err))
			continue
		}

		resource.Deleted = true
	}

	return errors.Join(errs...)
}

func (r *Registry) clear(ctx context.Context, resource *Resource) error {
	logger := log.FromContext(ctx).WithValues("kind", resource.Kind.String(), "id", resource.ID)

	ops, err := resource.Kind.operations()
	if err != nil {
		logger.Info("skipping cleanup", "reason", err.Error())

		return nil
	}

	if resource.Client == nil {
		client, err := r.client(ctx)
		if err != nil {
			return err
		}

		resource.Client = client
	}

	ctx = log.IntoContext(ctx, logger)

	return r.policy.Handle(ctx, func(ctx context.Context) error {
		if err := ops.remove(resource.Client, ctx, resource.ID, resource.Microversion); err != nil {
			return err
		}

		return ops.wait(resource.Client, ctx, resource.ID, resource.Microversion)
	})
}

func (r *Registry) client(ctx context.Context) (Client, error) {
	if r.lookup == nil {
		return nil, fmt.Errorf("%w: no lookup configured", ErrClientLookup)
	}

	client, err := r.lookup(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClientLookup, err)
	}

	return client, nil
}

//nolint:revive // receiver comes first so method expressions can be used.
type operation func(client Client, ctx context.Context, id, microversion string) error

// operations pairs the delete and wait calls for a kind.
type operations struct {
	remove operation
	wait   operation
}

func (k Kind) operations() (*operations, error) {
	switch k {
	case KindShare:
		return &operations{remove: Client.DeleteShare, wait: Client.WaitForShareDeletion}, nil
	case KindShareNetwork:
		return &operations{remove: Client.DeleteShareNetwork, wait: Client.WaitForShareNetworkDeletion}, nil
	case KindShareType:
		return &operations{remove: Client.DeleteShareType, wait: Client.WaitForShareTypeDeletion}, nil
	case KindSecurityService:
		return &operations{remove: Client.DeleteSecurityService, wait: Client.WaitForSecurityServiceDeletion}, nil
	case KindUnknown:
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
}
