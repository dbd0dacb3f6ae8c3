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
	"fmt"
)

// Kind is the type of a resource that can be cleaned up.
type Kind int

const (
	// KindUnknown is the zero value and is never cleaned up.
	KindUnknown Kind = iota
	KindShare
	KindShareNetwork
	KindShareType
	KindSecurityService
)

func (k Kind) String() string {
	switch k {
	case KindShare:
		return "share"
	case KindShareNetwork:
		return "share_network"
	case KindShareType:
		return "share_type"
	case KindSecurityService:
		return "security_service"
	case KindUnknown:
		return "unknown"
	}

	return fmt.Sprintf("unknown(%d)", int(k))
}

// Scope determines when a resource gets cleaned up.
type Scope int

const (
	// ScopeMethod resources are deleted after every test.
	ScopeMethod Scope = iota
	// ScopeClass resources live until the whole suite is torn down.
	ScopeClass
)

func (s Scope) String() string {
	if s == ScopeClass {
		return "class"
	}

	return "method"
}

// Client is the subset of the API client used to delete things.
type Client interface {
	DeleteShare(ctx context.Context, id, microversion string) error
	WaitForShareDeletion(ctx context.Context, id, microversion string) error
	DeleteShareNetwork(ctx context.Context, id, microversion string) error
	WaitForShareNetworkDeletion(ctx context.Context, id, microversion string) error
	DeleteShareType(ctx context.Context, id, microversion string) error
	WaitForShareTypeDeletion(ctx context.Context, id, microversion string) error
	DeleteSecurityService(ctx context.Context, id, microversion string) error
	WaitForSecurityServiceDeletion(ctx context.Context, id, microversion string) error
}

// ClientLookupFunc provides a client for resources that were registered
// without one.
type ClientLookupFunc func(ctx context.Context) (Client, error)

// Resource describes something created by a test that needs deleting.
type Resource struct {
	// Kind selects the delete and wait operations.
	Kind Kind
	// ID is the API identifier.
	ID string
	// Client is the client that created the resource, if nil one is
	// looked up at cleanup time.
	Client Client
	// Microversion is passed to the delete and wait calls, empty uses
	// the client's default.
	Microversion string
	// Deleted is set once a cleanup attempt has finished with the
	// resource, so it's never tried twice.
	Deleted bool
}

func (r *Resource) String() string {
	return fmt.Sprintf("%s %s", r.Kind, r.ID)
}
