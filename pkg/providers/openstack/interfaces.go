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

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/securityservices"
	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/sharenetworks"
	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/shares"
	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/sharetypes"
)

type ShareInterface interface {
	CreateShare(ctx context.Context, opts *shares.CreateOpts, microversion string) (*shares.Share, error)
	GetShare(ctx context.Context, id, microversion string) (*shares.Share, error)
	DeleteShare(ctx context.Context, id, microversion string) error
	WaitForShareStatus(ctx context.Context, id, status, microversion string) error
	WaitForShareDeletion(ctx context.Context, id, microversion string) error
}

type ShareNetworkInterface interface {
	CreateShareNetwork(ctx context.Context, opts *ShareNetworkCreateOpts, microversion string) (*sharenetworks.ShareNetwork, error)
	GetShareNetwork(ctx context.Context, id, microversion string) (*sharenetworks.ShareNetwork, error)
	DeleteShareNetwork(ctx context.Context, id, microversion string) error
	WaitForShareNetworkDeletion(ctx context.Context, id, microversion string) error
}

type ShareTypeInterface interface {
	CreateShareType(ctx context.Context, opts *sharetypes.CreateOpts, microversion string) (*sharetypes.ShareType, error)
	ListShareTypes(ctx context.Context, microversion string) ([]sharetypes.ShareType, error)
	DeleteShareType(ctx context.Context, id, microversion string) error
	WaitForShareTypeDeletion(ctx context.Context, id, microversion string) error
}

type SecurityServiceInterface interface {
	CreateSecurityService(ctx context.Context, opts *securityservices.CreateOpts, microversion string) (*securityservices.SecurityService, error)
	GetSecurityService(ctx context.Context, id, microversion string) (*securityservices.SecurityService, error)
	DeleteSecurityService(ctx context.Context, id, microversion string) error
	WaitForSecurityServiceDeletion(ctx context.Context, id, microversion string) error
}

type SharedFileSystemInterface interface {
	ShareInterface
	ShareNetworkInterface
	ShareTypeInterface
	SecurityServiceInterface
}
