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

	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/securityservices"
	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/sharenetworks"
	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/shares"
	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/sharetypes"

	"github.com/unikorn-cloud/manila/pkg/constants"
	"github.com/unikorn-cloud/manila/pkg/providers/openstack"
	"github.com/unikorn-cloud/manila/pkg/testing/cleanup"

	"k8s.io/utils/ptr"
)

// DefaultSecurityServiceType is used when none is requested.
const DefaultSecurityServiceType = securityservices.LDAP

// ShareTypeOptions describe a share type, unset fields take defaults.
type ShareTypeOptions struct {
	// Name defaults to a unique generated name.
	Name string
	// DriverHandlesShareServers defaults to true.
	DriverHandlesShareServers *bool
	// SnapshotSupport defaults to true.
	SnapshotSupport *bool
	// IsPublic defaults to true.
	IsPublic *bool
	// Client defaults to the suite's client.
	Client openstack.SharedFileSystemInterface
	// CleanupInClass defaults to true.
	CleanupInClass *bool
	// Microversion defaults to the client's.
	Microversion string
}

// ShareNetworkOptions describe a share network.
type ShareNetworkOptions struct {
	Name            string
	Description     string
	NovaNetID       string
	NeutronNetID    string
	NeutronSubnetID string
	// Client defaults to the suite's client.
	Client openstack.SharedFileSystemInterface
	// CleanupInClass defaults to true.
	CleanupInClass *bool
	// Microversion defaults to the client's.
	Microversion string
}

// ShareOptions describe a share.
type ShareOptions struct {
	// Protocol defaults to the first enabled protocol.
	Protocol string
	// Size is in GiB and defaults to 1.
	Size int
	// ShareNetwork defaults to the configured share network.
	ShareNetwork string
	// ShareType defaults to the configured share type.
	ShareType   string
	Name        string
	Description string
	// Public defaults to false.
	Public     *bool
	SnapshotID string
	Metadata   map[string]string
	// Client defaults to the suite's client.
	Client openstack.SharedFileSystemInterface
	// CleanupInClass defaults to false.
	CleanupInClass *bool
	// WaitForCreation defaults to true.
	WaitForCreation *bool
	// Microversion defaults to the client's.
	Microversion string
}

// SecurityServiceOptions describe a security service.
type SecurityServiceOptions struct {
	// Type defaults to ldap.
	Type        securityservices.SecurityServiceType
	Name        string
	Description string
	DNSIP       string
	Server      string
	Domain      string
	User        string
	Password    string
	// Client defaults to the suite's client.
	Client openstack.SharedFileSystemInterface
	// CleanupInClass defaults to false.
	CleanupInClass *bool
	// Microversion defaults to the client's.
	Microversion string
}

func (s *Suite) clientOrDefault(client openstack.SharedFileSystemInterface) openstack.SharedFileSystemInterface {
	if client == nil {
		return s.client
	}

	return client
}

func scope(cleanupInClass *bool, defaultValue bool) cleanup.Scope {
	if ptr.Deref(cleanupInClass, defaultValue) {
		return cleanup.ScopeClass
	}

	return cleanup.ScopeMethod
}

// register records a new resource for cleanup with the client and
// microversion that created it.
func (s *Suite) register(scope cleanup.Scope, kind cleanup.Kind, id string, client openstack.SharedFileSystemInterface, microversion string) {
	s.registry.Add(scope, &cleanup.Resource{
		Kind:         kind,
		ID:           id,
		Client:       client,
		Microversion: microversion,
	})
}

// CreateShareType creates a share type, by default removed when the suite
// finishes.
func (s *Suite) CreateShareType(ctx context.Context, options *ShareTypeOptions) (*sharetypes.ShareType, error) {
	if options == nil {
		options = &ShareTypeOptions{}
	}

	client := s.clientOrDefault(options.Client)

	name := options.Name
	if name == "" {
		name = UniqueName("share-type")
	}

	opts := &sharetypes.CreateOpts{
		Name:     name,
		IsPublic: ptr.Deref(options.IsPublic, true),
		ExtraSpecs: sharetypes.ExtraSpecsOpts{
			DriverHandlesShareServers: ptr.Deref(options.DriverHandlesShareServers, true),
			SnapshotSupport:           ptr.To(ptr.Deref(options.SnapshotSupport, true)),
		},
	}

	shareType, err := client.CreateShareType(s.withLogger(ctx), opts, options.Microversion)
	if err != nil {
		return nil, err
	}

	s.register(scope(options.CleanupInClass, true), cleanup.KindShareType, shareType.ID, client, options.Microversion)

	return shareType, nil
}

// CreateShareNetwork creates a share network, by default removed when the
// suite finishes.
func (s *Suite) CreateShareNetwork(ctx context.Context, options *ShareNetworkOptions) (*sharenetworks.ShareNetwork, error) {
	if options == nil {
		options = &ShareNetworkOptions{}
	}

	client := s.clientOrDefault(options.Client)

	opts := &openstack.ShareNetworkCreateOpts{
		Name:            options.Name,
		Description:     options.Description,
		NovaNetID:       options.NovaNetID,
		NeutronNetID:    options.NeutronNetID,
		NeutronSubnetID: options.NeutronSubnetID,
	}

	network, err := client.CreateShareNetwork(s.withLogger(ctx), opts, options.Microversion)
	if err != nil {
		return nil, err
	}

	s.register(scope(options.CleanupInClass, true), cleanup.KindShareNetwork, network.ID, client, options.Microversion)

	return network, nil
}

// CreateShare creates a share, by default removed when the test finishes.
// Unless told otherwise it waits for the share to become available, the
// share is registered for cleanup even if that wait fails.
func (s *Suite) CreateShare(ctx context.Context, options *ShareOptions) (*shares.Share, error) {
	if options == nil {
		options = &ShareOptions{}
	}

	ctx = s.withLogger(ctx)

	client := s.clientOrDefault(options.Client)

	protocol := options.Protocol
	if protocol == "" {
		protocol = s.config.DefaultProtocol()
	}

	size := options.Size
	if size == 0 {
		size = 1
	}

	shareNetwork := options.ShareNetwork
	if shareNetwork == "" {
		shareNetwork = s.config.ShareNetwork
	}

	shareType := options.ShareType
	if shareType == "" {
		shareType = s.config.ShareType
	}

	opts := &shares.CreateOpts{
		ShareProto:     protocol,
		Size:           size,
		Name:           options.Name,
		Description:    options.Description,
		IsPublic:       ptr.To(ptr.Deref(options.Public, false)),
		SnapshotID:     options.SnapshotID,
		Metadata:       options.Metadata,
		ShareNetworkID: shareNetwork,
		ShareType:      shareType,
	}

	share, err := client.CreateShare(ctx, opts, options.Microversion)
	if err != nil {
		return nil, err
	}

	s.register(scope(options.CleanupInClass, false), cleanup.KindShare, share.ID, client, options.Microversion)

	if ptr.Deref(options.WaitForCreation, true) {
		if err := client.WaitForShareStatus(ctx, share.ID, constants.ShareStatusAvailable, options.Microversion); err != nil {
			return nil, err
		}
	}

	return share, nil
}

// CreateSecurityService creates a security service, by default removed
// when the test finishes.
func (s *Suite) CreateSecurityService(ctx context.Context, options *SecurityServiceOptions) (*securityservices.SecurityService, error) {
	if options == nil {
		options = &SecurityServiceOptions{}
	}

	client := s.clientOrDefault(options.Client)

	serviceType := options.Type
	if serviceType == "" {
		serviceType = DefaultSecurityServiceType
	}

	opts := &securityservices.CreateOpts{
		Type:        serviceType,
		Name:        options.Name,
		Description: options.Description,
		DNSIP:       options.DNSIP,
		Server:      options.Server,
		Domain:      options.Domain,
		User:        options.User,
		Password:    options.Password,
	}

	service, err := client.CreateSecurityService(s.withLogger(ctx), opts, options.Microversion)
	if err != nil {
		return nil, err
	}

	s.register(scope(options.CleanupInClass, false), cleanup.KindSecurityService, service.ID, client, options.Microversion)

	return service, nil
}
