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

package openstack_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/securityservices"
	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/shares"
	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/sharetypes"
	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/manila/pkg/constants"
	"github.com/unikorn-cloud/manila/pkg/providers/openstack"
	"github.com/unikorn-cloud/manila/pkg/testing/fake"

	"k8s.io/utils/ptr"
)

const microversion = "2.51"

func newServer(t *testing.T, options ...fake.Option) *fake.Server {
	t.Helper()

	server := fake.New(options...)
	t.Cleanup(server.Close)

	return server
}

func newClient(t *testing.T, server *fake.Server) *openstack.SharedFileSystemClient {
	t.Helper()

	provider := openstack.NewPasswordProvider(server.IdentityEndpoint(), "admin", "secret", "admin")

	options := &openstack.SharedFileSystemOptions{
		Region:        fake.Region,
		Microversion:  microversion,
		BuildInterval: 10 * time.Millisecond,
		BuildTimeout:  time.Second,
	}

	client, err := openstack.NewSharedFileSystemClient(t.Context(), provider, options)
	require.NoError(t, err)

	return client
}

func createShare(t *testing.T, client *openstack.SharedFileSystemClient) *shares.Share {
	t.Helper()

	opts := &shares.CreateOpts{
		ShareProto: "NFS",
		Size:       1,
		Name:       "test",
		IsPublic:   ptr.To(true),
		Metadata: map[string]string{
			"purpose": "testing",
		},
	}

	share, err := client.CreateShare(t.Context(), opts, "")
	require.NoError(t, err)

	return share
}

// TestShareLifecycle tests a share can be created, waited on and deleted.
func TestShareLifecycle(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	client := newClient(t, server)

	share := createShare(t, client)
	require.NotEmpty(t, share.ID)
	require.Equal(t, "NFS", share.ShareProto)
	require.Equal(t, 1, share.Size)
	require.Equal(t, "testing", share.Metadata["purpose"])

	require.NoError(t, client.WaitForShareStatus(t.Context(), share.ID, constants.ShareStatusAvailable, ""))

	share, err := client.GetShare(t.Context(), share.ID, "")
	require.NoError(t, err)
	require.Equal(t, constants.ShareStatusAvailable, share.Status)

	require.NoError(t, client.DeleteShare(t.Context(), share.ID, ""))
	require.NoError(t, client.WaitForShareDeletion(t.Context(), share.ID, ""))
	require.Empty(t, server.IDs(fake.Shares))

	_, err = client.GetShare(t.Context(), share.ID, "")
	require.True(t, openstack.IsNotFound(err))
}

// TestShareErrorStatus tests a share going into error fails the wait.
func TestShareErrorStatus(t *testing.T) {
	t.Parallel()

	server := newServer(t, fake.WithShareStatus(constants.ShareStatusError))
	client := newClient(t, server)

	share := createShare(t, client)

	err := client.WaitForShareStatus(t.Context(), share.ID, constants.ShareStatusAvailable, "")
	require.ErrorIs(t, err, openstack.ErrStatus)
}

// TestShareStatusTimeout tests waiting for a status that never comes.
func TestShareStatusTimeout(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	client := newClient(t, server)

	share := createShare(t, client)

	err := client.WaitForShareStatus(t.Context(), share.ID, "extending", "")
	require.ErrorIs(t, err, openstack.ErrTimeout)
}

// TestMicroversion tests the default microversion is sent, and that an
// override applies to that call only.
func TestMicroversion(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	client := newClient(t, server)

	require.Equal(t, microversion, client.Microversion())

	share := createShare(t, client)

	_, err := client.GetShare(t.Context(), share.ID, "2.60")
	require.NoError(t, err)

	_, err = client.GetShare(t.Context(), share.ID, "")
	require.NoError(t, err)

	requests := server.Requests()
	require.Len(t, requests, 3)
	require.Equal(t, http.MethodPost, requests[0].Method)
	require.Equal(t, microversion, requests[0].Microversion)
	require.Equal(t, "2.60", requests[1].Microversion)
	require.Equal(t, microversion, requests[2].Microversion)
}

// TestShareNetworkLifecycle tests share networks keep their network IDs.
func TestShareNetworkLifecycle(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	client := newClient(t, server)

	opts := &openstack.ShareNetworkCreateOpts{
		Name:            "network",
		NeutronNetID:    "net",
		NeutronSubnetID: "subnet",
		NovaNetID:       "nova",
	}

	network, err := client.CreateShareNetwork(t.Context(), opts, "")
	require.NoError(t, err)
	require.Equal(t, "network", network.Name)
	require.Equal(t, "net", network.NeutronNetID)
	require.Equal(t, "subnet", network.NeutronSubnetID)
	require.Equal(t, "nova", network.NovaNetID)

	stored, ok := server.Get(fake.ShareNetworks, network.ID)
	require.True(t, ok)
	require.Equal(t, "nova", stored["nova_net_id"])

	require.NoError(t, client.DeleteShareNetwork(t.Context(), network.ID, ""))
	require.NoError(t, client.WaitForShareNetworkDeletion(t.Context(), network.ID, ""))

	_, err = client.GetShareNetwork(t.Context(), network.ID, "")
	require.True(t, openstack.IsNotFound(err))
}

// TestShareTypeLifecycle tests share types are found by listing.
func TestShareTypeLifecycle(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	client := newClient(t, server)

	opts := &sharetypes.CreateOpts{
		Name:     "type",
		IsPublic: false,
		ExtraSpecs: sharetypes.ExtraSpecsOpts{
			DriverHandlesShareServers: true,
			SnapshotSupport:           ptr.To(true),
		},
	}

	shareType, err := client.CreateShareType(t.Context(), opts, "")
	require.NoError(t, err)
	require.Equal(t, "type", shareType.Name)
	require.False(t, shareType.IsPublic)
	require.Equal(t, true, shareType.ExtraSpecs["driver_handles_share_servers"])

	types, err := client.ListShareTypes(t.Context(), "")
	require.NoError(t, err)
	require.Len(t, types, 1)
	require.Equal(t, shareType.ID, types[0].ID)

	require.NoError(t, client.DeleteShareType(t.Context(), shareType.ID, ""))
	require.NoError(t, client.WaitForShareTypeDeletion(t.Context(), shareType.ID, ""))

	types, err = client.ListShareTypes(t.Context(), "")
	require.NoError(t, err)
	require.Empty(t, types)
}

// TestSecurityServiceLifecycle tests security services.
func TestSecurityServiceLifecycle(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	client := newClient(t, server)

	opts := &securityservices.CreateOpts{
		Type:   securityservices.LDAP,
		Name:   "ldap",
		DNSIP:  "192.0.2.1",
		Server: "ldap.example.com",
		Domain: "example.com",
		User:   "user",
	}

	service, err := client.CreateSecurityService(t.Context(), opts, "")
	require.NoError(t, err)
	require.Equal(t, "ldap", service.Type)
	require.Equal(t, "192.0.2.1", service.DNSIP)

	got, err := client.GetSecurityService(t.Context(), service.ID, "")
	require.NoError(t, err)
	require.Equal(t, "ldap.example.com", got.Server)

	require.NoError(t, client.DeleteSecurityService(t.Context(), service.ID, ""))
	require.NoError(t, client.WaitForSecurityServiceDeletion(t.Context(), service.ID, ""))
	require.Empty(t, server.IDs(fake.SecurityServices))
}

// TestForbidden tests API refusals are recognisable.
func TestForbidden(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	client := newClient(t, server)

	share := createShare(t, client)

	server.Fail(http.MethodDelete, fake.Shares, http.StatusForbidden)

	err := client.DeleteShare(t.Context(), share.ID, "")
	require.True(t, openstack.IsForbidden(err))
	require.False(t, openstack.IsNotFound(err))

	server.Reset()

	require.NoError(t, client.DeleteShare(t.Context(), share.ID, ""))
}

// TestDeleteMissing tests deleting something that isn't there is not found.
func TestDeleteMissing(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	client := newClient(t, server)

	err := client.DeleteShareNetwork(t.Context(), "missing", "")
	require.True(t, openstack.IsNotFound(err))
}
