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

package cloudconfig

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gophercloud/gophercloud/v2/openstack"
	"github.com/gophercloud/utils/openstack/clientconfig"

	providers "github.com/unikorn-cloud/manila/pkg/providers/openstack"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	// ErrNoCloudConfiguration is raised when no usable credentials can be
	// found anywhere.
	ErrNoCloudConfiguration = errors.New("could not find a cloud named functional_admin or a cloud named devstack, check your clouds.yaml file and try again")

	// ErrIncompleteCloud is raised when a cloud exists but lacks credentials.
	ErrIncompleteCloud = errors.New("cloud configuration incomplete")
)

const (
	// FunctionalAdminCloud is the preferred cloud, defined explicitly for
	// functional testing with admin credentials.
	FunctionalAdminCloud = "functional_admin"

	// DevstackCloud is what devstack writes, it's overridden to use the
	// admin user and project.
	DevstackCloud = "devstack"

	// EnvironmentCloud takes credentials from OS_* variables.
	EnvironmentCloud = "envvars"

	adminName = "admin"
)

// Credentials are what's needed to talk to manila as an administrator.
type Credentials struct {
	// Cloud is where the credentials came from.
	Cloud string
	// AuthURL is the keystone endpoint.
	AuthURL string
	// Username and Password identify the user.
	Username string
	Password string
	// ProjectName is the project (or tenant) to scope to.
	ProjectName string
	// UserDomainName and ProjectDomainName may be empty and default
	// to keystone's default domain.
	UserDomainName    string
	ProjectDomainName string
	// Region is the region name, if any.
	Region string
}

// Provider returns a credential provider for the API client.
func (c *Credentials) Provider() *providers.PasswordProvider {
	return providers.NewPasswordProvider(c.AuthURL, c.Username, c.Password, c.ProjectName).WithDomains(c.UserDomainName, c.ProjectDomainName)
}

// Resolve finds credentials, first trying the functional_admin cloud, then
// the devstack cloud with admin user and project, and finally the OS_*
// environment variables.  clouds.yaml is located as for any other
// OpenStack tool, OS_CLIENT_CONFIG_FILE may point at it explicitly.
func Resolve(ctx context.Context) (*Credentials, error) {
	log := log.FromContext(ctx)

	credentials, err := fromCloudsYAML(FunctionalAdminCloud, nil)
	if err == nil {
		return credentials, nil
	}

	log.V(1).Info("cloud unavailable", "cloud", FunctionalAdminCloud, "error", err.Error())

	credentials, err = fromCloudsYAML(DevstackCloud, func(c *Credentials) {
		c.Username = adminName
		c.ProjectName = adminName
	})
	if err == nil {
		return credentials, nil
	}

	log.V(1).Info("cloud unavailable", "cloud", DevstackCloud, "error", err.Error())

	credentials, err = fromEnvironment()
	if err == nil {
		return credentials, nil
	}

	log.V(1).Info("cloud unavailable", "cloud", EnvironmentCloud, "error", err.Error())

	return nil, ErrNoCloudConfiguration
}

func fromCloudsYAML(name string, mutate func(*Credentials)) (*Credentials, error) {
	cloud, err := clientconfig.GetCloudFromYAML(&clientconfig.ClientOpts{
		Cloud: name,
	})
	if err != nil {
		return nil, err
	}

	if cloud.AuthInfo == nil {
		return nil, fmt.Errorf("%w: cloud %s has no auth section", ErrIncompleteCloud, name)
	}

	auth := cloud.AuthInfo

	credentials := &Credentials{
		Cloud:             name,
		AuthURL:           auth.AuthURL,
		Username:          auth.Username,
		Password:          auth.Password,
		ProjectName:       auth.ProjectName,
		UserDomainName:    auth.UserDomainName,
		ProjectDomainName: auth.ProjectDomainName,
		Region:            cloud.RegionName,
	}

	if credentials.UserDomainName == "" {
		credentials.UserDomainName = auth.DomainName
	}

	if credentials.ProjectDomainName == "" {
		credentials.ProjectDomainName = auth.DomainName
	}

	if mutate != nil {
		mutate(credentials)
	}

	if err := credentials.validate(); err != nil {
		return nil, err
	}

	return credentials, nil
}

func fromEnvironment() (*Credentials, error) {
	options, err := openstack.AuthOptionsFromEnv()
	if err != nil {
		return nil, err
	}

	credentials := &Credentials{
		Cloud:             EnvironmentCloud,
		AuthURL:           options.IdentityEndpoint,
		Username:          options.Username,
		Password:          options.Password,
		ProjectName:       options.TenantName,
		UserDomainName:    options.DomainName,
		ProjectDomainName: os.Getenv("OS_PROJECT_DOMAIN_NAME"),
		Region:            os.Getenv("OS_REGION_NAME"),
	}

	if credentials.UserDomainName == "" {
		credentials.UserDomainName = os.Getenv("OS_USER_DOMAIN_NAME")
	}

	if err := credentials.validate(); err != nil {
		return nil, err
	}

	return credentials, nil
}

func (c *Credentials) validate() error {
	if c.AuthURL == "" || c.Username == "" || c.Password == "" || c.ProjectName == "" {
		return fmt.Errorf("%w: cloud %s requires auth_url, username, password and project_name", ErrIncompleteCloud, c.Cloud)
	}

	return nil
}
