/*
Copyright 2022-2024 EscherCloud.
Copyright 2024-2025 the Unikorn Authors.
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

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/unikorn-cloud/manila/pkg/constants"
)

const (
	// DefaultDomain is what keystone calls the domain everything lives in
	// when nobody has bothered to set one up.
	DefaultDomain = "Default"
)

// CredentialProvider abstracts authentication methods.
type CredentialProvider interface {
	// Client returns a new provider client.
	Client(ctx context.Context) (*gophercloud.ProviderClient, error)
}

// PasswordProvider allows use of a username and password, scoped to a
// project.
type PasswordProvider struct {
	// endpoint is the Keystone endpoint to hit to get access to tokens
	// and the service catalog.
	endpoint string
	// username is the user's name.
	username string
	// password is the user's password.
	password string
	// projectName is the project the token is scoped to.
	projectName string
	// userDomainName is the domain the user lives in.
	userDomainName string
	// projectDomainName is the domain the project lives in.
	projectDomainName string
}

// Ensure the interface is implemented.
var _ CredentialProvider = &PasswordProvider{}

// NewPasswordProvider creates a client that consumes passwords
// for authentication.
func NewPasswordProvider(endpoint, username, password, projectName string) *PasswordProvider {
	return &PasswordProvider{
		endpoint:          endpoint,
		username:          username,
		password:          password,
		projectName:       projectName,
		userDomainName:    DefaultDomain,
		projectDomainName: DefaultDomain,
	}
}

// WithDomains overrides the user and project domains, empty values leave
// the existing setting alone.
func (p *PasswordProvider) WithDomains(userDomainName, projectDomainName string) *PasswordProvider {
	if userDomainName != "" {
		p.userDomainName = userDomainName
	}

	if projectDomainName != "" {
		p.projectDomainName = projectDomainName
	}

	return p
}

// Client implements the CredentialProvider interface.
func (p *PasswordProvider) Client(ctx context.Context) (*gophercloud.ProviderClient, error) {
	tracer := otel.GetTracerProvider().Tracer(constants.Application)

	_, span := tracer.Start(ctx, "POST /identity/v3/auth/tokens", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	options := gophercloud.AuthOptions{
		IdentityEndpoint: p.endpoint,
		Username:         p.username,
		Password:         p.password,
		DomainName:       p.userDomainName,
		AllowReauth:      true,
		Scope: &gophercloud.AuthScope{
			ProjectName: p.projectName,
			DomainName:  p.projectDomainName,
		},
	}

	client, err := openstack.NewClient(p.endpoint)
	if err != nil {
		return nil, err
	}

	client.UserAgent.Prepend(constants.VersionString())

	if err := openstack.Authenticate(ctx, client, options); err != nil {
		return nil, err
	}

	return client, nil
}
