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

	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/securityservices"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/unikorn-cloud/manila/pkg/constants"
)

func (c *SharedFileSystemClient) CreateSecurityService(ctx context.Context, opts *securityservices.CreateOpts, microversion string) (*securityservices.SecurityService, error) {
	tracer := otel.GetTracerProvider().Tracer(constants.Application)

	_, span := tracer.Start(ctx, "POST /sharev2/security-services", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	return securityservices.Create(ctx, c.serviceClient(microversion), opts).Extract()
}

func (c *SharedFileSystemClient) GetSecurityService(ctx context.Context, id, microversion string) (*securityservices.SecurityService, error) {
	tracer := otel.GetTracerProvider().Tracer(constants.Application)

	_, span := tracer.Start(ctx, "GET /sharev2/security-services/{security_service_id}", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	return securityservices.Get(ctx, c.serviceClient(microversion), id).Extract()
}

func (c *SharedFileSystemClient) DeleteSecurityService(ctx context.Context, id, microversion string) error {
	tracer := otel.GetTracerProvider().Tracer(constants.Application)

	_, span := tracer.Start(ctx, "DELETE /sharev2/security-services/{security_service_id}", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	return securityservices.Delete(ctx, c.serviceClient(microversion), id).ExtractErr()
}

func (c *SharedFileSystemClient) WaitForSecurityServiceDeletion(ctx context.Context, id, microversion string) error {
	return c.waitForDeletion(ctx, "security service "+id, func(ctx context.Context) error {
		_, err := c.GetSecurityService(ctx, id, microversion)

		return err
	})
}
