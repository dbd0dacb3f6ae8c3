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
	"slices"

	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/sharetypes"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/unikorn-cloud/manila/pkg/constants"
)

func (c *SharedFileSystemClient) CreateShareType(ctx context.Context, opts *sharetypes.CreateOpts, microversion string) (*sharetypes.ShareType, error) {
	tracer := otel.GetTracerProvider().Tracer(constants.Application)

	_, span := tracer.Start(ctx, "POST /sharev2/types", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	return sharetypes.Create(ctx, c.serviceClient(microversion), opts).Extract()
}

// ListShareTypes returns both public and private share types.
func (c *SharedFileSystemClient) ListShareTypes(ctx context.Context, microversion string) ([]sharetypes.ShareType, error) {
	tracer := otel.GetTracerProvider().Tracer(constants.Application)

	_, span := tracer.Start(ctx, "GET /sharev2/types", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	page, err := sharetypes.List(c.serviceClient(microversion), &sharetypes.ListOpts{IsPublic: "all"}).AllPages(ctx)
	if err != nil {
		return nil, err
	}

	return sharetypes.ExtractShareTypes(page)
}

func (c *SharedFileSystemClient) DeleteShareType(ctx context.Context, id, microversion string) error {
	tracer := otel.GetTracerProvider().Tracer(constants.Application)

	_, span := tracer.Start(ctx, "DELETE /sharev2/types/{share_type_id}", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	return sharetypes.Delete(ctx, c.serviceClient(microversion), id).ExtractErr()
}

// WaitForShareTypeDeletion waits for the type to drop out of the listing,
// there is no direct lookup of a share type by ID.
func (c *SharedFileSystemClient) WaitForShareTypeDeletion(ctx context.Context, id, microversion string) error {
	return c.waitForDeletion(ctx, "share type "+id, func(ctx context.Context) error {
		types, err := c.ListShareTypes(ctx, microversion)
		if err != nil {
			return err
		}

		if !slices.ContainsFunc(types, func(t sharetypes.ShareType) bool { return t.ID == id }) {
			return fmt.Errorf("%w: share type %s", ErrNotFound, id)
		}

		return nil
	})
}
