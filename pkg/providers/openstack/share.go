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

	"github.com/gophercloud/gophercloud/v2/openstack/sharedfilesystems/v2/shares"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/unikorn-cloud/manila/pkg/constants"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// CreateShare creates a share, it will be in the creating state on return.
func (c *SharedFileSystemClient) CreateShare(ctx context.Context, opts *shares.CreateOpts, microversion string) (*shares.Share, error) {
	tracer := otel.GetTracerProvider().Tracer(constants.Application)

	_, span := tracer.Start(ctx, "POST /sharev2/shares", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	return shares.Create(ctx, c.serviceClient(microversion), opts).Extract()
}

func (c *SharedFileSystemClient) GetShare(ctx context.Context, id, microversion string) (*shares.Share, error) {
	tracer := otel.GetTracerProvider().Tracer(constants.Application)

	_, span := tracer.Start(ctx, "GET /sharev2/shares/{share_id}", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	return shares.Get(ctx, c.serviceClient(microversion), id).Extract()
}

func (c *SharedFileSystemClient) DeleteShare(ctx context.Context, id, microversion string) error {
	tracer := otel.GetTracerProvider().Tracer(constants.Application)

	_, span := tracer.Start(ctx, "DELETE /sharev2/shares/{share_id}", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	return shares.Delete(ctx, c.serviceClient(microversion), id).ExtractErr()
}

// WaitForShareStatus blocks until the share reaches the requested status.
// Landing in an error status first is fatal.
func (c *SharedFileSystemClient) WaitForShareStatus(ctx context.Context, id, status, microversion string) error {
	log := log.FromContext(ctx)

	return c.poll(ctx, fmt.Sprintf("share %s status %s", id, status), func(ctx context.Context) (bool, error) {
		share, err := c.GetShare(ctx, id, microversion)
		if err != nil {
			return false, err
		}

		log.V(1).Info("polled share status", "id", id, "status", share.Status, "want", status)

		if share.Status == status {
			return true, nil
		}

		if share.Status == constants.ShareStatusError || share.Status == constants.ShareStatusErrorDeleting {
			return false, fmt.Errorf("%w: share %s is %s", ErrStatus, id, share.Status)
		}

		return false, nil
	})
}

// WaitForShareDeletion blocks until the share is gone.
func (c *SharedFileSystemClient) WaitForShareDeletion(ctx context.Context, id, microversion string) error {
	return c.waitForDeletion(ctx, "share "+id, func(ctx context.Context) error {
		share, err := c.GetShare(ctx, id, microversion)
		if err != nil {
			return err
		}

		if share.Status == constants.ShareStatusErrorDeleting {
			return fmt.Errorf("%w: share %s is %s", ErrStatus, id, share.Status)
		}

		return nil
	})
}
