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

	"github.com/unikorn-cloud/manila/pkg/providers/openstack"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Policy decides what errors are acceptable while tearing down resources.
type Policy struct {
	// SuppressAll swallows every cleanup error, not just the ones that
	// indicate the resource is gone or out of reach.
	SuppressAll bool
}

// Suppress returns true if the error should not fail the test.  Not found
// and forbidden are always fine, the resource has gone or isn't ours to
// delete.
func (p Policy) Suppress(err error) bool {
	if openstack.IsNotFound(err) || openstack.IsForbidden(err) {
		return true
	}

	return p.SuppressAll
}

// Handle runs the callback, suppressing errors according to the policy.
func (p Policy) Handle(ctx context.Context, callback func(context.Context) error) error {
	return Suppress(ctx, p.Suppress, callback)
}

// Suppress runs the callback and returns its error, unless the predicate
// says otherwise, in which case the error is logged and dropped.
func Suppress(ctx context.Context, predicate func(error) bool, callback func(context.Context) error) error {
	err := callback(ctx)
	if err == nil {
		return nil
	}

	if !predicate(err) {
		return err
	}

	log.FromContext(ctx).Error(err, "suppressed cleanup error")

	return nil
}
