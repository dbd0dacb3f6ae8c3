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
	"errors"
	"net/http"

	"github.com/gophercloud/gophercloud/v2"
)

var (
	// ErrStatus is returned when a resource lands in a status we weren't
	// expecting e.g. error while waiting for it to become available.
	ErrStatus = errors.New("resource in unexpected status")

	// ErrTimeout is returned when a resource fails to reach the desired
	// state within the build timeout.
	ErrTimeout = errors.New("timed out waiting for resource")

	// ErrNotFound is returned when a lookup completes but the resource is
	// not there, and there is no HTTP error to carry that fact.
	ErrNotFound = errors.New("resource not found")
)

// IsNotFound tells whether the error is some variety of not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || gophercloud.ResponseCodeIs(err, http.StatusNotFound)
}

// IsForbidden tells whether the API refused to let us do something.
func IsForbidden(err error) bool {
	return gophercloud.ResponseCodeIs(err, http.StatusForbidden)
}
