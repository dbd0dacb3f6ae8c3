/*
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

package constants

import (
	"fmt"
	"os"
	"path"
)

var (
	// Application is the application name.
	//nolint:gochecknoglobals
	Application = path.Base(os.Args[0])

	// Version is the application version set via the Makefile.
	//nolint:gochecknoglobals
	Version string

	// Revision is the git revision set via the Makefile.
	//nolint:gochecknoglobals
	Revision string
)

// VersionString returns a canonical version string.  It's based on
// HTTP's User-Agent so can be used to set that too when talking to
// OpenStack services.
func VersionString() string {
	return fmt.Sprintf("%s/%s (revision/%s)", Application, Version, Revision)
}

const (
	// DefaultAPIVersion is used when no API version is requested.
	DefaultAPIVersion = "2"

	// LatestAPIVersion is an alias that resolves to MaxAPIVersion.
	LatestAPIVersion = "2.latest"

	// MinAPIVersion is the lowest microversion the functional tests support.
	MinAPIVersion = "1.0"

	// MaxAPIVersion is the highest microversion the functional tests support.
	MaxAPIVersion = "2.78"

	// ManilaAPIVersionFlag is passed to the CLI to select a microversion.
	ManilaAPIVersionFlag = "--os-manila-api-version"

	// ShareStatusAvailable is the status a share settles in once it is usable.
	ShareStatusAvailable = "available"

	// ShareStatusError is the terminal failure status for a share.
	ShareStatusError = "error"

	// ShareStatusErrorDeleting is set when a share could not be deleted.
	ShareStatusErrorDeleting = "error_deleting"
)
