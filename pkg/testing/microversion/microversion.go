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

// Package microversion handles manila API microversions, which look like
// "2.51" and are ordered numerically by major then minor.
package microversion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/unikorn-cloud/manila/pkg/constants"
)

var (
	// ErrFormat is returned when a version is not of the form X.Y.
	ErrFormat = errors.New("malformed microversion")
)

// APIVersion is a parsed microversion.
type APIVersion struct {
	version *semver.Version
}

// Parse reads a microversion, "2.latest" resolves to the newest version
// supported, and a bare major version e.g. "2" means "2.0".
func Parse(s string) (*APIVersion, error) {
	if s == constants.LatestAPIVersion {
		s = constants.MaxAPIVersion
	}

	if strings.Count(s, ".") > 1 {
		return nil, fmt.Errorf("%w: %s", ErrFormat, s)
	}

	version, err := semver.StrictNewVersion(Normalize(s) + ".0")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormat, s)
	}

	return &APIVersion{
		version: version,
	}, nil
}

// MustParse is Parse for constants.
func MustParse(s string) *APIVersion {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// Normalize turns a requested API version into one manila accepts in the
// version header.
func Normalize(s string) string {
	if s == "" {
		s = constants.DefaultAPIVersion
	}

	if s == constants.LatestAPIVersion {
		return constants.MaxAPIVersion
	}

	if !strings.Contains(s, ".") {
		return s + ".0"
	}

	return s
}

func (v *APIVersion) String() string {
	return fmt.Sprintf("%d.%d", v.version.Major(), v.version.Minor())
}

// Compare returns -1, 0 or 1 if v is less than, equal to or greater than o.
func (v *APIVersion) Compare(o *APIVersion) int {
	return v.version.Compare(o.version)
}

// Between returns whether v lies within lower and upper inclusive.
func (v *APIVersion) Between(lower, upper *APIVersion) bool {
	return v.Compare(lower) >= 0 && v.Compare(upper) <= 0
}

// IsSupported checks whether a microversion falls within the range the tests
// are configured to allow.
func IsSupported(minVersion, maxVersion, microversion string) (bool, error) {
	lower, err := Parse(minVersion)
	if err != nil {
		return false, err
	}

	upper, err := Parse(maxVersion)
	if err != nil {
		return false, err
	}

	v, err := Parse(microversion)
	if err != nil {
		return false, err
	}

	return v.Between(lower, upper), nil
}
