//go:build integration
// +build integration

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

//nolint:revive,testpackage // dot imports and package naming standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/manila/pkg/testing/cli"
	"github.com/unikorn-cloud/manila/test/functional"

	"k8s.io/utils/ptr"
)

var _ = Describe("Share types", Ordered, func() {
	var name string

	BeforeAll(func() {
		functional.SkipIfMicroversionNotSupported(testConfig, "2.24")

		name = functional.UniqueName("share-type")

		shareType, err := suite.CreateShareType(ctx, &functional.ShareTypeOptions{
			Name:                      name,
			DriverHandlesShareServers: ptr.To(false),
			Microversion:              "2.24",
		})
		Expect(err).NotTo(HaveOccurred())
		GinkgoWriter.Printf("Created share type '%s' with ID '%s', which will be removed with the suite\n", name, shareType.ID)
	})

	It("is listed by the CLI", func() {
		output, err := suite.Manila(ctx, "type-list")
		Expect(err).NotTo(HaveOccurred())

		Expect(cli.Listing(output)).To(ContainElement(HaveKeyWithValue("Name", name)))
	})

	It("rejects a duplicate", func() {
		_, err := suite.Manila(ctx, "type-create", cli.WithParams(name+" false"))
		Expect(err).To(MatchError(cli.ErrCommandFailed))
	})
})

var _ = Describe("Share networks", func() {
	It("can be shown by the CLI", func() {
		name := functional.UniqueName("share-network")

		network, err := suite.CreateShareNetwork(ctx, &functional.ShareNetworkOptions{
			Name:        name,
			Description: "functional test share network",
		})
		Expect(err).NotTo(HaveOccurred())

		output, err := suite.Manila(ctx, "share-network-show", cli.WithParams(network.ID))
		Expect(err).NotTo(HaveOccurred())

		Expect(cli.Details(output)).To(HaveKeyWithValue("name", name))
	})
})

var _ = Describe("Security services", func() {
	It("can be shown by the CLI", func() {
		name := functional.UniqueName("security-service")

		service, err := suite.CreateSecurityService(ctx, &functional.SecurityServiceOptions{
			Name:   name,
			DNSIP:  "192.0.2.1",
			Server: "ldap.example.com",
			Domain: "example.com",
		})
		Expect(err).NotTo(HaveOccurred())

		output, err := suite.Manila(ctx, "security-service-show", cli.WithParams(service.ID))
		Expect(err).NotTo(HaveOccurred())

		details := cli.Details(output)
		Expect(details).To(HaveKeyWithValue("type", "ldap"))
		Expect(details).To(HaveKeyWithValue("server", "ldap.example.com"))
	})

	It("fails to show something that doesn't exist", func() {
		output, err := suite.Manila(ctx, "security-service-show", cli.WithParams("does-not-exist"), cli.WithFailOK(), cli.WithMergeStderr())
		Expect(err).NotTo(HaveOccurred())
		Expect(output).To(ContainSubstring("No security service"))
	})
})
