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

	"github.com/unikorn-cloud/manila/pkg/constants"
	"github.com/unikorn-cloud/manila/pkg/testing/cli"
	"github.com/unikorn-cloud/manila/test/functional"

	"k8s.io/utils/ptr"
)

var _ = Describe("Shares", func() {
	When("a share is created through the API", func() {
		It("is visible to the CLI", func() {
			name := functional.UniqueName("share")

			share, err := suite.CreateShare(ctx, &functional.ShareOptions{
				Name:        name,
				Description: "functional test share",
				Metadata: map[string]string{
					"purpose": "functional",
				},
			})
			Expect(err).NotTo(HaveOccurred())
			GinkgoWriter.Printf("Created share '%s' with ID '%s', which will be removed at the end of the test\n", name, share.ID)

			By("showing the share", func() {
				output, err := suite.Manila(ctx, "show", cli.WithParams(share.ID))
				Expect(err).NotTo(HaveOccurred())

				details := cli.Details(output)
				Expect(details).To(HaveKeyWithValue("id", share.ID))
				Expect(details).To(HaveKeyWithValue("name", name))
				Expect(details).To(HaveKeyWithValue("status", constants.ShareStatusAvailable))
			})

			By("listing shares", func() {
				output, err := suite.Manila(ctx, "list")
				Expect(err).NotTo(HaveOccurred())

				Expect(cli.Listing(output)).To(ContainElement(HaveKeyWithValue("ID", share.ID)))
			})
		})
	})

	When("a share is not waited for", func() {
		It("is still removed after the test", func() {
			share, err := suite.CreateShare(ctx, &functional.ShareOptions{
				Name:            functional.UniqueName("share"),
				WaitForCreation: ptr.To(false),
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(suite.Client().WaitForShareStatus(ctx, share.ID, constants.ShareStatusAvailable, "")).To(Succeed())
		})
	})

	When("a share is deleted by the test", func() {
		It("is skipped by cleanup", func() {
			share, err := suite.CreateShare(ctx, &functional.ShareOptions{
				Name: functional.UniqueName("share"),
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = suite.Manila(ctx, "delete", cli.WithParams(share.ID))
			Expect(err).NotTo(HaveOccurred())

			Expect(suite.Client().WaitForShareDeletion(ctx, share.ID, "")).To(Succeed())
		})
	})
})
