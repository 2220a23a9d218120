// Package test provides shared conformance cases for GrantStore
// implementations. An adapter test suite registers its store and seeding
// function with TestGrantStore, then includes Cases in its specs.
package test

import (
	"context"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/opsboard/authz/types"
)

var (
	store types.GrantStore
	seed  func(actorID string, g types.Grant) error
)

// TestGrantStore registers the store under test and a function seeding a
// grant into it
func TestGrantStore(s types.GrantStore, seedFn func(actorID string, g types.Grant) error) {
	store = s
	seed = seedFn
}

// Cases are the conformance cases every GrantStore must pass
var Cases = Describe("grant store", func() {
	seeded := []types.Grant{
		{Resource: types.ResourceReports, Action: types.ReadWrite, Description: "monthly reports"},
		{Resource: types.ResourceProducts, Action: types.Read},
		{Resource: types.ResourceProducts, Action: types.Read}, // duplicate on purpose
		{Resource: types.ResourcePurchases, Action: types.Write},
	}

	BeforeEach(func() {
		for _, g := range seeded {
			Expect(seed("temp-1", g)).To(Succeed())
		}
	})

	It("lists all grants of an actor, duplicates included", func() {
		got, e := store.ListGrants(context.Background(), "temp-1")
		Expect(e).To(Succeed())
		Expect(got).To(ConsistOf(seeded[0], seeded[1], seeded[2], seeded[3]))
	})

	It("lists nothing for unknown actors", func() {
		got, e := store.ListGrants(context.Background(), "nobody")
		Expect(e).To(Succeed())
		Expect(got).To(BeEmpty())
	})

	It("honors a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, e := store.ListGrants(ctx, "temp-1")
		Expect(e).NotTo(Succeed())
	})
})
