package fake

import (
	"context"
	"fmt"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/opsboard/authz/store/test"
	"github.com/opsboard/authz/types"
)

func TestFakeGrantStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "fake grant store")
}

var store = NewGrantStore()

var _ = BeforeSuite(func() {
	test.TestGrantStore(store, func(actorID string, g types.Grant) error {
		store.Grant(actorID, g)
		return nil
	})
})

var _ = test.Cases

var _ = Describe("outage simulation", func() {
	It("fails while an error is set, recovers after", func() {
		store.Grant("out-1", types.Grant{Resource: types.ResourceReports, Action: types.Read})

		store.SetError(fmt.Errorf("%w: connection refused", types.ErrStoreUnavailable))
		_, e := store.ListGrants(context.Background(), "out-1")
		Expect(e).To(MatchError(types.ErrStoreUnavailable))

		store.SetError(nil)
		got, e := store.ListGrants(context.Background(), "out-1")
		Expect(e).To(Succeed())
		Expect(got).NotTo(BeEmpty())
	})
})

var _ = Describe("revoke", func() {
	It("removes every grant on the resource", func() {
		store.Grant("rev-1", types.Grant{Resource: types.ResourceProducts, Action: types.Read})
		store.Grant("rev-1", types.Grant{Resource: types.ResourceProducts, Action: types.Write})
		store.Grant("rev-1", types.Grant{Resource: types.ResourceReports, Action: types.Read})

		store.Revoke("rev-1", types.ResourceProducts)

		got, e := store.ListGrants(context.Background(), "rev-1")
		Expect(e).To(Succeed())
		Expect(got).To(ConsistOf(types.Grant{Resource: types.ResourceReports, Action: types.Read}))
	})
})
