package types_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/opsboard/authz/types"
)

func TestTypes(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "types test suit")
}

var _ = Describe("action", func() {
	DescribeTable("grant satisfies request",
		func(granted, requested Action) {
			Expect(granted.Includes(requested)).To(BeTrue())
		},
		Entry("read satisfies read", Read, Read),
		Entry("write satisfies write", Write, Write),
		Entry("read_write satisfies read", ReadWrite, Read),
		Entry("read_write satisfies write", ReadWrite, Write),
		Entry("read_write satisfies read_write", ReadWrite, ReadWrite),
	)

	DescribeTable("grant does not satisfy request",
		func(granted, requested Action) {
			Expect(granted.Includes(requested)).To(BeFalse())
		},
		Entry("read does not satisfy write", Read, Write),
		Entry("read does not satisfy read_write", Read, ReadWrite),
		Entry("write does not satisfy read", Write, Read),
		Entry("write does not satisfy read_write", Write, ReadWrite),
		Entry("none satisfies nothing", None, Read),
	)

	DescribeTable("difference",
		func(a, b, want Action) {
			Expect(a.Difference(b)).To(Equal(want))
		},
		Entry("read_write minus read leaves write", ReadWrite, Read, Write),
		Entry("read_write minus write leaves read", ReadWrite, Write, Read),
		Entry("read minus read_write leaves nothing", Read, ReadWrite, None),
		Entry("disjoint actions are kept", Read, Write, Read),
	)

	DescribeTable("split",
		func(joined Action, splitted []interface{}) {
			Expect(joined.Split()).To(ConsistOf(splitted...))
		},
		Entry("read only", Read, []interface{}{Read}),
		Entry("write only", Write, []interface{}{Write}),
		Entry("read write", ReadWrite, []interface{}{Read, Write}),
	)

	DescribeTable("parse round trip",
		func(name string, want Action) {
			got, e := ParseAction(name)
			Expect(e).To(Succeed())
			Expect(got).To(Equal(want))
			Expect(got.String()).To(Equal(name))
		},
		Entry("read", "read", Read),
		Entry("write", "write", Write),
		Entry("read_write", "read_write", ReadWrite),
	)

	DescribeTable("parse fails fast on unknown actions",
		func(name string) {
			_, e := ParseAction(name)
			Expect(e).To(MatchError(ErrUnknownAction))
		},
		Entry("empty", ""),
		Entry("misspelled", "raed"),
		Entry("out of set", "exec"),
	)

	DescribeTable("validity",
		func(a Action, valid bool) {
			Expect(a.IsValid()).To(Equal(valid))
		},
		Entry("read is valid", Read, true),
		Entry("read_write is valid", ReadWrite, true),
		Entry("none is not", None, false),
		Entry("unknown bit is not", Action(1<<8), false),
	)
})

var _ = Describe("role", func() {
	DescribeTable("display names",
		func(r Role, name string) {
			Expect(r.DisplayName()).To(Equal(name))
		},
		Entry("super admin", SuperAdmin, "Super Admin"),
		Entry("manager", Manager, "Manager"),
		Entry("staff", Staff, "Staff"),
		Entry("unknown role falls back to raw value", Role("auditor"), "auditor"),
	)
})
