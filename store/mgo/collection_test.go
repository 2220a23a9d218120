package mgo

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("collection logger", func() {
	It("logs safely when no logger is configured", func() {
		c := &collection{}
		c.ensureLogger()

		Expect(func() {
			c.log.V(4).Info("insert grant", "actor", "a")
			c.log.V(6).Info("list grants", "actor", "a", "grants", 0)
		}).NotTo(Panic())
	})
})
