package rsa

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PrivateKey.Validate", func() {
	It("accepts the toy 8-bit key", func() {
		pair := toy8BitKey()
		Expect(pair.PrivateKey.Validate()).To(BeNil())
	})

	It("rejects a tampered n", func() {
		pair := toy8BitKey()
		pair.PrivateKey.N = big.NewInt(144)
		Expect(pair.PrivateKey.Validate()).NotTo(BeNil())
	})

	It("rejects p <= q", func() {
		pair := toy8BitKey()
		pair.PrivateKey.P, pair.PrivateKey.Q = pair.PrivateKey.Q, pair.PrivateKey.P
		Expect(pair.PrivateKey.Validate()).NotTo(BeNil())
	})

	It("rejects an inconsistent d", func() {
		pair := toy8BitKey()
		pair.PrivateKey.D = big.NewInt(7)
		Expect(pair.PrivateKey.Validate()).NotTo(BeNil())
	})
})

var _ = Describe("PrivateKey.Public", func() {
	It("returns a view sharing n and e", func() {
		pair := toy8BitKey()
		pub := pair.PrivateKey.Public()
		Expect(pub.N).To(BeEquivalentTo(pair.PublicKey.N))
		Expect(pub.E).To(BeEquivalentTo(pair.PublicKey.E))
	})
})
