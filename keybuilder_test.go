package rsa

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/arekouzounian/rs-a/rsarand"
)

func TestRsa(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Rsa Suite")
}

// toy8BitKey builds the concrete scenario from spec.md §8 item 1:
// {11, 13}, n=143, lambda=60, e=7, d=43. Canonical ordering puts the
// larger factor in P, so here P=13, Q=11, dP=7, dQ=3, qInv=6 -- the
// spec's own illustrative labeling swaps p and q relative to its
// stated p>q invariant; this builds the internally consistent key.
//
// Built directly from its field values rather than through
// KeyBuilder.Primes: the builder's supplied-primes path enforces the
// target 1024-bit width (spec.md §4.4), which this 8-bit illustrative
// scenario deliberately violates.
func toy8BitKey() *KeyPair {
	pub := &PublicKey{N: big.NewInt(143), E: big.NewInt(7)}
	priv := &PrivateKey{
		Version: 0,
		N:       big.NewInt(143),
		E:       big.NewInt(7),
		D:       big.NewInt(43),
		P:       big.NewInt(13),
		Q:       big.NewInt(11),
		DP:      big.NewInt(7),
		DQ:      big.NewInt(3),
		QInv:    big.NewInt(6),
	}
	return &KeyPair{PublicKey: pub, PrivateKey: priv}
}

var _ = Describe("KeyBuilder", func() {
	Context("the spec's 8-bit toy RSA scenario", func() {
		It("derives exactly the documented parameters", func() {
			pair := toy8BitKey()
			Expect(pair.PrivateKey.Validate()).To(BeNil())

			priv := pair.PrivateKey
			Expect(priv.N).To(BeEquivalentTo(big.NewInt(143)))
			Expect(priv.D).To(BeEquivalentTo(big.NewInt(43)))
			Expect(priv.P).To(BeEquivalentTo(big.NewInt(13)), "canonical ordering requires p > q")
			Expect(priv.Q).To(BeEquivalentTo(big.NewInt(11)))
			Expect(priv.DP).To(BeEquivalentTo(big.NewInt(7)))
			Expect(priv.DQ).To(BeEquivalentTo(big.NewInt(3)))
			Expect(priv.QInv).To(BeEquivalentTo(big.NewInt(6)))
		})
	})

	Context("supplied primes", func() {
		It("rejects equal primes", func() {
			_, err := NewKeyBuilder().Primes(big.NewInt(11), big.NewInt(11)).Build()
			Expect(err).NotTo(BeNil())
		})

		It("rejects a value that isn't the target bit-width", func() {
			_, err := NewKeyBuilder().Primes(big.NewInt(11), big.NewInt(12)).Build()
			Expect(err).NotTo(BeNil())
		})
	})

	Context("supplied exponent", func() {
		// lambda(143) = lcm(10, 12) = 60.
		lambda := big.NewInt(60)

		It("rejects an exponent not coprime to lambda(n)", func() {
			b := NewKeyBuilder().Exponent(big.NewInt(6)) // 6 shares a factor with 60
			_, err := b.resolveExponent(rsarand.NewCryptoSource(), lambda)
			Expect(err).NotTo(BeNil())
		})

		It("rejects e <= 1", func() {
			b := NewKeyBuilder().Exponent(big.NewInt(1))
			_, err := b.resolveExponent(rsarand.NewCryptoSource(), lambda)
			Expect(err).NotTo(BeNil())
		})

		It("rejects e >= lambda(n)", func() {
			b := NewKeyBuilder().Exponent(big.NewInt(60))
			_, err := b.resolveExponent(rsarand.NewCryptoSource(), lambda)
			Expect(err).NotTo(BeNil())
		})
	})

	Context("a generated 2048-bit key", func() {
		It("satisfies every invariant of spec.md §3", func() {
			rng := rsarand.NewInsecureDeterministicSource(7)
			pair, err := NewKeyBuilder().Rng(rng).MrIterations(10).Build()
			Expect(err).To(BeNil())

			priv := pair.PrivateKey
			Expect(priv.Validate()).To(BeNil())
			Expect(priv.P.BitLen()).To(Equal(1024))
			Expect(priv.Q.BitLen()).To(Equal(1024))
			Expect(priv.P.Cmp(priv.Q)).To(BeNumerically(">", 0))
		})
	})
})
