package rsa

import (
	"errors"
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/arekouzounian/rs-a/rsaerr"
	"github.com/arekouzounian/rs-a/rsarand"
)

var _ = Describe("RsaPrimitive", func() {
	Context("the spec's 8-bit toy RSA scenario", func() {
		pair := toy8BitKey()

		It("encrypts 9 to 48", func() {
			c, err := pair.PublicKey.Crypt(big.NewInt(9))
			Expect(err).To(BeNil())
			Expect(c).To(BeEquivalentTo(big.NewInt(48)))
		})

		It("round-trips through both the CRT and naive private paths", func() {
			for m := int64(0); m < 143; m++ {
				c, err := pair.PublicKey.Crypt(big.NewInt(m))
				Expect(err).To(BeNil())

				viaCrt, err := pair.PrivateKey.Crypt(c)
				Expect(err).To(BeNil())
				Expect(viaCrt).To(BeEquivalentTo(big.NewInt(m)))

				viaNaive, err := pair.PrivateKey.CryptNaive(c)
				Expect(err).To(BeNil())
				Expect(viaNaive).To(BeEquivalentTo(big.NewInt(m)))
			}
		})

		It("exercises the m1 < m2 branch of Garner's recombination", func() {
			// m=13 produces c=117, whose CRT intermediates satisfy
			// m1 (=0) < m2 (=2) under this key's canonical P>Q
			// ordering -- the corner spec.md §8 calls out explicitly.
			c := big.NewInt(117)
			m, err := pair.PrivateKey.Crypt(c)
			Expect(err).To(BeNil())
			Expect(m).To(BeEquivalentTo(big.NewInt(13)))
		})

		It("rejects a representative equal to or greater than n", func() {
			_, err := pair.PublicKey.Crypt(big.NewInt(143))
			Expect(err).NotTo(BeNil())

			_, err = pair.PrivateKey.Crypt(big.NewInt(200))
			Expect(err).NotTo(BeNil())
		})

		It("accepts a representative of exactly n-1", func() {
			_, err := pair.PublicKey.Crypt(big.NewInt(142))
			Expect(err).To(BeNil())
		})
	})

	Context("a generated 2048-bit key", func() {
		rng := rsarand.NewInsecureDeterministicSource(99)
		pair, err := NewKeyBuilder().Rng(rng).MrIterations(10).Build()
		Expect(err).To(BeNil())

		It("round-trips an arbitrary message through CryptBytes", func() {
			plaintext := []byte("the quick brown fox jumps over the lazy dog")
			ciphertext, err := pair.PublicKey.CryptBytes(plaintext)
			Expect(err).To(BeNil())
			Expect(len(ciphertext)).To(Equal((pair.PublicKey.N.BitLen() + 7) / 8))

			decrypted, err := pair.PrivateKey.CryptBytes(ciphertext)
			Expect(err).To(BeNil())
			Expect(decrypted).To(Equal(plaintext))
		})

		It("rejects m = n with Cryptography and accepts m = n-1", func() {
			nMinus1 := new(big.Int).Sub(pair.PublicKey.N, big.NewInt(1))
			_, err := pair.PublicKey.Crypt(pair.PublicKey.N)
			Expect(err).NotTo(BeNil())

			var rerr *rsaerr.Error
			Expect(errors.As(err, &rerr)).To(BeTrue())
			Expect(rerr.Kind).To(Equal(rsaerr.KindCryptography))

			_, err = pair.PublicKey.Crypt(nMinus1)
			Expect(err).To(BeNil())
		})
	})
})
