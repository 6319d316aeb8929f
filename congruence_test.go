package rsa

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("congruentModN", func() {
	It("is true when n divides (a - b)", func() {
		a := big.NewInt(17)
		b := big.NewInt(5)
		n := big.NewInt(6) // 17 - 5 = 12, divisible by 6
		Expect(congruentModN(a, b, n)).To(BeTrue())
	})

	It("is false when n does not divide (a - b)", func() {
		a := big.NewInt(17)
		b := big.NewInt(5)
		n := big.NewInt(7)
		Expect(congruentModN(a, b, n)).To(BeFalse())
	})

	It("holds for e*d = 1 (mod lambda) on the toy key", func() {
		pair := toy8BitKey()
		one := big.NewInt(1)
		ed := new(big.Int).Mul(pair.PrivateKey.E, pair.PrivateKey.D)
		lambda := carmichaelTotient(pair.PrivateKey.P, pair.PrivateKey.Q)
		Expect(congruentModN(ed, one, lambda)).To(BeTrue())
	})
})
