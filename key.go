package rsa

import (
	"math/big"

	"github.com/arekouzounian/rs-a/rsaerr"
)

// PublicKey is the pair (n, e): the modulus and public exponent. It is
// immutable after construction; callers must not mutate N or E.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the PKCS#1 two-prime private key: version, modulus,
// both exponents, both prime factors, and the three CRT parameters.
// Canonical ordering requires P > Q; this is relied on by the CRT
// recombination in Crypt.
type PrivateKey struct {
	Version int // always 0
	N       *big.Int
	E       *big.Int
	D       *big.Int
	P       *big.Int
	Q       *big.Int
	DP      *big.Int
	DQ      *big.Int
	QInv    *big.Int
}

// KeyPair bundles the public and private views of one generated key.
// The two are independent records sharing the same mathematical
// modulus and exponent; neither refers back to the other.
type KeyPair struct {
	PublicKey  *PublicKey
	PrivateKey *PrivateKey
}

// Public returns the public-key view of priv.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{N: priv.N, E: priv.E}
}

// Validate checks every invariant listed in spec.md §3 that can be
// checked from the stored fields alone (it does not re-run primality
// testing on P and Q, which would be expensive and is only meaningful
// at generation time).
func (priv *PrivateKey) Validate() error {
	if priv.Version != 0 {
		return rsaerr.Options("unsupported private key version %d", priv.Version)
	}

	n := new(big.Int).Mul(priv.P, priv.Q)
	if n.Cmp(priv.N) != 0 {
		return rsaerr.Options("n != p*q")
	}
	if priv.P.Cmp(priv.Q) == 0 {
		return rsaerr.Options("p and q must be distinct")
	}
	if priv.P.Cmp(priv.Q) <= 0 {
		return rsaerr.Options("canonical ordering requires p > q")
	}

	lambda := carmichaelTotient(priv.P, priv.Q)

	one := big.NewInt(1)
	if priv.E.Cmp(one) <= 0 || priv.E.Cmp(lambda) >= 0 {
		return rsaerr.Options("e must satisfy 1 < e < lambda(n)")
	}
	g := new(big.Int).GCD(nil, nil, priv.E, lambda)
	if g.Cmp(one) != 0 {
		return rsaerr.Options("gcd(e, lambda(n)) != 1")
	}

	ed := new(big.Int).Mul(priv.E, priv.D)
	if !congruentModN(ed, one, lambda) {
		return rsaerr.Options("e*d != 1 (mod lambda(n))")
	}

	pMinus1 := new(big.Int).Sub(priv.P, one)
	if !congruentModN(priv.DP, priv.D, pMinus1) {
		return rsaerr.Options("dP != d mod (p-1)")
	}
	qMinus1 := new(big.Int).Sub(priv.Q, one)
	if !congruentModN(priv.DQ, priv.D, qMinus1) {
		return rsaerr.Options("dQ != d mod (q-1)")
	}

	qqinv := new(big.Int).Mul(priv.Q, priv.QInv)
	if !congruentModN(qqinv, one, priv.P) {
		return rsaerr.Options("q*qInv != 1 (mod p)")
	}
	if priv.QInv.Sign() <= 0 || priv.QInv.Cmp(priv.P) >= 0 {
		return rsaerr.Options("qInv must satisfy 0 < qInv < p")
	}

	return nil
}

// carmichaelTotient returns lcm(p-1, q-1), the Carmichael totient of
// n = p*q. Euler's phi(n) = (p-1)(q-1) is deliberately not used: using
// the smaller Carmichael totient yields the smallest valid d and is
// what the rest of this package assumes.
func carmichaelTotient(p, q *big.Int) *big.Int {
	one := big.NewInt(1)
	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)

	gcd := new(big.Int).GCD(nil, nil, pm1, qm1)
	lcm := new(big.Int).Div(pm1, gcd)
	lcm.Mul(lcm, qm1)
	return lcm
}
