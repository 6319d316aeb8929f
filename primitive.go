package rsa

import (
	"math/big"

	"github.com/arekouzounian/rs-a/rsaerr"
)

// RsaPrimitive is the capability shared by PublicKey (RSAEP) and
// PrivateKey (RSADP): transform a representative integer, or a
// big-endian byte string interpreted as one, under the key.
type RsaPrimitive interface {
	Crypt(m *big.Int) (*big.Int, error)
	CryptBytes(b []byte) ([]byte, error)
}

var _ RsaPrimitive = (*PublicKey)(nil)
var _ RsaPrimitive = (*PrivateKey)(nil)

// Crypt computes c = m^e mod n (RSAEP, RFC 8017 §5.1.1). It fails with
// rsaerr.KindCryptography if m is outside [0, n).
func (pub *PublicKey) Crypt(m *big.Int) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, rsaerr.Cryptography("message representative out of range")
	}
	return new(big.Int).Exp(m, pub.E, pub.N), nil
}

// CryptBytes decodes b as a big-endian unsigned integer, applies
// Crypt, and re-encodes the result big-endian, left-padded to
// ceil(bitlen(n)/8) bytes.
func (pub *PublicKey) CryptBytes(b []byte) ([]byte, error) {
	m := new(big.Int).SetBytes(b)
	c, err := pub.Crypt(m)
	if err != nil {
		return nil, err
	}
	return leftPad(c, pub.N), nil
}

// Crypt computes m = c^d mod n via Garner's CRT recombination (RFC
// 8017 §5.1.2, the "CRT" decryption path):
//
//	m1 = c^dP mod p
//	m2 = c^dQ mod q
//	h  = (m1 - m2) * qInv mod p     (sign-safe branch below)
//	m  = m2 + q*h
//
// The m1 < m2 branch computes (m2 - m1)*qInv mod p and negates it
// against p rather than ever subtracting m2 from m1 directly.
func (priv *PrivateKey) Crypt(c *big.Int) (*big.Int, error) {
	if c.Sign() < 0 || c.Cmp(priv.N) >= 0 {
		return nil, rsaerr.Cryptography("ciphertext representative out of range")
	}

	m1 := new(big.Int).Exp(c, priv.DP, priv.P)
	m2 := new(big.Int).Exp(c, priv.DQ, priv.Q)

	var h *big.Int
	if m1.Cmp(m2) >= 0 {
		diff := new(big.Int).Sub(m1, m2)
		h = new(big.Int).Mul(diff, priv.QInv)
		h.Mod(h, priv.P)
	} else {
		diff := new(big.Int).Sub(m2, m1)
		t := new(big.Int).Mul(diff, priv.QInv)
		t.Mod(t, priv.P)
		if t.Sign() == 0 {
			h = big.NewInt(0)
		} else {
			h = new(big.Int).Sub(priv.P, t)
		}
	}

	m := new(big.Int).Mul(priv.Q, h)
	m.Add(m, m2)
	return m, nil
}

// CryptNaive computes m = c^d mod n directly, without CRT. It exists
// so tests can assert the CRT and naive paths agree (spec.md §8,
// "round-trip encryption ... run both the CRT path and the naive
// path; they must agree").
func (priv *PrivateKey) CryptNaive(c *big.Int) (*big.Int, error) {
	if c.Sign() < 0 || c.Cmp(priv.N) >= 0 {
		return nil, rsaerr.Cryptography("ciphertext representative out of range")
	}
	return new(big.Int).Exp(c, priv.D, priv.N), nil
}

// CryptBytes decodes b as a big-endian unsigned integer, applies
// Crypt, and re-encodes the result big-endian, left-padded to
// ceil(bitlen(n)/8) bytes.
func (priv *PrivateKey) CryptBytes(b []byte) ([]byte, error) {
	c := new(big.Int).SetBytes(b)
	m, err := priv.Crypt(c)
	if err != nil {
		return nil, err
	}
	return leftPad(m, priv.N), nil
}

// leftPad encodes x big-endian, left-padded with zero bytes to
// ceil(bitlen(n)/8) bytes -- the modulus size, not x's own size.
func leftPad(x, n *big.Int) []byte {
	size := (n.BitLen() + 7) / 8
	raw := x.Bytes()
	if len(raw) >= size {
		return raw
	}
	out := make([]byte, size)
	copy(out[size-len(raw):], raw)
	return out
}
