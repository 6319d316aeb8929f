package rsa

import (
	"math/big"

	"github.com/arekouzounian/rs-a/primes"
	"github.com/arekouzounian/rs-a/rsaerr"
	"github.com/arekouzounian/rs-a/rsarand"
)

// defaultMrIterations is the builder's default Miller-Rabin witness
// count. spec.md documents this as the permitted minimum and notes it
// is cryptographically inadequate on its own; callers generating real
// keys should call MrIterations with at least 5, and FIPS 186-5
// recommends 40 or more.
const defaultMrIterations = 1

// KeyBuilder is a fluent, stateful accumulator of key-generation
// options. It holds no hidden global state; every option is a plain
// field set by its corresponding method, and Build consumes them.
type KeyBuilder struct {
	rng          rsarand.Csprng
	p, q         *big.Int
	exponent     *big.Int
	mrIterations int
	variant      primes.Variant
}

// NewKeyBuilder returns a KeyBuilder configured with the package
// defaults: a crypto/rand-backed RNG, 1 Miller-Rabin iteration, and the
// Sieve prime-generation variant.
func NewKeyBuilder() *KeyBuilder {
	return &KeyBuilder{
		mrIterations: defaultMrIterations,
		variant:      primes.Sieve,
	}
}

// Rng overrides the default CSPRNG.
func (b *KeyBuilder) Rng(rng rsarand.Csprng) *KeyBuilder {
	b.rng = rng
	return b
}

// Primes skips prime generation entirely and uses p and q directly.
// Build validates that they are distinct, prime, and of the target
// bit-width, failing with rsaerr.KindOptions otherwise.
func (b *KeyBuilder) Primes(p, q *big.Int) *KeyBuilder {
	b.p = p
	b.q = q
	return b
}

// Exponent skips exponent search and uses e directly. Build validates
// 1 < e < lambda(n) and gcd(e, lambda(n)) = 1.
func (b *KeyBuilder) Exponent(e *big.Int) *KeyBuilder {
	b.exponent = e
	return b
}

// MrIterations sets the number of Miller-Rabin witnesses tried per
// primality check.
func (b *KeyBuilder) MrIterations(k int) *KeyBuilder {
	b.mrIterations = k
	return b
}

// PrimeGen selects the prime-generation variant (Sieve, Random, or
// LocalSearch). Sieve is the default.
func (b *KeyBuilder) PrimeGen(variant primes.Variant) *KeyBuilder {
	b.variant = variant
	return b
}

// Build assembles a KeyPair from the accumulated options, following
// the algorithm of spec.md §4.4.
func (b *KeyBuilder) Build() (*KeyPair, error) {
	rng := b.rng
	if rng == nil {
		rng = rsarand.NewCryptoSource()
	}

	trace("generating modulus")
	p, q, err := b.resolvePrimes(rng)
	if err != nil {
		return nil, err
	}
	// Canonical ordering: p > q, enforced here once and relied on
	// everywhere else (CRT recombination in particular).
	if p.Cmp(q) < 0 {
		p, q = q, p
	}

	trace("computing totient")
	lambda := carmichaelTotient(p, q)

	trace("computing exponent")
	e, err := b.resolveExponent(rng, lambda)
	if err != nil {
		return nil, err
	}

	trace("computing secret")
	d := new(big.Int).ModInverse(e, lambda)
	if d == nil {
		return nil, rsaerr.Options("no modular inverse of e=%s with respect to lambda=%s", e, lambda)
	}

	one := big.NewInt(1)
	pMinus1 := new(big.Int).Sub(p, one)
	qMinus1 := new(big.Int).Sub(q, one)
	dP := new(big.Int).Mod(d, pMinus1)
	dQ := new(big.Int).Mod(d, qMinus1)

	qInv := new(big.Int).ModInverse(q, p)
	if qInv == nil {
		return nil, rsaerr.Options("no modular inverse of q with respect to p (p, q not coprime)")
	}

	n := new(big.Int).Mul(p, q)

	pub := &PublicKey{N: n, E: e}
	priv := &PrivateKey{
		Version: 0,
		N:       n,
		E:       e,
		D:       d,
		P:       p,
		Q:       q,
		DP:      dP,
		DQ:      dQ,
		QInv:    qInv,
	}

	return &KeyPair{PublicKey: pub, PrivateKey: priv}, nil
}

func (b *KeyBuilder) resolvePrimes(rng rsarand.Csprng) (p, q *big.Int, err error) {
	if b.p != nil && b.q != nil {
		if b.p.Cmp(b.q) == 0 {
			return nil, nil, rsaerr.Options("supplied primes must be distinct")
		}
		for _, x := range []*big.Int{b.p, b.q} {
			if x.BitLen() != primes.PrimeBits {
				return nil, nil, rsaerr.Options("supplied prime %s is not %d bits", x, primes.PrimeBits)
			}
			if !x.ProbablyPrime(20) {
				return nil, nil, rsaerr.Options("supplied value %s is not prime", x)
			}
		}
		return new(big.Int).Set(b.p), new(big.Int).Set(b.q), nil
	}

	trace("generating first prime")
	p = primes.Generate(rng, b.mrIterations, b.variant)
	trace("generating second prime")
	q = primes.Generate(rng, b.mrIterations, b.variant)
	for q.Cmp(p) == 0 {
		q = primes.Generate(rng, b.mrIterations, b.variant)
	}
	return p, q, nil
}

func (b *KeyBuilder) resolveExponent(rng rsarand.Csprng, lambda *big.Int) (*big.Int, error) {
	one := big.NewInt(1)

	if b.exponent != nil {
		if b.exponent.Cmp(one) <= 0 || b.exponent.Cmp(lambda) >= 0 {
			return nil, rsaerr.Options("exponent must satisfy 1 < e < lambda(n)")
		}
		if new(big.Int).GCD(nil, nil, b.exponent, lambda).Cmp(one) != 0 {
			return nil, rsaerr.Options("exponent must be coprime to lambda(n)")
		}
		return new(big.Int).Set(b.exponent), nil
	}

	three := big.NewInt(3)
	e, err := rng.DrawRange(three, lambda)
	if err != nil {
		return nil, rsaerr.Wrap(rsaerr.KindOptions, err, "failed to draw candidate exponent")
	}

	for new(big.Int).GCD(nil, nil, e, lambda).Cmp(one) != 0 {
		e.Add(e, one)
		if e.Cmp(lambda) >= 0 {
			e, err = rng.DrawRange(three, lambda)
			if err != nil {
				return nil, rsaerr.Wrap(rsaerr.KindOptions, err, "failed to redraw candidate exponent")
			}
		}
	}

	return e, nil
}
