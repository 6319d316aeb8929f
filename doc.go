/*
Package rsa implements RSA key generation, the RSA encryption and
decryption primitives, and PKCS#1 serialization from scratch, on top of
Go's math/big arbitrary-precision integers.

# Overview

This is a from-scratch, pedagogical RSA core. It does not call into
crypto/rsa, OpenSSL, or any other cryptographic provider; every prime
is found by this package's own sieve and Miller-Rabin test, and every
encode/decode byte is produced by this package's own DER/PEM codec
(see the pkcs1 subpackage).

A key pair is assembled with the fluent KeyBuilder:

	pair, err := rsa.NewKeyBuilder().MrIterations(20).Build()
	if err != nil {
	    return err
	}

	ciphertext, err := pair.PublicKey.CryptBytes(plaintext)
	...
	plaintext, err := pair.PrivateKey.CryptBytes(ciphertext)

The private operation uses CRT recombination (Garner's algorithm) by
default; see PrivateKey.Crypt for the sign-safe handling this requires
on an unsigned big-integer engine.

# Threat model

This library is explicitly NOT constant-time, is NOT hardened against
side-channel attacks, and does NOT implement RSA blinding. Its purpose
is to make the RSA algorithm legible, not to resist a timing adversary.
Do not use it to protect a private key an attacker can measure timing
against.

# Sources

This design follows RFC 8017 (PKCS #1 v2.2) for the primitive
definitions and the wire shape of RSAPublicKey / RSAPrivateKey, and the
OpenSSL probable_prime recipe for sieve-accelerated prime search.
*/
package rsa
