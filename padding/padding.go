// Package padding defines the capability hook this module's core
// leaves unimplemented: a message-padding scheme layered above the
// raw RSA primitive (OAEP, PKCS#1 v1.5 encryption, PSS signing). None
// of those schemes are implemented here; this package exists so a
// caller can plug one in against a stable interface, and so the
// reserved Mgf error kind has somewhere to come from.
package padding

import (
	rsa "github.com/arekouzounian/rs-a"
)

// Padding wraps an RsaPrimitive with a message-padding scheme. label
// is the OAEP-style associated data; implementations that don't use a
// label may ignore it.
type Padding interface {
	Encrypt(pub *rsa.PublicKey, msg, label []byte) ([]byte, error)
	Decrypt(priv *rsa.PrivateKey, ciphertext, label []byte) ([]byte, error)
}
