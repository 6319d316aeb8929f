package pkcs1

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PEM encoding", func() {
	It("wraps a 130-character base64 body into 64/64/2 lines", func() {
		// spec.md §8 item 4's exact corner case.
		body := strings.Repeat("A", 130)
		lines := wrapBase64(body)

		Expect(lines).To(HaveLen(3))
		Expect(lines[0]).To(HaveLen(64))
		Expect(lines[1]).To(HaveLen(64))
		Expect(lines[2]).To(HaveLen(2))
		Expect(strings.Join(lines, "")).To(Equal(body))
	})

	It("round-trips a public key through PEM", func() {
		pair := toyKeyPair()
		pemText := EncodePublicKeyPEM(pair.PublicKey)

		der, kind, err := DecodePEM(pemText)
		Expect(err).To(BeNil())
		Expect(kind).To(Equal(publicKeyLabel))
		Expect(der).To(Equal(EncodePublicKeyDER(pair.PublicKey)))
	})

	It("round-trips a private key through PEM", func() {
		pair := toyKeyPair()
		pemText := EncodePrivateKeyPEM(pair.PrivateKey)

		der, kind, err := DecodePEM(pemText)
		Expect(err).To(BeNil())
		Expect(kind).To(Equal(privateKeyLabel))
		Expect(der).To(Equal(EncodePrivateKeyDER(pair.PrivateKey)))
	})

	It("ignores header/trailer mismatches and stray whitespace on decode", func() {
		pair := toyKeyPair()
		der := EncodePublicKeyDER(pair.PublicKey)
		lines := strings.Split(EncodePublicKeyPEM(pair.PublicKey), "\n")
		body := strings.Join(lines[1:len(lines)-1], "\n")

		forged := "-----BEGIN NOT A REAL LABEL-----\n  \n" + body + "\n-----END SOMETHING ELSE-----"

		decoded, _, err := DecodePEM(forged)
		Expect(err).To(BeNil())
		Expect(decoded).To(Equal(der))
	})
})
