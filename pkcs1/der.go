// Package pkcs1 implements a hand-rolled DER codec for the PKCS#1
// RSAPublicKey and RSAPrivateKey ASN.1 structures (RFC 8017 Appendix
// A.1), plus a lax PEM wrapper around it. Nothing here calls into
// encoding/asn1 or encoding/pem: the codec is the subject of the
// specification this module implements, not a detail to delegate (see
// this module's DESIGN.md for the full rationale).
package pkcs1

import (
	"math/big"

	rsa "github.com/arekouzounian/rs-a"
	"github.com/arekouzounian/rs-a/rsaerr"
)

const (
	tagInteger  = 0x02
	tagSequence = 0x30
)

// maxLengthBytes bounds the number of subsequent length bytes DER's
// long-form length encoding may use. An 8-byte length field already
// addresses 2^64 bytes, far beyond anything this codec will ever see
// on either encode or decode; decodeLength fails with rsaerr.KindSerial
// above this, which is the host-pointer-width cap spec.md §4.6 calls
// for on a 64-bit build.
const maxLengthBytes = 8

// EncodePublicKeyDER encodes pub as a PKCS#1 RSAPublicKey:
//
//	RSAPublicKey ::= SEQUENCE { modulus INTEGER, publicExponent INTEGER }
func EncodePublicKeyDER(pub *rsa.PublicKey) []byte {
	return encodeSequence(encodeInteger(pub.N), encodeInteger(pub.E))
}

// DecodePublicKeyDER decodes a PKCS#1 RSAPublicKey.
func DecodePublicKeyDER(der []byte) (*rsa.PublicKey, error) {
	body, err := readSequence(der)
	if err != nil {
		return nil, err
	}

	p := &parser{buf: body}
	n, err := p.readInteger()
	if err != nil {
		return nil, err
	}
	e, err := p.readInteger()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, rsaerr.Serial("trailing bytes after RSAPublicKey fields")
	}

	return &rsa.PublicKey{N: n, E: e}, nil
}

// EncodePrivateKeyDER encodes priv as a PKCS#1 RSAPrivateKey:
//
//	RSAPrivateKey ::= SEQUENCE {
//	  version INTEGER,
//	  modulus INTEGER, publicExponent INTEGER, privateExponent INTEGER,
//	  prime1 INTEGER, prime2 INTEGER,
//	  exponent1 INTEGER, exponent2 INTEGER, coefficient INTEGER
//	}
func EncodePrivateKeyDER(priv *rsa.PrivateKey) []byte {
	return encodeSequence(
		encodeInteger(big.NewInt(int64(priv.Version))),
		encodeInteger(priv.N),
		encodeInteger(priv.E),
		encodeInteger(priv.D),
		encodeInteger(priv.P),
		encodeInteger(priv.Q),
		encodeInteger(priv.DP),
		encodeInteger(priv.DQ),
		encodeInteger(priv.QInv),
	)
}

// DecodePrivateKeyDER decodes a PKCS#1 RSAPrivateKey. It rejects any
// version other than 0.
func DecodePrivateKeyDER(der []byte) (*rsa.PrivateKey, error) {
	body, err := readSequence(der)
	if err != nil {
		return nil, err
	}

	p := &parser{buf: body}
	version, err := p.readInteger()
	if err != nil {
		return nil, err
	}
	if !version.IsInt64() || version.Int64() != 0 {
		return nil, rsaerr.Serial("unsupported RSAPrivateKey version %s", version)
	}

	fields := make([]*big.Int, 8)
	names := []string{"modulus", "publicExponent", "privateExponent", "prime1", "prime2", "exponent1", "exponent2", "coefficient"}
	for i := range fields {
		v, err := p.readInteger()
		if err != nil {
			return nil, rsaerr.Wrap(rsaerr.KindSerial, err, "reading RSAPrivateKey.%s", names[i])
		}
		fields[i] = v
	}
	if !p.atEnd() {
		return nil, rsaerr.Serial("trailing bytes after RSAPrivateKey fields")
	}

	return &rsa.PrivateKey{
		Version: 0,
		N:       fields[0],
		E:       fields[1],
		D:       fields[2],
		P:       fields[3],
		Q:       fields[4],
		DP:      fields[5],
		DQ:      fields[6],
		QInv:    fields[7],
	}, nil
}

// encodeInteger encodes x as a DER INTEGER: big-endian magnitude,
// prefixed with 0x00 if the high bit of the first byte would
// otherwise be set. Zero encodes as the single byte 0x00.
func encodeInteger(x *big.Int) []byte {
	magnitude := x.Bytes()
	if len(magnitude) == 0 {
		magnitude = []byte{0x00}
	} else if magnitude[0]&0x80 != 0 {
		padded := make([]byte, len(magnitude)+1)
		copy(padded[1:], magnitude)
		magnitude = padded
	}

	out := make([]byte, 0, 2+len(magnitude)+len(encodeLength(len(magnitude))))
	out = append(out, tagInteger)
	out = append(out, encodeLength(len(magnitude))...)
	out = append(out, magnitude...)
	return out
}

// encodeSequence wraps the concatenation of fields in a SEQUENCE tag
// and length.
func encodeSequence(fields ...[]byte) []byte {
	total := 0
	for _, f := range fields {
		total += len(f)
	}

	out := make([]byte, 0, 2+total+len(encodeLength(total)))
	out = append(out, tagSequence)
	out = append(out, encodeLength(total)...)
	for _, f := range fields {
		out = append(out, f...)
	}
	return out
}

// encodeLength encodes n as a DER length: a single byte if n <= 0x7F,
// otherwise a leading 0x80|k byte followed by k minimal big-endian
// length bytes.
func encodeLength(n int) []byte {
	if n <= 0x7F {
		return []byte{byte(n)}
	}

	var tmp [8]byte
	i := len(tmp)
	v := n
	for v > 0 {
		i--
		tmp[i] = byte(v)
		v >>= 8
	}
	lengthBytes := tmp[i:]

	out := make([]byte, 0, 1+len(lengthBytes))
	out = append(out, 0x80|byte(len(lengthBytes)))
	out = append(out, lengthBytes...)
	return out
}

// readSequence validates the outer SEQUENCE tag and length and returns
// its body (the length and tag byte stripped off).
func readSequence(der []byte) ([]byte, error) {
	p := &parser{buf: der}
	tag, err := p.readByte()
	if err != nil {
		return nil, rsaerr.Wrap(rsaerr.KindSerial, err, "reading outer tag")
	}
	if tag != tagSequence {
		return nil, rsaerr.Serial("expected SEQUENCE tag 0x%02x, got 0x%02x", tagSequence, tag)
	}

	length, err := p.readLength()
	if err != nil {
		return nil, err
	}
	body, err := p.readN(length)
	if err != nil {
		return nil, rsaerr.Wrap(rsaerr.KindSerial, err, "reading SEQUENCE body")
	}
	return body, nil
}

// parser is a minimal forward-only cursor over a DER byte buffer.
type parser struct {
	buf []byte
	pos int
}

func (p *parser) atEnd() bool {
	return p.pos == len(p.buf)
}

func (p *parser) readByte() (byte, error) {
	if p.pos >= len(p.buf) {
		return 0, rsaerr.Serial("unexpected end of input")
	}
	b := p.buf[p.pos]
	p.pos++
	return b, nil
}

func (p *parser) readN(n int) ([]byte, error) {
	if n < 0 || p.pos+n > len(p.buf) {
		return nil, rsaerr.Serial("length %d exceeds remaining input", n)
	}
	out := p.buf[p.pos : p.pos+n]
	p.pos += n
	return out, nil
}

// readLength reads a DER length field: a single byte if the high bit
// is clear, otherwise 0x80|k followed by k big-endian length bytes.
func (p *parser) readLength() (int, error) {
	first, err := p.readByte()
	if err != nil {
		return 0, rsaerr.Wrap(rsaerr.KindSerial, err, "reading length")
	}
	if first&0x80 == 0 {
		return int(first), nil
	}

	k := int(first &^ 0x80)
	if k == 0 {
		return 0, rsaerr.Serial("indefinite-form length not supported")
	}
	if k > maxLengthBytes {
		return 0, rsaerr.Serial("length field width %d exceeds supported maximum %d", k, maxLengthBytes)
	}

	lengthBytes, err := p.readN(k)
	if err != nil {
		return 0, err
	}

	length := 0
	for _, b := range lengthBytes {
		length = length<<8 | int(b)
	}
	if length < 0 {
		return 0, rsaerr.Serial("length field overflowed a native int")
	}
	return length, nil
}

// readInteger reads a DER INTEGER and returns its value. Per spec.md
// §4.6, a leading 0x00 sign byte is dropped.
func (p *parser) readInteger() (*big.Int, error) {
	tag, err := p.readByte()
	if err != nil {
		return nil, rsaerr.Wrap(rsaerr.KindSerial, err, "reading INTEGER tag")
	}
	if tag != tagInteger {
		return nil, rsaerr.Serial("expected INTEGER tag 0x%02x, got 0x%02x", tagInteger, tag)
	}

	length, err := p.readLength()
	if err != nil {
		return nil, err
	}
	raw, err := p.readN(length)
	if err != nil {
		return nil, rsaerr.Wrap(rsaerr.KindSerial, err, "reading INTEGER value")
	}

	if len(raw) > 0 && raw[0] == 0x00 {
		raw = raw[1:]
	}
	return new(big.Int).SetBytes(raw), nil
}
