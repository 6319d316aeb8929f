// Package sshkey extracts the (e, n) pair from an OpenSSH
// authorized_keys-format RSA public key line. It implements only the
// minimum needed to do that -- not a general OpenSSH wire-format
// parser.
package sshkey

import (
	"encoding/base64"
	"encoding/binary"
	"math/big"
	"strings"

	rsa "github.com/arekouzounian/rs-a"
	"github.com/arekouzounian/rs-a/rsaerr"
)

const rsaAlgorithmName = "ssh-rsa"

// ParseAuthorizedKey parses a single authorized_keys-format line
// ("ssh-rsa AAAA... comment") and returns the RSA public key it
// encodes. The blob is a sequence of (length uint32 big-endian,
// bytes[length]) records; for ssh-rsa the three records are the
// algorithm name, the exponent e, and the modulus n, in that order.
func ParseAuthorizedKey(line string) (*rsa.PublicKey, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, rsaerr.Serial("authorized-keys line has fewer than 2 fields")
	}

	blob, err := base64.StdEncoding.DecodeString(fields[1])
	if err != nil {
		return nil, rsaerr.Wrap(rsaerr.KindSerial, err, "decoding base64 key blob")
	}

	records, err := splitRecords(blob)
	if err != nil {
		return nil, err
	}
	if len(records) != 3 {
		return nil, rsaerr.Serial("expected 3 records in ssh-rsa blob, got %d", len(records))
	}

	algorithm, e, n := records[0], records[1], records[2]
	if string(algorithm) != rsaAlgorithmName {
		return nil, rsaerr.Serial("unsupported algorithm %q, expected %q", algorithm, rsaAlgorithmName)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: new(big.Int).SetBytes(e),
	}, nil
}

// splitRecords walks blob as a sequence of (uint32 big-endian length,
// bytes[length]) records until the input is exhausted.
func splitRecords(blob []byte) ([][]byte, error) {
	var records [][]byte
	pos := 0

	for pos < len(blob) {
		if pos+4 > len(blob) {
			return nil, rsaerr.Serial("truncated record length at offset %d", pos)
		}
		length := int(binary.BigEndian.Uint32(blob[pos : pos+4]))
		pos += 4

		if length < 0 || pos+length > len(blob) {
			return nil, rsaerr.Serial("record length %d exceeds remaining input at offset %d", length, pos)
		}
		records = append(records, blob[pos:pos+length])
		pos += length
	}

	return records, nil
}
