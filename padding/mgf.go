package padding

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/arekouzounian/rs-a/rsaerr"
)

// MGF1 implements the mask-generation function of RFC 8017 Appendix
// B.2.1, using SHA-256 as the underlying hash. No Padding
// implementation in this module calls it yet -- OAEP is an explicit
// non-goal -- but the hook and its KindMgf error path are specified.
func MGF1(seed []byte, outputLen int) ([]byte, error) {
	const hashLen = sha256.Size

	if outputLen < 0 {
		return nil, rsaerr.Mgf("mask generation function: negative output length %d", outputLen)
	}
	// RFC 8017 requires outputLen <= 2^32 * hashLen; this module's
	// largest plausible mask is nowhere near that, so any outputLen
	// that would overflow a 32-bit counter is simply rejected.
	numBlocks := (outputLen + hashLen - 1) / hashLen
	if numBlocks > 1<<32-1 {
		return nil, rsaerr.Mgf("mask generation function: output length %d too large", outputLen)
	}

	mask := make([]byte, 0, numBlocks*hashLen)
	var counter [4]byte
	for i := 0; i < numBlocks; i++ {
		binary.BigEndian.PutUint32(counter[:], uint32(i))
		h := sha256.New()
		h.Write(seed)
		h.Write(counter[:])
		mask = h.Sum(mask)
	}

	return mask[:outputLen], nil
}
