package rsa

import (
	"math/big"
)

// congruentModN reports whether n divides (a - b).
func congruentModN(a *big.Int, b *big.Int, n *big.Int) bool {
	aModN := new(big.Int).Mod(a, n)
	bModN := new(big.Int).Mod(b, n)

	return aModN.Cmp(bModN) == 0
}
