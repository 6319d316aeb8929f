package primes

import "fmt"

// Verbose gates this package's diagnostic tracing, independent of the
// root rsa package's own Verbose flag (primes must not import the
// root package back, to avoid a cycle). Off by default.
var Verbose bool

func trace(format string, args ...any) {
	if !Verbose {
		return
	}
	fmt.Printf("primes: "+format+"\n", args...)
}
