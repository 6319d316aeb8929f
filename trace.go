package rsa

import "fmt"

// Verbose gates the package's diagnostic tracing. Key generation is a
// loop that can run for thousands of candidates before landing on a
// prime; flipping this on prints a line per stage so a caller can see
// where time is going. Off by default.
var Verbose bool

func trace(format string, args ...any) {
	if !Verbose {
		return
	}
	fmt.Printf("rsa: "+format+"\n", args...)
}
