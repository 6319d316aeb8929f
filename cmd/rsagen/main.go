// Command rsagen generates an RSA key pair and prints it PEM-encoded.
//
//	go build ./cmd/rsagen
//	./rsagen -iterations 40
package main

import (
	"flag"
	"fmt"
	"os"

	rsa "github.com/arekouzounian/rs-a"
	"github.com/arekouzounian/rs-a/pkcs1"
)

func main() {
	iterations := flag.Int("iterations", 20, "Miller-Rabin witness count per candidate prime")
	flag.Parse()

	pair, err := rsa.NewKeyBuilder().MrIterations(*iterations).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rsagen: generating key: %s\n", err)
		os.Exit(1)
	}

	if err := pair.PrivateKey.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "rsagen: generated key failed validation: %s\n", err)
		os.Exit(1)
	}

	fmt.Println(pkcs1.EncodePrivateKeyPEM(pair.PrivateKey))
	fmt.Println(pkcs1.EncodePublicKeyPEM(pair.PublicKey))
}
