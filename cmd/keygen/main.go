// Command keygen prints a fresh wallet keypair in the formats the
// registry expects: the private key signs transactions and decrypts
// deeds, the public key goes on the contract as the encryption key.
package main

import (
	"fmt"
	"log"

	"land-registry/internal/walletkeys"
)

func main() {
	keys, err := walletkeys.GenerateKeys()
	if err != nil {
		log.Fatalln("key generation failed:", err)
	}

	fmt.Println("address:    ", keys.Address)
	fmt.Println("private key:", keys.PrivateKeyHex)
	fmt.Println("public key: ", keys.PublicKeyHex)
}
