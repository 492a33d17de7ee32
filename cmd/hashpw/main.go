// Génère le hash Argon2id à mettre dans ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/hashpw 'mon-mot-de-passe'
package main

import (
	"fmt"
	"log"
	"os"

	"bazar_back_end/internal/utils"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: hashpw <mot-de-passe>")
	}

	hash, err := utils.HashPassword(os.Args[1])
	if err != nil {
		log.Fatal("❌ Erreur hash:", err)
	}
	fmt.Println(hash)
}
