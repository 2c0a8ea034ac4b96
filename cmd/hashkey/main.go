package main

import (
	"fmt"
	"log"
	"os"

	"universe-classifier/internal/service"
)

// Uso: hashkey <api-key>
// Imprime el valor para API_KEY_HASH.
func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		log.Fatal("usage: hashkey <api-key>")
	}
	hash, err := service.HashAPIKey(os.Args[1])
	if err != nil {
		log.Fatalf("hash api key: %v", err)
	}
	fmt.Println(hash)
}
