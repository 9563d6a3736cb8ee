package main

import (
	"log"

	"github.com/jmoreau/formadvisor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
