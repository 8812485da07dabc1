package main

import (
	"log"

	"stocktracker/cmd"

	_ "github.com/lib/pq"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
