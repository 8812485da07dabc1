package main

import (
	"log"

	"stocktracker/cmd"

	_ "github.com/lib/pq"
)

func main() {
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(3009)
	if err != nil {
		log.Fatal(err)
	}
}
