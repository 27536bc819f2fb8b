package main

import (
	"log"

	"docmeister/internal/app"
)

func main() {
	app, err := app.InitApp()
	if err != nil {
		log.Fatal("can't init app ", err)
	}

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
