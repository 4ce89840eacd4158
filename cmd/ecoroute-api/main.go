// README: Entry point; loads .env, wires collaborators and flow services with fx, runs the HTTP server.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	app := fx.New(
		fx.WithLogger(newFxLogger),
		Module,
		fx.Invoke(registerServer),
	)
	app.Run()
}
