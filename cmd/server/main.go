package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/personql/internal/server"
	"github.com/dmitrijs2005/personql/internal/server/config"
)

func main() {
	app, err := server.NewApp(config.LoadConfig())
	if err != nil {
		log.Fatalf("personql: %v", err)
	}
	app.Run(context.Background())
}
