package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/authslice/internal/gateway"
	"github.com/dmitrijs2005/authslice/internal/gateway/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	app, err := gateway.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
