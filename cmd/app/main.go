package main

import (
	"github.com/ampeli/wineroulette/internal/app"
	"github.com/ampeli/wineroulette/internal/config"
)

func main() {
	app.Go(config.Load())
}
