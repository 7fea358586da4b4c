package main

import (
	"flag"
	"log"
	"os"

	"github.com/caarlos0/env/v11"

	"zuul/pkg/game/gameplay"
	"zuul/pkg/game/renderer"
	"zuul/pkg/game/renderer/plain"
	"zuul/pkg/game/renderer/tui"
	"zuul/pkg/game/setup"
)

// config holds environment-provided defaults; CLI flags override them.
type config struct {
	Plain  bool   `env:"ZUUL_PLAIN"`
	Locale string `env:"ZUUL_LOCALE" envDefault:"en_GB.utf8"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Cannot parse environment: %v", err)
	}

	plainOutput := flag.Bool("plain", cfg.Plain, "uncolored output without markup")
	locale := flag.String("locale", cfg.Locale, "locale for translated messages")
	flag.Parse()

	if *plainOutput {
		renderer.SetRenderer(plain.New(os.Stdout))
	} else {
		renderer.SetRenderer(tui.New(*locale))
	}
	renderer.Init()

	g := setup.BuildWorld()
	gameplay.Run(g)
}
