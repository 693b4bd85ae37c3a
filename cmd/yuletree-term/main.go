// Yuletree-term draws the Christmas tree scene in the terminal using
// half-block characters, two pixels per cell.
//
// Keys: space pauses, s saves a screenshot, q, Esc or Ctrl-C quits.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/phanxgames/yuletree"
	"github.com/phanxgames/yuletree/term"
)

func main() {
	if err := yuletree.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg := yuletree.DefaultConfig()
	if err := cfg.ApplyEnv(nil); err != nil {
		log.Fatal(err)
	}

	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for bulbs and snow (0 = clock)")
	flag.BoolVar(&cfg.Intro, "intro", cfg.Intro, "dolly the camera in on start")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log per-frame render stats")
	flag.StringVar(&cfg.ScreenshotDir, "screenshots", cfg.ScreenshotDir, "screenshot output directory")
	fps := flag.Int("fps", 30, "redraw rate")
	chime := flag.Bool("chime", false, "play a tone on every full turn of the tree")
	scriptPath := flag.String("script", "", "JSON test script to play")
	flag.Parse()

	opts := term.Options{FPS: *fps, Chime: *chime}
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err := yuletree.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		opts.Script = runner
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.Run(ctx, cfg, opts); err != nil {
		log.Fatal(err)
	}
}
