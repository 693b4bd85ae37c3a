// Yuletree opens a window with a spinning Christmas tree in falling snow.
//
// Keys: space pauses, S saves a screenshot, F toggles the FPS overlay,
// Q or Esc quits. Defaults can be set with YULETREE_* variables or a .env
// file; flags override them.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/yuletree"
	"github.com/phanxgames/yuletree/window"
)

func main() {
	if err := yuletree.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg := yuletree.DefaultConfig()
	if err := cfg.ApplyEnv(nil); err != nil {
		log.Fatal(err)
	}

	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for bulbs and snow (0 = clock)")
	flag.BoolVar(&cfg.Intro, "intro", cfg.Intro, "dolly the camera in on start")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log per-frame render stats")
	flag.StringVar(&cfg.ScreenshotDir, "screenshots", cfg.ScreenshotDir, "screenshot output directory")
	showFPS := flag.Bool("fps", false, "show the FPS overlay")
	scriptPath := flag.String("script", "", "JSON test script to play")
	flag.Parse()

	opts := window.Options{Title: "yuletree", ShowFPS: *showFPS}
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

	if err := window.Run(cfg, opts); err != nil {
		log.Fatal(err)
	}
}
