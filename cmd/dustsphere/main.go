package main

import (
	"flag"
	"log"

	dust "github.com/dust3d/dustsphere"
)

func main() {
	var (
		count  = flag.Int("n", 0, "particle count (0 = preset or default)")
		preset = flag.String("preset", "", "path to a JSON params preset")
		save   = flag.String("save-preset", "", "write the effective params to this path and exit")
		width  = flag.Int("width", 1280, "window width")
		height = flag.Int("height", 720, "window height")
		debug  = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	params := dust.DefaultParams()
	if *preset != "" {
		var err error
		params, err = dust.LoadParams(*preset)
		if err != nil {
			log.Fatalf("loading preset: %v", err)
		}
	}
	if *count > 0 {
		params.ParticleCount = *count
	}

	if *save != "" {
		if err := dust.SaveParams(*save, params); err != nil {
			log.Fatalf("saving preset: %v", err)
		}
		return
	}

	sess := dust.Activate(dust.SessionConfig{
		Params:       params,
		WindowWidth:  *width,
		WindowHeight: *height,
		Debug:        *debug,
	})
	defer sess.Deactivate()

	sess.Run()
}
