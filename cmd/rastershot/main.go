// Command rastershot renders frames of the spinning scene without a window
// and writes them as image files.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"sync/atomic"

	"mini-raster/internal/config"
	"mini-raster/internal/game"
	"mini-raster/internal/present"

	"github.com/schollz/progressbar/v3"
	"github.com/xlab/closer"
)

const frameDuration = 1.0 / 60

func main() {
	configPath := flag.String("config", "", "YAML settings file (defaults when empty)")
	frames := flag.Int("frames", 60, "number of frames to render")
	every := flag.Int("every", 1, "write every n-th frame")
	outDir := flag.String("out", "frames", "output directory")
	formatName := flag.String("format", "png", "image format: png or bmp")
	quiet := flag.Bool("quiet", false, "no progress bar")
	caption := flag.Bool("caption", false, "stamp frame number and render stats onto each image")
	flag.Parse()

	format, err := present.ParseFormat(*formatName)
	if err != nil {
		log.Fatal(err)
	}
	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	surface := present.NewImageSurface(settings.Width, settings.Height)
	session, err := game.NewSession(settings, surface)
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	loop := game.NewLoop(session)

	var captioner *present.Captioner
	if *caption {
		if captioner, err = present.NewCaptioner(13); err != nil {
			log.Fatalf("caption: %v", err)
		}
	}

	var rendered, written atomic.Int64
	closer.Bind(func() {
		session.Cleanup()
		if captioner != nil {
			_ = captioner.Close()
		}
		log.Printf("rendered %d frames, wrote %d files to %s", rendered.Load(), written.Load(), *outDir)
	})

	go func() {
		defer closer.Close()

		var bar *progressbar.ProgressBar
		if !*quiet {
			bar = progressbar.Default(int64(*frames), "rendering")
		}
		for i := 0; i < *frames; i++ {
			if err := loop.Tick(frameDuration); err != nil {
				closer.Fatalln(err)
			}
			rendered.Add(1)
			if i%max(*every, 1) == 0 {
				path := filepath.Join(*outDir, fmt.Sprintf("frame_%04d.%s", i, format))
				img := surface.Snapshot()
				if captioner != nil {
					st := loop.Stats()
					captioner.Draw(img, fmt.Sprintf("frame %04d  lines %d  points %d", i, st.Lines, st.Points))
				}
				if err := present.WriteFile(path, img, format); err != nil {
					closer.Fatalln(err)
				}
				written.Add(1)
			}
			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}()
	closer.Hold()
}
