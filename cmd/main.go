// Package main is the entry point for the sample-duck player.
//
// sample-duck catalogs audio sample libraries and plays them back through
// the default output device:
//   - import a directory of samples into the catalog
//   - play a single file, optionally looped
//   - list the cataloged samples
//
// Build:
//
//	go build -o build/sample-duck ./cmd
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/henrybley/sample-duck/internal/app"
	"github.com/henrybley/sample-duck/internal/domain"
)

func main() {
	var (
		dbPath      = flag.String("db", "", "path to the sample catalog database (default sample-duck.db)")
		importDir   = flag.String("import", "", "directory to scan for samples")
		playPath    = flag.String("play", "", "audio file to play")
		loop        = flag.Bool("loop", false, "loop playback until interrupted")
		listSamples = flag.Bool("list", false, "list cataloged samples")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(app.GetVersionInfo().FullString())
		return
	}

	config := app.DefaultConfig()
	if *dbPath != "" {
		config.DatabasePath = *dbPath
	}

	application, err := app.NewApplication(config)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Shutdown()

	if *importDir != "" {
		samples, err := application.Library().ScanFolder(*importDir)
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		fmt.Printf("Imported %d samples from %s\n", len(samples), *importDir)
	}

	if *listSamples {
		samples, err := application.Library().Samples()
		if err != nil {
			log.Fatalf("Failed to list samples: %v", err)
		}
		for _, s := range samples {
			fmt.Printf("%6d  %-40s  %-6s  %6d Hz  %s\n",
				s.ID, s.Name, s.Format, s.SampleRate, s.Path)
		}
	}

	if *playPath != "" {
		if err := play(application, *playPath, *loop); err != nil {
			log.Fatalf("Playback failed: %v", err)
		}
	}
}

// play loads and plays a single file, blocking until playback completes or
// the process is interrupted.
func play(application *app.Application, path string, loop bool) error {
	playback := application.Playback()
	playback.SetLoop(loop)

	done := make(chan struct{})
	application.EventBus().Subscribe(domain.EventPlaybackCompleted, func(domain.Event) {
		close(done)
	})

	sample, err := application.Library().SampleByPath(path)
	if err != nil {
		// Not cataloged; play it directly
		sample = &domain.Sample{Path: path, Name: path}
	}

	if err := playback.LoadSample(*sample); err != nil {
		return err
	}
	if err := playback.Play(); err != nil {
		return err
	}

	state := playback.State()
	fmt.Printf("Playing %s (%s)\n", sample.Name, state.Duration)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		fmt.Println("Done")
	case <-sig:
		fmt.Println("\nInterrupted")
	}

	return nil
}
