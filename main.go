//go:build !js

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"codeberg.org/anaseto/gruid"
)

func main() {
	optVersion := flag.Bool("version", false, "print build info")
	optFullscreen, optNoAcceleration := new(bool), new(bool)
	optWidthScale, optHeightScale := new(float64), new(float64)
	if Tiles {
		optFullscreen = flag.Bool("F", false, "fullscreen")
		optNoAcceleration = flag.Bool("noaccel", false, "disable graphic acceleration")
		optWidthScale = flag.Float64("w", 1.0, "window width scale factor (default: 1.0, examples: 0.75, 1.25)")
		optHeightScale = flag.Float64("h", 1.0, "window height scale factor (default: 1.0, examples: 0.75, 1.25)")
	}
	flag.Parse()

	if *optVersion {
		fmt.Printf("keydelve\t%v\n", Version)
		if bi, ok := debug.ReadBuildInfo(); ok {
			fmt.Print(bi)
		}
		os.Exit(0)
	}
	log.SetPrefix("keydelve ")
	err := InitConfig()
	if err != nil {
		log.Print(err)
	}
	initDriver(*optFullscreen, *optWidthScale, *optHeightScale, *optNoAcceleration)
	RunGame()
}

// RunGame starts the game.
func RunGame() {
	gd := gruid.NewGrid(UIWidth, UIHeight)
	md := &model{gd: gd}
	app := gruid.NewApp(gruid.AppConfig{
		Driver: driver,
		Model:  md,
	})
	if f := setLogOutput(); f != nil {
		defer func() {
			f.Close()
		}()
	}
	err := app.Start(context.Background())
	log.SetOutput(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
}

// setLogOutput sets standard log output to the logs file in the game's data
// directory, so that diagnostics do not garble the terminal UI.
func setLogOutput() *os.File {
	dataDir, err := DataDir()
	if err != nil {
		log.Print(err)
		return nil
	}
	logFile := filepath.Join(dataDir, "logs.txt")
	f, err := os.Create(logFile)
	if err != nil {
		log.Print(err)
		return nil
	}
	if Tiles {
		log.SetOutput(io.MultiWriter(f, os.Stderr))
	} else {
		log.SetOutput(f)
	}
	return f
}
