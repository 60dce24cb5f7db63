package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/amitu/bhumi/audio"
	"github.com/amitu/bhumi/engine"
	"github.com/amitu/bhumi/logger"
	"github.com/amitu/bhumi/terminal"
)

var muteFlag = flag.Bool("mute", false, "Disable the thrust hum")

func main() {
	// Panic recovery: restore the terminal to a sane state even if the
	// engine crashes mid-frame
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mBHUMI CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	logger.Init(true)

	device, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer device.Close()

	loop := engine.New(device)

	if !*muteFlag {
		hum, err := audio.NewHum()
		if err != nil {
			// Audio is a nicety, keep flying without it
			logger.Log.WithError(err).Warn("Audio unavailable, continuing without sound")
		} else {
			loop.SetSound(hum)
			defer hum.Stop()
		}
	}

	if err := loop.Run(); err != nil {
		device.Close()
		fmt.Fprintf(os.Stderr, "Frame loop failed: %v\n", err)
		os.Exit(1)
	}
}
