package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	goboy "github.com/mpavlov/goboy"
	"github.com/mpavlov/goboy/backend"
	"github.com/mpavlov/goboy/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "goboy"
	app.Description = "A Game Boy emulator"
	app.Usage = "goboy [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a display",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
		},
		cli.BoolFlag{
			Name:  "sdl",
			Usage: "Use the SDL2 window backend instead of the terminal (requires an sdl2 build)",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window scale factor for the SDL2 backend",
			Value: 4,
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}
	app.Action = runEmulator

	if err := app.Run(os.Args); err != nil {
		slog.Error("error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	if c.Bool("verbose") || c.Bool("headless") {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(handler))
	}

	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	data, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("failed to read ROM: %v", err)
	}

	emu := goboy.New()
	if err := emu.Load(data); err != nil {
		return fmt.Errorf("failed to load ROM: %v", err)
	}

	var b backend.Backend
	limiter := timing.Limiter(timing.NewTickerLimiter())

	switch {
	case c.Bool("headless"):
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames with a positive value")
		}
		b = backend.NewHeadlessBackend(frames)
		limiter = timing.NewNoOpLimiter()
	case c.Bool("sdl"):
		b = backend.NewSDL2Backend()
	default:
		b = backend.NewTerminalBackend()
	}

	if err := b.Init(backend.Config{Title: "goboy", Scale: c.Int("scale")}); err != nil {
		return err
	}
	defer b.Cleanup()

	return runLoop(emu, b, limiter)
}

func runLoop(emu *goboy.Emulator, b backend.Backend, limiter timing.Limiter) error {
	for {
		frame := emu.Step()

		events, err := b.Update(frame)
		if err != nil {
			return err
		}

		for _, ev := range events {
			switch {
			case ev.Quit:
				return nil
			case ev.Pressed:
				emu.Press(ev.Button)
			default:
				emu.Release(ev.Button)
			}
		}

		limiter.WaitForNextFrame()
	}
}
