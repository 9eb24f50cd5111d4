/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

// Command chip8emu runs a CHIP-8 family ROM against either a windowed
// (SDL) or terminal (termloop) host, selecting the dialect and quirk set
// from the command line (spec §1: the core never does this itself).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/sqweek/dialog"
	"github.com/spf13/cobra"

	"github.com/massung/chip8/chip8"
	"github.com/massung/chip8/display/sdlhost"
	"github.com/massung/chip8/display/termhost"
	"github.com/massung/chip8/internal/hostlog"
)

var (
	archFlag    string
	backendFlag string
	debugFlag   bool

	quirkOverrides = map[string]*bool{}
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chip8emu [rom]",
		Short: "Run a CHIP-8, Super-CHIP, or XO-CHIP ROM",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}

	cmd.Flags().StringVar(&archFlag, "arch", "schip1.1",
		"dialect to emulate: chip8, chip8hires, chip48, schip1.0, schip1.1, xochip, xochip16")
	cmd.Flags().StringVar(&backendFlag, "backend", "sdl", "host backend: sdl or terminal")
	cmd.Flags().BoolVar(&debugFlag, "debug", false, "skip invalid opcodes instead of stopping with a trap")

	for _, name := range []string{"load", "shift", "logic", "index-overflow", "index-increment", "jump", "sprite-delay", "screen-wrap"} {
		var v bool
		quirkOverrides[name] = &v
		cmd.Flags().BoolVar(&v, name, false, fmt.Sprintf("force the %s quirk on, overriding the architecture preset", name))
	}

	return cmd
}

func parseArch(s string) (chip8.Architecture, error) {
	switch s {
	case "chip8":
		return chip8.Chip8, nil
	case "chip8hires":
		return chip8.Chip8HiRes, nil
	case "chip48":
		return chip8.Chip48, nil
	case "schip1.0":
		return chip8.SuperChip1_0, nil
	case "schip1.1":
		return chip8.SuperChip1_1, nil
	case "xochip":
		return chip8.XOChip, nil
	case "xochip16":
		return chip8.XOChip16Colour, nil
	default:
		return 0, fmt.Errorf("unknown --arch %q", s)
	}
}

func applyQuirkOverrides(cfg *chip8.Config) {
	set := func(flag string, dst *bool) {
		if *quirkOverrides[flag] {
			*dst = true
		}
	}
	set("load", &cfg.Load)
	set("shift", &cfg.Shift)
	set("logic", &cfg.Logic)
	set("index-overflow", &cfg.IndexOverflow)
	set("index-increment", &cfg.IndexIncrement)
	set("jump", &cfg.Jump)
	set("sprite-delay", &cfg.SpriteDelay)
	set("screen-wrap", &cfg.ScreenWrap)
}

func run(cmd *cobra.Command, args []string) error {
	arch, err := parseArch(archFlag)
	if err != nil {
		return err
	}

	romPath := ""
	if len(args) == 1 {
		romPath = args[0]
	} else {
		dlg := dialog.File().Title("Load CHIP-8 ROM")
		dlg.Filter("All Files", "*")
		dlg.Filter("ROM Files", "ch8", "rom")
		romPath, err = dlg.Load()
		if err != nil {
			return fmt.Errorf("no ROM given and file picker was cancelled: %w", err)
		}
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("chip8emu: %w", err)
	}

	cfg := chip8.Preset(arch)
	applyQuirkOverrides(&cfg)

	log := hostlog.New()
	log.Line("Loading %s as %s", filepath.Base(romPath), arch)

	var runErr error
	switch backendFlag {
	case "sdl":
		runErr = runSDL(cfg, rom, log)
	case "terminal":
		runErr = runTerminal(cfg, rom, log)
	default:
		return fmt.Errorf("unknown --backend %q", backendFlag)
	}

	for _, line := range log.Lines() {
		fmt.Fprintln(os.Stderr, line)
	}

	return runErr
}

func runSDL(cfg chip8.Config, rom []byte, log *hostlog.Log) error {
	host, err := sdlhost.New("CHIP-8")
	if err != nil {
		return err
	}
	defer host.Close()

	m, err := chip8.NewMachine(cfg, host, host, host)
	if err != nil {
		return err
	}
	m.SetDebugMode(debugFlag)
	if err := m.Load(rom); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt)
		<-sigs
		cancel()
	}()

	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if host.Quit() {
					cancel()
					return
				}
			}
		}
	}()

	if trap := m.Run(ctx); trap != nil {
		log.Section(trap.Error())
		return trap
	}
	return nil
}

func runTerminal(cfg chip8.Config, rom []byte, log *hostlog.Log) error {
	host := termhost.New()
	defer host.Close()

	bell := &termhost.Bell{}
	m, err := chip8.NewMachine(cfg, host, host, bell)
	if err != nil {
		return err
	}
	m.SetDebugMode(debugFlag)
	if err := m.Load(rom); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt)
		<-sigs
		cancel()
	}()

	if trap := m.Run(ctx); trap != nil {
		log.Section(trap.Error())
		return trap
	}
	return nil
}
