package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/fpetroni/dmg01/dmg01"
	"github.com/fpetroni/dmg01/dmg01/disasm"
	"github.com/fpetroni/dmg01/dmg01/monitor"
)

func main() {
	app := cli.NewApp()
	app.Name = "dmg01"
	app.Description = "A DMG-01 CPU interpreter"
	app.Usage = "dmg01 [options] <binary image>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the binary image",
		},
		cli.UintFlag{
			Name:  "org",
			Usage: "Address the image is loaded at",
			Value: 0,
		},
		cli.UintFlag{
			Name:  "pc",
			Usage: "Address execution starts at",
			Value: 0x0100,
		},
		cli.IntFlag{
			Name:  "steps",
			Usage: "Number of instructions to execute (0 = run until HALT or decode failure)",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "Log every executed instruction",
		},
		cli.BoolFlag{
			Name:  "monitor",
			Usage: "Open the interactive terminal monitor instead of running headless",
		},
	}
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running interpreter", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no image path provided")
		}
	}

	image, err := os.ReadFile(romPath)
	if err != nil {
		return err
	}

	emu := dmg01.New()
	emu.LoadImage(uint16(c.Uint("org")), image)
	emu.CPU.SetPC(uint16(c.Uint("pc")))

	if c.Bool("monitor") {
		return monitor.New(emu).Run()
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	steps := c.Int("steps")
	if steps <= 0 {
		// image size bounds the useful run: without jumps, PC only moves
		// forward, so one pass over the address space is the ceiling
		steps = 0x10000
	}

	trace := c.Bool("trace")
	executed := 0

	for executed < steps && !emu.CPU.Halted() {
		if trace {
			line := disasm.DisassembleAt(emu.CPU.PC(), emu.MMU)
			slog.Debug("step",
				"pc", fmt.Sprintf("0x%04X", line.Address),
				"instruction", line.Instruction,
				"flags", emu.CPU.F.String(),
			)
		}

		if _, err := emu.Step(); err != nil {
			slog.Error("Execution stopped", "executed", executed, "error", err)
			printState(emu)
			return nil
		}
		executed++
	}

	slog.Info("Execution finished", "executed", executed, "halted", emu.CPU.Halted(), "cycles", emu.CPU.Cycles())
	printState(emu)
	return nil
}

func printState(emu *dmg01.Emulator) {
	c := emu.CPU
	fmt.Printf("AF=0x%04X BC=0x%04X DE=0x%04X HL=0x%04X SP=0x%04X PC=0x%04X [%s]\n",
		c.AF(), c.BC(), c.DE(), c.HL(), c.SP, c.PC(), c.F)
}
