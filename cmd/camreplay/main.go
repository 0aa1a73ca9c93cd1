// camreplay replays scripted camera input without opening a window.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/freecam/internal/logger"
	"github.com/Faultbox/freecam/internal/replay"
	"github.com/Faultbox/freecam/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		cmdRun(args)
	case "check":
		cmdCheck(args)
	case "actions":
		cmdActions()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`camreplay - replay scripted input through the free-flight camera

Usage:
  camreplay <command> [options]

Commands:
  run [-dump] [-info] [-decimals n] [-debug] <script.yaml>
                                     Replay a script, one pose line per tick
  check <script.yaml>...             Validate scripts without running them
  actions                            List action and axis names

Examples:
  camreplay run internal/replay/testdata/orbit.yaml
  camreplay run -dump -decimals 6 flight.yaml
  camreplay check *.yaml`)
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	dump := fs.Bool("dump", false, "Print the view matrix after every tick")
	info := fs.Bool("info", false, "Print the camera info lines at the end")
	decimals := fs.Int("decimals", 4, "Decimals kept in printed numbers")
	debug := fs.Bool("debug", false, "Enable debug logging")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: camreplay run [options] <script.yaml>")
		os.Exit(1)
	}

	level := "warn"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	script, err := replay.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	res, err := replay.Run(script, out, replay.Options{
		Decimals:  *decimals,
		DumpAll:   *dump,
		PrintInfo: *info,
	})
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%d ticks, final yaw %s pitch %s roll %s\n", res.Ticks,
		math.FormatDecimals(res.Pose.Yaw, *decimals),
		math.FormatDecimals(res.Pose.Pitch, *decimals),
		math.FormatDecimals(res.Pose.Roll, *decimals))
}

func cmdCheck(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: camreplay check <script.yaml>...")
		os.Exit(1)
	}

	failed := 0
	for _, path := range args {
		script, err := replay.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %v\n", err)
			failed++
			continue
		}
		fmt.Printf("ok   %s (%d frames, %d ticks)\n", path, len(script.Frames), script.Ticks())
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func cmdActions() {
	fmt.Println("Actions:")
	fmt.Println("  " + strings.Join(replay.ActionNames(), "\n  "))
	fmt.Println("\nAxes:")
	fmt.Println("  " + strings.Join(replay.AxisNames(), "\n  "))
}
