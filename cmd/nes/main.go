// Command nes is a minimal host binary around the nes package: it loads
// an iNES ROM, opens a GLFW window, and runs the emulator until closed.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"nesgo/nes"
	"nesgo/ui"
)

func main() {
	scale := flag.Int("scale", 3, "window scale factor, applied to the 256x240 NES picture")
	debug := flag.Bool("debug", false, "run with the stdin-driven debug console instead of the GL window")
	flag.Parse()

	if flag.NArg() < 1 {
		glog.Fatalf("usage: nes [flags] <rom.nes>")
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		glog.Fatalf("nes: failed to read %s: %v", path, err)
	}

	console, ok, err := nes.LoadINES(data, *debug)
	if err != nil || !ok {
		glog.Fatalf("nes: failed to load %s: %v", path, err)
	}
	console.Reset()

	if *debug {
		for {
			if _, err := console.Step(); err != nil {
				glog.Fatalf("nes: %v", err)
			}
		}
	}

	ui.Start(console, 256*(*scale), 240*(*scale))
}
