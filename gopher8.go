// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

// SDL requires that window event handling happens on the main thread so
// everything runs there. there are no other goroutines competing for it.
//
// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DEBUG", "VERSION")
	md.AddDefaultSubMode("RUN")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md)

	case "DEBUG":
		err = debug(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	species := md.AddString("species", "AUTO", "program species: CHIP8, ETI660")
	scaling := md.AddFloat64("scale", 10.0, "display scaling")
	ipf := md.AddInt("ipf", playmode.FramesPerSecond/5, "instructions per frame")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("chip-8 program required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0), *species)
		return playmode.Play(float32(*scaling), *ipf, *wav, cartload)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	species := md.AddString("species", "AUTO", "program species: CHIP8, ETI660")
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, true)
	} else {
		logger.SetEcho(nil, false)
	}

	var term terminal.Terminal

	switch *termType {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		term = &plainterm.PlainTerminal{}
	}

	dbg, err := debugger.NewDebugger(term)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("chip-8 program required for %s mode", md)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0), *species)
		return dbg.Start(cartload)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vers, rev, _ := version.Version()
	fmt.Printf("%s (%s)\n", version.ApplicationName, vers)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
