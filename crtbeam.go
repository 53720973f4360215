// This file is part of CRTBeam.
//
// CRTBeam is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CRTBeam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CRTBeam.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/jetsetilly/crtbeam/display"
	"github.com/jetsetilly/crtbeam/logger"
	"github.com/jetsetilly/crtbeam/performance"
	"github.com/jetsetilly/crtbeam/performance/limiter"
	"github.com/jetsetilly/crtbeam/prefs"
	"github.com/jetsetilly/crtbeam/screen"
	"github.com/jetsetilly/crtbeam/statsview"
	"github.com/jetsetilly/crtbeam/testpattern"
)

const version = "0.2.0"

func init() {
	// SDL window creation and event servicing must happen on the main thread
	runtime.LockOSThread()
}

// #mainthread
func main() {
	mode := "RUN"
	args := os.Args[1:]

	// the first argument selects the mode unless it looks like a flag
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		mode = strings.ToUpper(args[0])
		args = args[1:]
	}

	var err error

	switch mode {
	case "RUN":
		err = play(args)
	case "PERFORMANCE":
		err = perform(args)
	case "VERSION":
		fmt.Printf("crtbeam %s\n", version)
	default:
		err = fmt.Errorf("unknown mode (%s). available modes: RUN, PERFORMANCE, VERSION", mode)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(10)
	}
}

// beamOverrides adds a command line flag for every simulation setting. the
// returned function applies the flags the user actually supplied, routing
// them through the prefs system so the normal validation runs.
func beamOverrides(flags *flag.FlagSet, prf *display.Preferences) func() error {
	overrides := []struct {
		name string
		help string
		p    prefs.Pref
	}{
		{"framesperhz", "display frames for every simulated CRT refresh", &prf.FramesPerHz},
		{"gain", "brightness vs blur reduction trade-off (0,1]", &prf.GainVsBlur},
		{"gamma", "gamma transfer curve exponent", &prf.Gamma},
		{"direction", "scan direction (0=down 1=up 2=right 3=left)", &prf.ScanDirection},
		{"motion", "scroll the test pattern to simulate motion", &prf.MotionSim},
		{"motionspeed", "speed of simulated motion", &prf.MotionSpeed},
		{"antiretention", "slew the cycle to prevent image retention", &prf.AntiRetention},
		{"slew", "amount of anti-retention slew", &prf.AntiRetentionSlew},
		{"divisor", "fps divisor. values below 1 give a slow motion view", &prf.FPSDivisor},
		{"split", "split-screen comparison with the unprocessed source", &prf.Split},
		{"splitpoint", "horizontal position of the split [0,1]", &prf.SplitPoint},
		{"splitborder", "width of the split border in pixels", &prf.SplitBorderWidth},
		{"splitmatch", "darken the unprocessed side to match brightness", &prf.SplitBrightnessMatch},
	}

	vals := make([]*string, len(overrides))
	for i, o := range overrides {
		vals[i] = flags.String(o.name, "", o.help)
	}

	return func() error {
		for i, o := range overrides {
			if *vals[i] != "" {
				if err := o.p.Set(*vals[i]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

func play(args []string) error {
	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	width := flags.Int("width", 320, "width of the simulated image")
	height := flags.Int("height", 240, "height of the simulated image")
	scale := flags.Float64("scale", 2.0, "window scale")
	refresh := flags.Float64("refresh", 240, "display refresh rate")
	useStats := flags.Bool("statsview", false, "run stats server")
	echoLog := flags.Bool("log", false, "echo log entries to stderr")
	savePrefs := flags.Bool("saveprefs", false, "save settings on exit")

	prf, err := display.NewPreferences()
	if err != nil {
		return err
	}
	applyOverrides := beamOverrides(flags, prf)

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if err := applyOverrides(); err != nil {
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if *useStats {
		statsview.Launch(os.Stdout)
	}

	gen, err := testpattern.NewGenerator(*width, *height)
	if err != nil {
		return err
	}

	scr, err := screen.NewSDL(*width, *height, float32(*scale))
	if err != nil {
		return err
	}
	defer scr.Destroy()

	lim, err := limiter.NewFPSLimiter(*refresh)
	if err != nil {
		return err
	}

	if err := screen.Run(scr, prf.Config(), gen, lim, nil); err != nil {
		return err
	}

	if *savePrefs {
		return prf.Save()
	}

	return nil
}

func perform(args []string) error {
	flags := flag.NewFlagSet("performance", flag.ContinueOnError)
	width := flags.Int("width", 320, "width of the simulated image")
	height := flags.Int("height", 240, "height of the simulated image")
	scale := flags.Float64("scale", 2.0, "window scale (only with -display)")
	refresh := flags.Float64("refresh", 240, "display refresh rate to compare against")
	duration := flags.String("duration", "5s", "run duration")
	profile := flags.Bool("profile", false, "write cpu and memory profiles")
	withDisplay := flags.Bool("display", false, "run check with a real window")

	prf, err := display.NewPreferences()
	if err != nil {
		return err
	}
	applyOverrides := beamOverrides(flags, prf)

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if err := applyOverrides(); err != nil {
		return err
	}

	return performance.Check(os.Stdout, *profile, *withDisplay,
		*width, *height, float32(*scale),
		prf.Config(), *refresh, *duration)
}
