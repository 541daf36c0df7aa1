// This file is part of Telequad.
//
// Telequad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Telequad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Telequad.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetplume/telequad/compositor"
	"github.com/jetplume/telequad/frame"
	"github.com/jetplume/telequad/gui/sdlwin"
	"github.com/jetplume/telequad/logger"
	"github.com/jetplume/telequad/modalflag"
	"github.com/jetplume/telequad/performance"
	"github.com/jetplume/telequad/performance/limiter"
	"github.com/jetplume/telequad/statsview"
	"github.com/jetplume/telequad/testpattern"
	"github.com/jetplume/telequad/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// presenter is anything that needs creating, servicing and destroying on the
// main thread. SDL requires window creation and event handling to happen
// there.
type presenter interface {
	// cleanup resources used by the presenter
	Destroy(io.Writer)

	// Service() MUST ONLY be called as part of a larger loop from the main
	// thread. one call is one presentation cycle.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because SDL requires window event handling (including
// creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (presenter, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan presenter
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (presenter, error)),
		creation:      make(chan presenter),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new presenter creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created
	//     presenter
	//
	done := false
	var scr presenter
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing presenter
			if scr != nil {
				scr.Destroy(os.Stderr)
			}

			scr, err = creator()
			if err != nil {
				sync.creationError <- err
				scr = nil
			} else {
				sync.creation <- scr
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if scr != nil {
					scr.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if scr != nil {
				scr.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate presenter creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// screen couples the window to the compositor. one call to Service() is one
// presentation cycle.
type screen struct {
	plt  *sdlwin.Platform
	cmp  *compositor.Compositor
	exch *frame.Exchange

	// overlays drawn on top of every frame
	overlays []compositor.Overlay

	// paces the presentation when not synchronised to the display refresh
	lim *limiter.FpsLimiter

	// closed when the presentation has ended, for whatever reason. the error
	// field is valid once done is closed
	done chan struct{}
	err  error

	ended bool
}

// newScreen must run on the main thread, via the mainSync creator channel.
//
// #mainthread
func newScreen(scale int, fps int, exch *frame.Exchange, overlays []compositor.Overlay) (*screen, error) {
	plt, err := sdlwin.NewPlatform(version.ApplicationName, frame.NTSCWidth, frame.NTSCHeight, scale)
	if err != nil {
		return nil, err
	}

	cmp, err := compositor.NewCompositor(frame.NTSCWidth, frame.NTSCHeight)
	if err != nil {
		plt.Destroy()
		return nil, err
	}

	scr := &screen{
		plt:      plt,
		cmp:      cmp,
		exch:     exch,
		overlays: overlays,
		done:     make(chan struct{}),
	}

	if fps == 0 {
		plt.SetSwapInterval(true)
	} else {
		plt.SetSwapInterval(false)
		scr.lim = limiter.NewFPSLimiter(fps)
	}

	return scr, nil
}

// end the presentation. idempotent.
func (scr *screen) end(err error) {
	if scr.ended {
		return
	}
	scr.ended = true
	scr.err = err
	close(scr.done)
}

// Service one presentation cycle.
//
// #mainthread
func (scr *screen) Service() {
	if scr.ended {
		return
	}

	scr.plt.Service()
	if scr.plt.ShouldQuit() {
		scr.end(nil)
		return
	}

	if scr.lim != nil {
		scr.lim.Wait()
	}

	// track window size every cycle. cheaper than listening for resize
	// events and always correct
	w, h := scr.plt.FramebufferSize()
	scr.cmp.Resize(w, h)

	err := scr.cmp.Composite(scr.exch.Latest(), scr.overlays...)
	if err != nil {
		scr.end(err)
		return
	}

	if scr.plt.ScreenshotRequested() {
		_, err := scr.cmp.Screenshot()
		if err != nil {
			logger.Logf("screenshot", "%s", err)
		}
	}

	scr.plt.Present()
}

// Destroy implements the presenter interface.
//
// #mainthread
func (scr *screen) Destroy(output io.Writer) {
	scr.cmp.Destroy()
	scr.plt.Destroy()
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	scale := md.AddInt("scale", 3, "window scale at creation")
	fps := md.AddInt("fps", 0, "frame rate limit. 0 synchronises with the display refresh")
	demo := md.AddBool("overlay", false, "draw demonstration overlays on top of the frame")
	stats := md.AddBool("stats", false, "launch the runtime statistics server")
	structs := md.AddString("structs", "", "write a graph of the presentation structures to file (dot format)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no arguments required for %s mode", md)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	exch := &frame.Exchange{}
	gen := testpattern.NewGenerator(frame.NTSCWidth, frame.NTSCHeight)

	var overlays []compositor.Overlay
	if *demo {
		overlays = demoOverlays()
	}

	// create the window and the compositor on the main thread
	sync.creator <- func() (presenter, error) {
		return newScreen(*scale, *fps, exch, overlays)
	}

	var scr *screen
	select {
	case g := <-sync.creation:
		scr = g.(*screen)
	case err := <-sync.creationError:
		return err
	}

	if *structs != "" {
		err := writeStructs(*structs, exch, gen)
		if err != nil {
			return err
		}
	}

	// produce frames at the nominal rate until the presentation ends. the
	// exchange decouples production from presentation: the screen takes the
	// most recent frame each cycle and skips are silent
	prodDone := make(chan struct{})
	go func() {
		defer close(prodDone)
		lim := limiter.NewFPSLimiter(int(performance.NominalRefreshRate))
		for {
			select {
			case <-scr.done:
				return
			default:
			}
			lim.Wait()
			exch.Publish(gen.CurrentFrame())
		}
	}()

	<-scr.done
	<-prodDone

	return scr.err
}

// demoOverlays returns a crosshair and a color-graded triangle. They
// exercise both overlay topologies and make the lack of gamma encoding on
// overlays easy to eyeball against the frame behind them.
func demoOverlays() []compositor.Overlay {
	return []compositor.Overlay{
		{
			Topology: compositor.Triangles,
			Vertices: []compositor.ColorVertex{
				{X: -0.6, Y: -0.6, R: 1.0, G: 0.0, B: 0.0},
				{X: 0.6, Y: -0.6, R: 0.0, G: 1.0, B: 0.0},
				{X: 0.0, Y: 0.2, R: 0.0, G: 0.0, B: 1.0},
			},
		},
		{
			Topology: compositor.Lines,
			Vertices: []compositor.ColorVertex{
				{X: -1.0, Y: 0.0, R: 1.0, G: 1.0, B: 1.0},
				{X: 1.0, Y: 0.0, R: 1.0, G: 1.0, B: 1.0},
				{X: 0.0, Y: -1.0, R: 1.0, G: 1.0, B: 1.0},
				{X: 0.0, Y: 1.0, R: 1.0, G: 1.0, B: 1.0},
			},
		},
	}
}

// writeStructs dumps a graphviz visualisation of the presentation
// structures. useful when checking what the exchange and the generator are
// holding on to.
func writeStructs(filename string, exch *frame.Exchange, gen *testpattern.Generator) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("structs: %w", err)
	}
	defer f.Close()

	memviz.Map(f, exch, gen)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no arguments required for %s mode", md)
	}

	prf := performance.ProfileNone
	if *profile {
		prf = performance.ProfileBoth
	}

	return performance.Check(md.Output, prf, *duration, frame.NTSCWidth, frame.NTSCHeight)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s (%s)\n", version.ApplicationName, ver)
	if *revision {
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}
