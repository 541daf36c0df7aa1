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

// Package sdlwin creates the window and the GL context the compositor draws
// into, and services the window system's events. The compositor writes to
// the window's back buffer but the window and its surface are owned here.
//
// SDL requires that window creation and event handling happen on the main
// thread. Everything in this package must be called from the main thread.
package sdlwin

import (
	"fmt"

	"github.com/jetplume/telequad/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform is the window, the GL context and the event queue.
type Platform struct {
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode

	quit       bool
	screenshot bool
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. The window's drawable area is the frame dimensions multiplied by
// scale.
//
// #mainthread
func NewPlatform(title string, width int, height int, scale int) (*Platform, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf("sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &Platform{}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf("sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	plt.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width*scale), int32(height*scale),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return plt, nil
}

// Destroy the window and quit the window system.
//
// #mainthread
func (plt *Platform) Destroy() {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}
	if plt.window != nil {
		_ = plt.window.Destroy()
		plt.window = nil
	}
	sdl.Quit()
}

// SetSwapInterval turns synchronisation with the display's vertical refresh
// on or off. Some drivers refuse adaptive or even plain vsync; the error is
// logged and presentation carries on unsynchronised.
func (plt *Platform) SetSwapInterval(vsync bool) {
	var interval int
	if vsync {
		interval = 1
	}
	err := sdl.GLSetSwapInterval(interval)
	if err != nil {
		logger.Logf("sdl", "swap interval: %s", err)
	}
}

// RefreshRate of the display the window opened on. Zero if the window
// system does not know.
func (plt *Platform) RefreshRate() int {
	return int(plt.mode.RefreshRate)
}

// FramebufferSize is the size of the window's drawable area in pixels. Not
// necessarily the window size on high-DPI displays.
func (plt *Platform) FramebufferSize() (int, int) {
	w, h := plt.window.GLGetDrawableSize()
	return int(w), int(h)
}

// Service the window system's event queue. Must be called once per
// presentation cycle.
//
// #mainthread
func (plt *Platform) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			plt.quit = true

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN {
				switch ev.Keysym.Sym {
				case sdl.K_ESCAPE:
					plt.quit = true
				case sdl.K_F12:
					plt.screenshot = true
				}
			}
		}
	}
}

// ShouldQuit returns true once the user has asked for the window to close.
func (plt *Platform) ShouldQuit() bool {
	return plt.quit
}

// ScreenshotRequested returns true if the user pressed the screenshot key
// since the last call. The request is cleared by reading it.
func (plt *Platform) ScreenshotRequested() bool {
	v := plt.screenshot
	plt.screenshot = false
	return v
}

// Present swaps the window's buffers, making everything composited this
// cycle visible. Blocks until the underlying driver accepts the swap, which
// with vsync enabled means blocking until the display's vertical refresh.
//
// #mainthread
func (plt *Platform) Present() {
	plt.window.GLSwap()
}
