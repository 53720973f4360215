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

package screen

import (
	"fmt"
	"image"

	"github.com/jetsetilly/crtbeam/logger"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// SDL is the normal presentation surface for the simulation.
type SDL struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int32
	height int32

	// set by Service when the user presses the split-screen key, cleared
	// when the render loop collects it
	split bool
}

// NewSDL is the preferred method of initialisation for the SDL type. The
// width and height arguments are the size of the simulated image. The window
// is scaled from that by the scale argument.
//
// Must be called from the main goroutine.
func NewSDL(width int, height int, scale float32) (*SDL, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sdl: invalid screen size (%dx%d)", width, height)
	}
	if scale <= 0 {
		scale = 1
	}

	scr := &SDL{
		width:  int32(width),
		height: int32(height),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	scr.window, err = sdl.CreateWindow("CRTBeam",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(width)*scale), int32(float32(height)*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// texture is the same size as the simulated image. the renderer scales
	// it to the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		scr.width, scr.height)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	logger.Logf("sdl", "window %dx%d (scale %.1f)", width, height, scale)

	return scr, nil
}

// Draw implements the Screen interface.
func (scr *SDL) Draw(img *image.RGBA) error {
	// the RGBA pixel layout matches PIXELFORMAT_ABGR8888 on little-endian
	// machines so the Pix slice can be copied to the texture directly
	err := scr.texture.Update(nil, img.Pix, int(scr.width)*pixelDepth)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	scr.renderer.Present()

	return nil
}

// Service implements the Screen interface. Must be called from the main
// goroutine.
func (scr *SDL) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN {
				switch ev.Keysym.Sym {
				case sdl.K_ESCAPE:
					return false
				case sdl.K_s:
					scr.split = true
				}
			}
		}
	}
	return true
}

func (scr *SDL) toggledSplit() bool {
	v := scr.split
	scr.split = false
	return v
}

// Destroy implements the Screen interface.
func (scr *SDL) Destroy() {
	if scr.texture != nil {
		scr.texture.Destroy()
	}
	if scr.renderer != nil {
		scr.renderer.Destroy()
	}
	if scr.window != nil {
		scr.window.Destroy()
	}
	sdl.Quit()
}
