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

package testpattern

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// the classic 75% colour bars plus white and black
var bars = []color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 191, G: 191, B: 0, A: 255},
	{R: 0, G: 191, B: 191, A: 255},
	{R: 0, G: 191, B: 0, A: 255},
	{R: 191, G: 0, B: 191, A: 255},
	{R: 191, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 191, A: 255},
	{R: 0, G: 0, B: 0, A: 255},
}

var background = color.RGBA{R: 24, G: 24, B: 24, A: 255}
var blockColour = color.RGBA{R: 255, G: 255, B: 255, A: 255}
var labelColour = color.RGBA{R: 191, G: 191, B: 191, A: 255}

// Generator produces synthetic source frames.
type Generator struct {
	width  int
	height int

	// number of pixels the motion block advances per frame
	blockStep int
}

// NewGenerator is the preferred method of initialisation for the Generator
// type.
func NewGenerator(width int, height int) (*Generator, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("testpattern: invalid resolution (%dx%d)", width, height)
	}

	return &Generator{
		width:  width,
		height: height,

		// roughly one screen traversal per second of 60Hz source video
		blockStep: max(width/64, 1),
	}, nil
}

// Frame generates the source frame for the given frame number.
func (gen *Generator) Frame(frameNum int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, gen.width, gen.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	// colour bars across the upper half
	barWidth := gen.width / len(bars)
	barBottom := gen.height / 2
	for i, c := range bars {
		r := image.Rect(i*barWidth, gen.height/8, (i+1)*barWidth, barBottom)
		draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
	}

	// moving block in the lower half. motion clarity is easiest to judge on
	// a hard edged bright object against a dark field
	blockSize := gen.height / 8
	bx := (frameNum * gen.blockStep) % gen.width
	by := gen.height * 5 / 8
	block := image.Rect(bx, by, bx+blockSize, by+blockSize)
	draw.Draw(img, block, image.NewUniform(blockColour), image.Point{}, draw.Src)

	// the block wraps around the right hand edge
	if bx+blockSize > gen.width {
		wrapped := image.Rect(0, by, bx+blockSize-gen.width, by+blockSize)
		draw.Draw(img, wrapped, image.NewUniform(blockColour), image.Point{}, draw.Src)
	}

	// frame counter
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColour),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, gen.height-6),
	}
	d.DrawString(fmt.Sprintf("FRAME %d", frameNum))

	return img
}

// Size returns the resolution of generated frames.
func (gen *Generator) Size() (width int, height int) {
	return gen.width, gen.height
}
