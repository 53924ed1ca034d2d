//go:build sdl

package display

import (
	"fmt"
	"image/color"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// Window presents a Frame in an SDL window for desktop development. The
// view tree keeps drawing into the embedded software frame; Flush uploads
// the buffer as a streaming texture.
type Window struct {
	*Frame
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// NewWindow opens an SDL window of the given logical size.
func NewWindow(title string, w, h int, background color.RGBA) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(w), int32(h), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		int32(w), int32(h))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("create texture: %w", err)
	}
	return &Window{
		Frame:    NewFrame(w, h, background),
		window:   window,
		renderer: renderer,
		texture:  texture,
	}, nil
}

// Flush uploads the software frame and presents it.
func (w *Window) Flush() error {
	img := w.RGBA()
	if err := w.texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		return fmt.Errorf("update texture: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("copy texture: %w", err)
	}
	w.renderer.Present()
	return nil
}

// Close tears down the SDL resources.
func (w *Window) Close() {
	w.texture.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}
