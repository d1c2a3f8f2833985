package nes

import (
	"fmt"
	"image"
)

// Console is the host-facing surface of the emulator core: load a ROM,
// reset, advance by CPU step or whole frame, and feed it controller input.
type Console interface {
	Reset()
	Step() (int, error)
	StepFrame(buffer *image.RGBA) error
	Frame() (*image.RGBA, bool)
	SetAudioOut(chan float32)
	SetButtons(pad int, buttons [8]bool)
	PressButton(pad int, b button)
	ReleaseButton(pad int, b button)
}

// NesConsole wires a CPU, PPU, APU, controller and cartridge together and
// drives them in lockstep: CPU.Step reports its cost in cycles, and that
// same cost advances the PPU and APU once per CPU step.
type NesConsole struct {
	cpu          *CPU
	ppu          *PPU
	apu          *APU
	controllers  [2]*Controller
	cartridge    *Cartridge
	lastFrame    uint64
	currentFrame uint64
	buffer       *image.RGBA
	buttons      [2][8]bool
}

// LoadINES parses data as an iNES image and returns a ready-to-run
// Console. The returned bool mirrors the host API's "did this load
// succeed" convention; err carries the reason for logs when it didn't.
func LoadINES(data []byte, debug bool) (Console, bool, error) {
	cartridge, err := NewCartridge(data)
	if err != nil {
		return nil, false, fmt.Errorf("nes: failed to load iNES image: %w", err)
	}
	console, err := NewConsole(cartridge, debug)
	if err != nil {
		return nil, false, err
	}
	return console, true, nil
}

// NewConsole creates a console directly from an already-parsed cartridge.
// If debug is true, the returned Console also accepts commands through
// DebugConsole's stdin REPL.
func NewConsole(cartridge *Cartridge, debug bool) (Console, error) {
	controller1, controller2 := NewController(), NewController()
	videoMemory := NewVideoMemory(cartridge)
	ppu := NewPPU(videoMemory)
	apu := NewAPU()
	cpuBus := NewCPUBus(NewRAM(), ppu, apu, cartridge, controller1, controller2)
	cpu := NewCPU(cpuBus)
	console := &NesConsole{cpu: cpu, ppu: ppu, apu: apu, controllers: [2]*Controller{controller1, controller2}, cartridge: cartridge}
	if debug {
		return &DebugConsole{NesConsole: console}, nil
	}
	return console, nil
}

// Reset puts the CPU and PPU back to their power-on/reset state.
func (c *NesConsole) Reset() {
	c.currentFrame = 0
	c.lastFrame = 0
	c.cpu.Reset()
	c.ppu.Reset()
}

// Step executes one CPU instruction and advances the PPU and APU by the
// same number of cycles, returning the cycle count.
func (c *NesConsole) Step() (int, error) {
	cycles, err := c.cpu.Step()
	if err != nil {
		return cycles, err
	}
	for i := 0; i < cycles; i++ {
		c.apu.Step()
	}
	nmi, err := c.ppu.Step(cycles)
	if err != nil {
		return cycles, fmt.Errorf("nes: PPU step failed: %w", err)
	}
	if nmi {
		c.cpu.TriggerNMI()
	}
	if ok, f := c.ppu.Frame(); ok {
		c.currentFrame++
		c.buffer = f
	}
	return cycles, nil
}

// StepFrame runs Step until a new frame is produced, copying it into
// buffer. buffer must already be sized 256x240.
func (c *NesConsole) StepFrame(buffer *image.RGBA) error {
	before := c.currentFrame
	for c.currentFrame == before {
		if _, err := c.Step(); err != nil {
			return err
		}
	}
	if c.buffer != nil {
		draw(buffer, c.buffer)
	}
	return nil
}

// draw copies src into dst without pulling in the image/draw package for
// a single fixed-size blit.
func draw(dst, src *image.RGBA) {
	copy(dst.Pix, src.Pix)
}

// Frame returns the most recently completed frame, and whether it is new
// since the last call.
func (c *NesConsole) Frame() (*image.RGBA, bool) {
	if c.lastFrame < c.currentFrame {
		c.lastFrame = c.currentFrame
		return c.buffer, true
	}
	return c.buffer, false
}

func (c *NesConsole) SetAudioOut(channel chan float32) {
	c.apu.SetAudioOut(channel)
}

// SetButtons replaces the full button state of pad (0 or 1) for the next
// read cycle.
func (c *NesConsole) SetButtons(pad int, buttons [8]bool) {
	c.buttons[pad] = buttons
	c.controllers[pad].Set(buttons)
}

// PressButton and ReleaseButton let a host track button state
// incrementally instead of resubmitting the whole array every frame.
func (c *NesConsole) PressButton(pad int, b button) {
	c.buttons[pad][b] = true
	c.controllers[pad].Set(c.buttons[pad])
}

func (c *NesConsole) ReleaseButton(pad int, b button) {
	c.buttons[pad][b] = false
	c.controllers[pad].Set(c.buttons[pad])
}
