package ui

import (
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"nesgo/nes"
)

// Start opens a window, drives console one CPU step at a time, and
// presents every completed frame through OpenGL. Audio runs through
// PortAudio on a channel the console's APU feeds directly.
func Start(console nes.Console, width int, height int) {
	err := glfw.Init()
	if err != nil {
		glog.Fatalln(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	window, err := glfw.CreateWindow(width, height, "nesgo", nil, nil)
	if err != nil {
		glog.Fatalln(err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glog.Fatalln(err)
	}
	program, err := newProgram()
	if err != nil {
		glog.Fatalln(err)
	}
	gl.UseProgram(program)

	sound := newAudio()
	if err := sound.start(); err != nil {
		glog.Errorf("nes: audio disabled: %v", err)
	} else {
		console.SetAudioOut(sound.channel)
		defer sound.terminate()
	}

	for !window.ShouldClose() {
		time.Sleep(1 * time.Millisecond)
		if _, err := console.Step(); err != nil {
			glog.Fatalf("nes: %v", err)
		}
		if image, ok := console.Frame(); ok {
			updateTexture(program, image)
			console.SetButtons(0, getKeys(window))
			window.SwapBuffers()
			glfw.PollEvents()
		}
	}
}
