package nes

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	pcRe  = regexp.MustCompile("^[A-Z0-9]{4}")
	aRe   = regexp.MustCompile("A:([A-Z0-9]*)")
	xRe   = regexp.MustCompile("X:([A-Z0-9]*)")
	yRe   = regexp.MustCompile("Y:([A-Z0-9]*)")
	pRe   = regexp.MustCompile("P:([A-Z0-9]*)")
	spRe  = regexp.MustCompile("SP:([A-Z0-9]*)")
	cycRe = regexp.MustCompile(`CYC:(\d*)`)
)

const (
	nestestROM = "../testdata/other/nestest.nes"
	nestestLog = "../testdata/other/nestest.log"
)

func newTestCPU(t *testing.T) *CPU {
	b, err := os.ReadFile(nestestROM)
	require.NoError(t, err)
	cartridge, err := NewCartridge(b)
	require.NoError(t, err)
	controller1, controller2 := NewController(), NewController()
	videoMemory := NewVideoMemory(cartridge)
	ppu := NewPPU(videoMemory)
	apu := NewAPU()
	cpuBus := NewCPUBus(NewRAM(), ppu, apu, cartridge, controller1, controller2)
	cpu := NewCPU(cpuBus)
	// nestest's automated mode starts execution at 0xC000 instead of the
	// reset vector, with a fixed known-good initial P/SP.
	cpu.PC = 0xC000
	cpu.SP = 0xFD
	cpu.P.decodeFrom(0x24)
	return cpu
}

// TestCPU replays nestest.log, an instruction-by-instruction trace of a
// reference 6502 executing nestest.nes, and checks every register and
// cycle count after every instruction.
func TestCPU(t *testing.T) {
	if _, err := os.Stat(nestestROM); err != nil {
		t.Skip("nestest fixtures not present, skipping")
	}

	var wantCycle int
	var wantPC uint16
	var wantA, wantX, wantY, wantP, wantSP byte
	cycles := 7
	before := "initial state"
	in, err := os.Open(nestestLog)
	require.NoError(t, err)
	defer in.Close()
	scanner := bufio.NewScanner(in)
	cpu := newTestCPU(t)
	for scanner.Scan() {
		t.Log(before)
		line := scanner.Text()
		fmt.Sscanf(pcRe.FindString(line), "%x", &wantPC)
		fmt.Sscanf(aRe.FindStringSubmatch(line)[1], "%x", &wantA)
		fmt.Sscanf(xRe.FindStringSubmatch(line)[1], "%x", &wantX)
		fmt.Sscanf(yRe.FindStringSubmatch(line)[1], "%x", &wantY)
		fmt.Sscanf(pRe.FindStringSubmatch(line)[1], "%x", &wantP)
		fmt.Sscanf(spRe.FindStringSubmatch(line)[1], "%x", &wantSP)
		fmt.Sscanf(cycRe.FindStringSubmatch(line)[1], "%d", &wantCycle)

		require.Equalf(t, wantPC, cpu.PC, "PC mismatch after %q", before)
		require.Equalf(t, wantA, cpu.A, "A mismatch after %q", before)
		require.Equalf(t, wantX, cpu.X, "X mismatch after %q", before)
		require.Equalf(t, wantY, cpu.Y, "Y mismatch after %q", before)
		if cpu.P.encode() != wantP {
			wantStatus := status{}
			wantStatus.decodeFrom(wantP)
			t.Fatalf("P mismatch after %q: got=(%02x) %+v, want=(%02x) %+v", before, cpu.P.encode(), cpu.P, wantP, wantStatus)
		}
		require.Equalf(t, wantSP, cpu.SP, "SP mismatch after %q", before)
		require.Equalf(t, wantCycle, cycles, "cycle mismatch after %q", before)

		c, err := cpu.Step()
		require.NoError(t, err)
		cycles += c
		before = line
	}
}
