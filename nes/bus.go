package nes

import "github.com/golang/glog"

// CPUBus dispatches the CPU's 16-bit address space to WRAM, the PPU's
// registers, the controller port, the (stubbed) APU/IO registers, and the
// cartridge. $4014 (OAMDMA) is handled directly by CPU, not here, since
// servicing it needs to read through the CPU's own memory map.
type CPUBus struct {
	wram        *RAM
	ppu         *PPU
	apu         *APU
	cartridge   *Cartridge
	controller1 *Controller
	controller2 *Controller
}

// NewCPUBus creates a new Bus for the CPU.
// CPU memory map
// 0x0000 - 0x07FF	WRAM
// 0x0800 - 0x1FFF	WRAM Mirror
// 0x2000 - 0x2007	PPU Registers
// 0x2008 - 0x3FFF	PPU Registers Mirror
// 0x4000 - 0x4017	APU and IO registers
// 0x4018 - 0x401F	Normally disabled APU/IO test registers
// 0x4020 - 0x5FFF	Extended RAM (cartridge-specific, unused by NROM)
// 0x6000 - 0x7FFF	Battery/extended PRG RAM
// 0x8000 - 0xFFFF	PRG ROM
func NewCPUBus(wram *RAM, ppu *PPU, apu *APU, cartridge *Cartridge, controller1, controller2 *Controller) *CPUBus {
	return &CPUBus{wram, ppu, apu, cartridge, controller1, controller2}
}

// writeOAMDMA hands a fully-read page to the PPU; the CPU already charged
// itself the stall cycles for this.
func (b *CPUBus) writeOAMDMA(data [256]byte) {
	b.ppu.writeOAMDMA(data)
}

func (b *CPUBus) readPPURegister(address uint16) byte {
	switch address % 8 {
	case 2:
		return b.ppu.readPPUSTATUS()
	case 4:
		return b.ppu.readOAMDATA()
	case 7:
		data, err := b.ppu.readPPUDATA()
		if err != nil {
			glog.Fatalf("nes: %v", err)
		}
		return data
	default:
		// Write-only registers read back whatever was last latched onto
		// the PPU's open bus; this core returns 0 rather than modeling
		// open-bus decay.
		return 0
	}
}

// read reads a byte.
func (b *CPUBus) read(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.wram.read(address % 0x0800)
	case address < 0x4000:
		return b.readPPURegister(0x2000 + (address-0x2000)%8)
	case address == 0x4016:
		return b.controller1.read()
	case address == 0x4017:
		return b.controller2.read()
	case address < 0x4020:
		glog.V(1).Infof("nes: unimplemented APU/IO register read: address=0x%04x\n", address)
		return 0
	case 0x6000 <= address:
		return b.cartridge.ReadPRG(address)
	default:
		glog.Fatalf("nes: unknown CPU bus read: 0x%04x\n", address)
	}
	return 0
}

// read16 reads 2 bytes, little-endian.
func (b *CPUBus) read16(address uint16) uint16 {
	l := uint16(b.read(address))
	h := uint16(b.read(address+1)) << 8
	return h | l
}

func (b *CPUBus) writePPURegister(address uint16, data byte) {
	switch address % 8 {
	case 0:
		b.ppu.writePPUCTRL(data)
	case 1:
		b.ppu.writePPUMASK(data)
	case 3:
		b.ppu.writeOAMADDR(data)
	case 4:
		b.ppu.writeOAMDATA(data)
	case 5:
		b.ppu.writePPUSCROLL(data)
	case 6:
		b.ppu.writePPUADDR(data)
	case 7:
		if err := b.ppu.writePPUDATA(data); err != nil {
			glog.Fatalf("nes: %v", err)
		}
	}
}

// write writes a byte.
func (b *CPUBus) write(address uint16, data byte) {
	switch {
	case address < 0x2000:
		b.wram.write(address%0x0800, data)
	case address < 0x4000:
		b.writePPURegister(0x2000+(address-0x2000)%8, data)
	case address == 0x4014:
		glog.Fatalf("nes: OAMDMA must be intercepted by CPU.write before reaching the bus")
	case address == 0x4016:
		// A single $4016 write strobes both pads; $4017 is the APU frame
		// counter, handled by writeAPURegister below.
		b.controller1.write(data)
		b.controller2.write(data)
	case address == 0x4015:
		glog.V(1).Infof("nes: unimplemented APU status write: data=0x%02x\n", data)
	case address < 0x4018:
		b.writeAPURegister(address, data)
	case address < 0x4020:
		glog.V(1).Infof("nes: unimplemented APU/IO register write: address=0x%04x, data=0x%02x\n", address, data)
	case 0x6000 <= address:
		b.cartridge.WritePRG(address, data)
	default:
		glog.Fatalf("nes: unknown CPU bus write: address=0x%04x, data=0x%02x\n", address, data)
	}
}

// writeAPURegister receives writes to $4000-$4013 and $4017. It forwards
// $4000-$4007 to the two pulse channels and $4017 to the APU's frame
// control, all of which are no-op stubs; every other address is only
// logged. $4015 is handled (logged) by write itself.
func (b *CPUBus) writeAPURegister(address uint16, data byte) {
	switch address {
	case 0x4000:
		b.apu.pulse1.writeControl(data)
	case 0x4001:
		b.apu.pulse1.writeSweep(data)
	case 0x4002:
		b.apu.pulse1.writeTimerLow(data)
	case 0x4003:
		b.apu.pulse1.writeTimerHigh(data)
	case 0x4004:
		b.apu.pulse2.writeControl(data)
	case 0x4005:
		b.apu.pulse2.writeSweep(data)
	case 0x4006:
		b.apu.pulse2.writeTimerLow(data)
	case 0x4007:
		b.apu.pulse2.writeTimerHigh(data)
	case 0x4017:
		b.apu.writeControl(data)
	default:
		glog.V(1).Infof("nes: unimplemented APU register write: address=0x%04x, data=0x%02x\n", address, data)
	}
}
