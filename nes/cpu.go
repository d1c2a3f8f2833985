package nes

import "fmt"

// CPU emulates NES CPU - is custom 6502 made by RICOH.
// References:
//   https://en.wikipedia.org/wiki/MOS_Technology_6502
//   http://www.6502.org/tutorials/6502opcodes.html
//   https://www.nesdev.org/6502_cpu.txt (undocumented opcodes)

const CPUFrequency = 1789773

type addressingMode int

const (
	implied addressingMode = iota
	accumulator
	immediate
	zeropage
	zeropageX
	zeropageY
	relative
	absolute
	absoluteX
	absoluteY
	indirect
	indirectX
	indirectY
)

type status struct {
	C bool // carry
	Z bool // zero
	I bool // IRQ disable
	D bool // decimal - unused on NES
	B bool // break - only meaningful in the byte pushed to the stack
	R bool // reserved, always reads 1
	V bool // overflow
	N bool // negative
}

// encode encodes the status to a byte, NVRBDIZC order.
func (s *status) encode() byte {
	var res byte
	if s.C {
		res |= 1 << 0
	}
	if s.Z {
		res |= 1 << 1
	}
	if s.I {
		res |= 1 << 2
	}
	if s.D {
		res |= 1 << 3
	}
	if s.B {
		res |= 1 << 4
	}
	if s.R {
		res |= 1 << 5
	}
	if s.V {
		res |= 1 << 6
	}
	if s.N {
		res |= 1 << 7
	}
	return res
}

// decodeFrom unpacks a status byte read back via PLP/RTI.
func (s *status) decodeFrom(data byte) {
	s.C = (data>>0)&1 == 1
	s.Z = (data>>1)&1 == 1
	s.I = (data>>2)&1 == 1
	s.D = (data>>3)&1 == 1
	s.B = (data>>4)&1 == 1
	s.R = (data>>5)&1 == 1
	s.V = (data>>6)&1 == 1
	s.N = (data>>7)&1 == 1
}

// UnknownOpcodeError reports a fetch of an opcode byte with no decode
// entry, or a JAM opcode that would lock up real hardware. Both are the
// same fatal-abort condition as far as this core is concerned.
type UnknownOpcodeError struct {
	PC     uint16
	Opcode byte
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("nes: opcode 0x%02x at PC=0x%04x has no execution path", e.Opcode, e.PC)
}

// CPU is the 6502 core: registers, the decode table, and the bus it reads
// and writes through. It never references the PPU directly; all PPU
// side-effects of register writes flow through the bus.
type CPU struct {
	A  byte   // accumulator
	X  byte   // index register
	Y  byte   // index register
	PC uint16 // program counter
	SP byte   // stack pointer, low byte; high byte is always implied 0x01
	P  *status

	lastExecution string // for the debug console
	stall         int    // cycles burned doing OAM-DMA
	nmiPending    bool
	irqPending    bool

	bus *CPUBus
}

// NewCPU creates a CPU wired to bus and performs a power-on reset.
func NewCPU(bus *CPUBus) *CPU {
	c := &CPU{
		P:   &status{R: true},
		bus: bus,
	}
	c.Reset()
	return c
}

// Reset puts the CPU into its post-RESET state. A real 6502 RESET doesn't
// clear A/X/Y (only power-on does, and the zero value already gives us
// that); SP becomes 0xFD, P becomes 0x34, and PC loads from the reset
// vector. RESET never touches the stack contents, only SP.
func (c *CPU) Reset() {
	c.SP = 0xFD
	c.P.decodeFrom(0x34)
	c.PC = c.bus.read16(0xFFFC)
	c.stall = 0
	c.nmiPending = false
	c.irqPending = false
}

// TriggerNMI schedules a non-maskable interrupt for the next Step. NMI is
// never suppressed by the I flag.
func (c *CPU) TriggerNMI() {
	c.nmiPending = true
}

// TriggerIRQ schedules a maskable interrupt for the next Step, subject to
// the I flag being clear when Step observes it.
func (c *CPU) TriggerIRQ() {
	c.irqPending = true
}

// write wraps bus writes so OAMDMA ($4014) can be serviced here: the copy
// reads the CPU's own memory map, which only the CPU side can do without
// the bus depending back on the CPU.
func (c *CPU) write(address uint16, data byte) {
	if address == 0x4014 {
		var page [256]byte
		base := uint16(data) << 8
		for i := 0; i < 256; i++ {
			page[i] = c.bus.read(base + uint16(i))
		}
		c.bus.writeOAMDMA(page)
		// 513 CPU cycles on an even CPU cycle, 514 on odd; this core
		// doesn't track cycle parity, so it always charges 513.
		c.stall += 513
		return
	}
	c.bus.write(address, data)
}

func (c *CPU) setN(x byte) { c.P.N = x&0x80 != 0 }
func (c *CPU) setZ(x byte) { c.P.Z = x == 0 }
func (c *CPU) setNZ(x byte) {
	c.setN(x)
	c.setZ(x)
}

// push writes to the stack page 0x0100-0x01FF and decrements SP.
func (c *CPU) push(x byte) {
	c.write(0x0100|uint16(c.SP), x)
	c.SP--
}

// pop increments SP and reads the stack page.
func (c *CPU) pop() byte {
	c.SP++
	return c.bus.read(0x0100 | uint16(c.SP))
}

func (c *CPU) pushWord(x uint16) {
	c.push(byte(x >> 8))
	c.push(byte(x))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// serviceInterrupt runs the shared NMI/IRQ/BRK sequence: push PC, push P
// (with B set only for BRK), load PC from vector, set I.
func (c *CPU) serviceInterrupt(vector uint16, brk bool) int {
	c.pushWord(c.PC)
	pushed := *c.P
	pushed.B = brk
	pushed.R = true
	c.push(pushed.encode())
	c.P.I = true
	c.PC = c.bus.read16(vector)
	return 7
}

// Step executes exactly one instruction, or services one pending
// interrupt, or burns one OAM-DMA stall cycle, and returns its cost in
// CPU cycles.
func (c *CPU) Step() (int, error) {
	if c.stall > 0 {
		c.stall--
		return 1, nil
	}
	if c.nmiPending {
		c.nmiPending = false
		return c.serviceInterrupt(0xFFFA, false), nil
	}
	if c.irqPending {
		c.irqPending = false
		if !c.P.I {
			return c.serviceInterrupt(0xFFFE, false), nil
		}
	}

	pc := c.PC
	opcode := c.bus.read(pc)
	info := opcodeTable[opcode]
	if info.mnemonic == "" {
		return 0, &UnknownOpcodeError{PC: pc, Opcode: opcode}
	}

	addr, pageCrossed, isAccumulator := c.resolveOperand(info.mode)
	c.PC += uint16(info.size)

	cycles := info.cycles
	extra, err := c.execute(info.mnemonic, info.mode, addr, isAccumulator)
	if err != nil {
		if uerr, ok := err.(*UnknownOpcodeError); ok {
			uerr.PC = pc
			uerr.Opcode = opcode
		}
		return 0, err
	}
	if pageCrossed && info.pageCrossCosts {
		cycles++
	}
	cycles += extra

	c.lastExecution = fmt.Sprintf("PC=0x%04x A=0x%02x X=0x%02x Y=0x%02x SP=0x%02x opcode=0x%02x %s",
		c.PC, c.A, c.X, c.Y, c.SP, opcode, info.mnemonic)
	return cycles, nil
}

// resolveOperand computes the effective address of the instruction's
// operand (or flags isAccumulator for the one mode with no address) and
// whether an indexed access crossed a page boundary. Immediate returns
// the address of the operand byte itself; execute() decides whether to
// read through an address or, for stores, write to it.
func (c *CPU) resolveOperand(mode addressingMode) (addr uint16, pageCrossed bool, isAccumulator bool) {
	switch mode {
	case implied:
		return 0, false, false
	case accumulator:
		return 0, false, true
	case immediate:
		return c.PC + 1, false, false
	case zeropage:
		return uint16(c.bus.read(c.PC + 1)), false, false
	case zeropageX:
		return uint16(c.bus.read(c.PC+1) + c.X), false, false
	case zeropageY:
		return uint16(c.bus.read(c.PC+1) + c.Y), false, false
	case relative:
		offset := c.bus.read(c.PC + 1)
		base := c.PC + 2
		var target uint16
		if offset < 0x80 {
			target = base + uint16(offset)
		} else {
			target = base + uint16(offset) - 0x100
		}
		return target, (base & 0xFF00) != (target & 0xFF00), false
	case absolute:
		return c.bus.read16(c.PC + 1), false, false
	case absoluteX:
		base := c.bus.read16(c.PC + 1)
		target := base + uint16(c.X)
		return target, (base & 0xFF00) != (target & 0xFF00), false
	case absoluteY:
		base := c.bus.read16(c.PC + 1)
		target := base + uint16(c.Y)
		return target, (base & 0xFF00) != (target & 0xFF00), false
	case indirect:
		ptr := c.bus.read16(c.PC + 1)
		return c.read16Bugged(ptr), false, false
	case indirectX:
		ptr := uint16(c.bus.read(c.PC+1) + c.X)
		return c.read16ZeroPage(ptr), false, false
	case indirectY:
		ptr := uint16(c.bus.read(c.PC + 1))
		base := c.read16ZeroPage(ptr)
		target := base + uint16(c.Y)
		return target, (base & 0xFF00) != (target & 0xFF00), false
	}
	return 0, false, false
}

// read16ZeroPage reads a little-endian pointer out of the zero page with
// the low byte wrapping within page zero instead of spilling into page 1.
func (c *CPU) read16ZeroPage(addr uint16) uint16 {
	lo := uint16(c.bus.read(addr & 0xFF))
	hi := uint16(c.bus.read((addr + 1) & 0xFF))
	return hi<<8 | lo
}

// read16Bugged reproduces the JMP (indirect) page-wrap bug: when the
// pointer sits at the last byte of a page, the high byte is fetched from
// the start of the SAME page rather than the next one.
func (c *CPU) read16Bugged(addr uint16) uint16 {
	lo := uint16(c.bus.read(addr))
	hiAddr := (addr & 0xFF00) | uint16(byte(addr)+1)
	hi := uint16(c.bus.read(hiAddr))
	return hi<<8 | lo
}
