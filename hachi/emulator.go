/*
	Copyright 2015 Franc[e]sco (lolisamurai@tfwno.gf)
	This file is part of go-hachi.
	go-hachi is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.
	go-hachi is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.
	You should have received a copy of the GNU General Public License
	along with go-hachi. If not, see <http://www.gnu.org/licenses/>.
*/


// Package hachi implements a CHIP-8 interpreter and disassembler.
//
// The interpreter is single-threaded: a Driver owns the platform loop and
// calls RunFrame (or Run) from it, and every pixel and key access goes
// through the Driver's Display and Input methods.
package hachi

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

type runState uint8

const (
	stateRunning runState = iota
	// waiting for a key press on behalf of LD VX,K
	stateAwaitingKey
)

// Chip8 is an implementation of a CHIP-8 emulator. It holds the state of the
// virtual machine.
type Chip8 struct {
	// The memory where programs are loaded and executed. The font lives at
	// FontStart and programs are loaded at ProgramStart.
	Memory [MemorySize]byte
	// V[0x0]~V[0xF] are 8-bit registers. V[0xF] doubles as a carry flag.
	V [16]uint8
	// 16-bit address register. Used for memory operations.
	I uint16
	// The call stack, which holds return addresses.
	Stack [StackSize]uint16
	// The stack pointer. Number of return addresses on the stack.
	SP int
	// Program counter. Holds the address of the next instruction.
	PC uint16
	// Timers. These automatically count down at 60hz when they are non-zero.
	// DT/DelayTimer is intended to be used for timing events in games, while
	// ST/SoundTimer makes a beeping sound as long as its value is non-zero.
	DT uint8
	ST uint8

	settings Settings
	driver   Driver
	logger   *log.Logger
	clock    Clock
	rng      *rand.Rand

	state        runState
	waitRegister uint8
	// keys that may satisfy the current wait: released at least once since
	// the wait began
	waitKeys uint16

	lastTimerUpdate time.Time
	ticks           uint64
	faults          uint64
	programSize     int
}

// New initializes a new instance of Chip8 using the registered driver called
// driver. If s is nil, DefaultSettings will be used.
func New(driver string, s *Settings, logger *log.Logger) (*Chip8, error) {
	drv, err := lookupDriver(driver)
	if err != nil {
		return nil, err
	}
	return NewWithDriver(drv, s, logger)
}

// NewWithDriver initializes a new instance of Chip8 that talks to drv.
func NewWithDriver(drv Driver, s *Settings, logger *log.Logger) (*Chip8, error) {
	settings := DefaultSettings()
	if s != nil {
		settings = *s
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithConfig(log.DefaultConfig())
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Chip8{
		PC:       ProgramStart,
		settings: settings,
		driver:   drv,
		logger:   logger,
		clock:    SystemClock,
		rng:      rand.New(rand.NewSource(seed)),
	}
	copy(c.Memory[FontStart:], font[:])

	if err := drv.OnInit(c); err != nil {
		return nil, fmt.Errorf("initializing driver: %w", err)
	}
	logger.Debug("Emulator initialized",
		log.Int("cycles_per_frame", settings.CyclesPerFrame),
		log.String("quirks", fmt.Sprintf("%+v", settings.Quirks)))
	return c, nil
}

// String returns formatted information about the instance of the emulator.
func (c *Chip8) String() string {
	return fmt.Sprintf("Chip8{Registers: [% 02X] I: %04X, "+
		"Stack: % 04X, SP: %v, PC: %04X, DT: %02X, ST: %02X}",
		c.V, c.I, c.Stack[:c.SP], c.SP, c.PC, c.DT, c.ST)
}

// Driver returns the driver in use by the emulator.
func (c *Chip8) Driver() Driver { return c.driver }

// Settings returns a copy of the settings the emulator was created with.
func (c *Chip8) Settings() Settings { return c.settings }

// Logger returns the session logger.
func (c *Chip8) Logger() *log.Logger { return c.logger }

// SetClock replaces the clock timer ticks are derived from.
func (c *Chip8) SetClock(clock Clock) {
	c.clock = clock
	c.lastTimerUpdate = time.Time{}
}

// AwaitingKey reports whether execution is suspended on LD VX,K.
func (c *Chip8) AwaitingKey() bool { return c.state == stateAwaitingKey }

// Faults returns how many recoverable errors RunFrame has absorbed.
func (c *Chip8) Faults() uint64 { return c.faults }

// Step polls input, retires pending timer ticks and then executes one
// instruction. While a key wait is pending it only checks the keypad and
// does not advance the program counter.
// Recoverable errors (see IsRecoverable) leave the emulator ready to step
// again; ErrQuit means the session is over.
func (c *Chip8) Step() error {
	if err := c.driver.PollEvents(); err != nil {
		return err
	}
	c.tickTimers()

	if c.state == stateAwaitingKey {
		c.checkKeyWait()
		return nil
	}

	addr := c.PC
	word := uint16(c.read(addr))<<8 | uint16(c.read(addr+1))
	c.PC += 2

	in, err := Decode(word)
	if err != nil {
		return &UnknownInstructionErr{Word: word, Address: addr}
	}
	if c.settings.Trace {
		c.logger.Debug("Executing", log.Hex("pc", addr), log.String("op", in.String()))
	}
	return c.execute(in, addr)
}

// RunFrame executes n steps. Recoverable errors are logged, counted and
// passed to Settings.OnFault without stopping; any other error, ErrQuit
// included, is returned immediately.
func (c *Chip8) RunFrame(n int) error {
	for i := 0; i < n; i++ {
		err := c.Step()
		if err == nil {
			continue
		}
		if !IsRecoverable(err) {
			return err
		}
		c.reportFault(err)
	}
	return nil
}

// Frame executes Settings.CyclesPerFrame steps, see RunFrame.
func (c *Chip8) Frame() error {
	return c.RunFrame(c.settings.CyclesPerFrame)
}

// Run runs one frame every TimerInterval until the user quits or ctx is
// cancelled, blocking the thread.
func (c *Chip8) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.settings.TimerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := c.Frame(); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}

func (c *Chip8) reportFault(err error) {
	c.faults++
	c.logger.Warn("Recoverable fault", log.Err(err), log.Hex("pc", c.PC))
	c.logger.Debug("Emulator state", log.String("state", c.String()))
	if c.settings.OnFault != nil {
		c.settings.OnFault(err)
	}
}

// beginKeyWait suspends execution until a key that isn't held right now
// gets pressed.
func (c *Chip8) beginKeyWait(register uint8) {
	c.state = stateAwaitingKey
	c.waitRegister = register
	c.waitKeys = 0
	for key := uint8(0); key < 16; key++ {
		if !c.driver.IsKeyDown(key) {
			c.waitKeys |= KeyFlags[key]
		}
	}
}

func (c *Chip8) checkKeyWait() {
	for key := uint8(0); key < 16; key++ {
		if !c.driver.IsKeyDown(key) {
			c.waitKeys |= KeyFlags[key]
			continue
		}
		if c.waitKeys&KeyFlags[key] != 0 {
			c.V[c.waitRegister] = key
			c.state = stateRunning
			return
		}
	}
}

// setResult stores an ALU result and the flag that goes with it. With
// GuardFlagRegister the flag always wins when x is VF, otherwise the result
// is written last and wins.
func (c *Chip8) setResult(x, result, flag uint8) {
	if c.settings.Quirks.GuardFlagRegister {
		if x != 0xF {
			c.V[x] = result
		}
		c.V[0xF] = flag
		return
	}
	c.V[0xF] = flag
	c.V[x] = result
}

func boolFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// execute runs a decoded instruction fetched from addr. PC already points
// past it.
func (c *Chip8) execute(in Instruction, addr uint16) error {
	x, y := in.X, in.Y

	switch in.Op {
	case OpSys:
		c.logger.Debug("Ignoring SYS call", log.Hex("address", in.NNN))
	case OpCls:
		c.driver.Clear()
	case OpRet:
		ret, ok := c.pop()
		if !ok {
			return &StackUnderflowErr{Address: addr}
		}
		c.PC = ret
	case OpJp:
		c.PC = in.NNN
	case OpCall:
		if !c.push(c.PC) {
			return &StackOverflowErr{Address: addr}
		}
		c.PC = in.NNN
	case OpSeByte:
		if c.V[x] == in.NN {
			c.PC += 2
		}
	case OpSneByte:
		if c.V[x] != in.NN {
			c.PC += 2
		}
	case OpSeReg:
		if c.V[x] == c.V[y] {
			c.PC += 2
		}
	case OpSneReg:
		if c.V[x] != c.V[y] {
			c.PC += 2
		}
	case OpLdByte:
		c.V[x] = in.NN
	case OpAddByte:
		c.V[x] += in.NN
	case OpLdReg:
		c.V[x] = c.V[y]
	case OpOr:
		c.V[x] |= c.V[y]
		c.resetLogicFlag()
	case OpAnd:
		c.V[x] &= c.V[y]
		c.resetLogicFlag()
	case OpXor:
		c.V[x] ^= c.V[y]
		c.resetLogicFlag()
	case OpAddReg:
		sum := uint16(c.V[x]) + uint16(c.V[y])
		c.setResult(x, uint8(sum), boolFlag(sum > 0xFF))
	case OpSub:
		vx, vy := uint16(c.V[x]), uint16(c.V[y])
		c.setResult(x, uint8(vx-vy), boolFlag(vx >= vy))
	case OpSubn:
		vx, vy := uint16(c.V[x]), uint16(c.V[y])
		c.setResult(x, uint8(vy-vx), boolFlag(vy >= vx))
	case OpShr:
		vy := c.V[y]
		c.setResult(x, vy>>1, vy&0x01) // least significant bit
	case OpShl:
		vy := c.V[y]
		c.setResult(x, vy<<1, vy>>7) // most significant bit
	case OpLdI:
		c.I = in.NNN
	case OpJpV0:
		c.PC = in.NNN + uint16(c.V[0])
	case OpRnd:
		c.V[x] = uint8(c.rng.Intn(0x100)) & in.NN
	case OpDrw:
		c.draw(c.V[x], c.V[y], in.N)
	case OpSkp:
		if c.driver.IsKeyDown(c.V[x] & 0x0F) {
			c.PC += 2
		}
	case OpSknp:
		if !c.driver.IsKeyDown(c.V[x] & 0x0F) {
			c.PC += 2
		}
	case OpLdVxDT:
		c.V[x] = c.DT
	case OpLdVxK:
		c.beginKeyWait(x)
	case OpLdDTVx:
		c.DT = c.V[x]
	case OpLdSTVx:
		c.ST = c.V[x]
	case OpAddI:
		c.I += uint16(c.V[x])
	case OpLdF:
		c.I = FontStart + GlyphSize*uint16(c.V[x]&0x0F)
	case OpLdB:
		value := c.V[x]
		c.write(c.I, value/100)     // hundreds
		c.write(c.I+1, value/10%10) // tens
		c.write(c.I+2, value%10)    // ones
	case OpLdMemVx:
		for i := uint8(0); i <= x; i++ {
			c.write(c.I, c.V[i])
			c.I++
		}
	case OpLdVxMem:
		for i := uint8(0); i <= x; i++ {
			c.V[i] = c.read(c.I)
			c.I++
		}
	default:
		return &UnknownInstructionErr{Word: in.Word, Address: addr}
	}
	return nil
}

func (c *Chip8) resetLogicFlag() {
	if c.settings.Quirks.LogicResetsFlag {
		c.V[0xF] = 0
	}
}

// draw XORs an n-row sprite read from I onto the screen. The start position
// wraps around the screen, everything past the right and bottom edges is
// clipped. VF is set when any lit pixel gets turned off.
func (c *Chip8) draw(vx, vy, rows uint8) {
	x0 := int(vx % DisplayWidth)
	y0 := int(vy % DisplayHeight)

	c.V[0xF] = 0
	for row := 0; row < int(rows); row++ {
		y := y0 + row
		if y >= DisplayHeight {
			break
		}

		sprite := c.read(c.I + uint16(row))
		for bit := 0; bit < 8; bit++ {
			x := x0 + bit
			if x >= DisplayWidth {
				break
			}
			if sprite&(0x80>>bit) == 0 {
				continue
			}

			if c.driver.GetPixel(x, y) {
				// previous pixel was set and it's now unset, which means
				// that we have a collision
				c.driver.SetPixel(x, y, false)
				c.V[0xF] = 1
			} else {
				c.driver.SetPixel(x, y, true)
			}
		}
	}
}
