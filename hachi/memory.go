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


package hachi

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
)

const (
	// MemorySize is the size of the address space in bytes.
	MemorySize = 0x1000
	// ProgramStart is where program images are loaded and execution begins.
	// Programs normally start at 0x200 because the original interpreter
	// occupied those first 512 bytes.
	ProgramStart = 0x200
	// MaxProgramSize is the largest image that fits in memory.
	MaxProgramSize = MemorySize - ProgramStart
	// FontStart is the address of the built-in hex font. Glyph k occupies
	// FontStart+5k through FontStart+5k+4.
	FontStart = 0x000
	// GlyphSize is the size of one font glyph in bytes.
	GlyphSize = 5

	addressMask = MemorySize - 1
)

var font = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// LoadFile opens a CHIP-8 binary file and loads it into memory.
func (c *Chip8) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Kind: LoadUnreadable, Err: err}
	}
	defer f.Close()

	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() &&
		fi.Size() > MaxProgramSize {
		return &LoadError{Kind: LoadTooLarge, Size: int(fi.Size())}
	}

	if err := c.Load(f); err != nil {
		return err
	}
	c.logger.Info("Loaded program", log.String("file", path),
		log.Int("size", c.programSize))
	return nil
}

// Load reads a whole program image from r and copies it to ProgramStart,
// resetting the program counter. The image is validated before memory is
// touched, so a failed load leaves the previous state intact.
func (c *Chip8) Load(r io.Reader) error {
	program, err := io.ReadAll(io.LimitReader(r, MaxProgramSize+1))
	if err != nil {
		return &LoadError{Kind: LoadUnreadable, Size: len(program), Err: err}
	}
	return c.LoadRaw(program)
}

// LoadRaw loads a byte slice as a CHIP-8 binary into memory.
func (c *Chip8) LoadRaw(program []byte) error {
	switch {
	case len(program) == 0:
		return &LoadError{Kind: LoadEmpty}
	case len(program) > MaxProgramSize:
		return &LoadError{Kind: LoadTooLarge, Size: len(program)}
	}

	clear(c.Memory[ProgramStart:])
	copy(c.Memory[ProgramStart:], program)
	c.programSize = len(program)
	c.PC = ProgramStart
	c.state = stateRunning
	c.logger.Debug("Program copied to memory",
		log.Hex("address", uint16(ProgramStart)), log.Int("size", len(program)))
	return nil
}

// Program returns the currently loaded program image.
func (c *Chip8) Program() []byte {
	return c.Memory[ProgramStart : ProgramStart+c.programSize]
}

// Dump writes every non-zero 16-bit word of memory to w, one per line,
// prefixed with its address.
func (c *Chip8) Dump(w io.Writer) error {
	for addr := 0; addr < MemorySize; addr += 2 {
		word := uint16(c.Memory[addr])<<8 | uint16(c.Memory[addr+1])
		if word == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%03X: %04X\n", addr, word); err != nil {
			return err
		}
	}
	return nil
}

// read returns the byte at addr, wrapped to the 12-bit address space.
func (c *Chip8) read(addr uint16) byte {
	return c.Memory[addr&addressMask]
}

func (c *Chip8) write(addr uint16, value byte) {
	c.Memory[addr&addressMask] = value
}
