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
	"text/tabwriter"
)

var descriptions = [...]string{
	OpUnknown: "Unknown / Raw Data",
	OpSys:     "0NNN: Calls RCA 1802 program at address NNN (ignored).",
	OpCls:     "00E0: Clears the screen.",
	OpRet:     "00EE: Returns from a subroutine.",
	OpJp:      "1NNN: Jumps to address NNN.",
	OpCall:    "2NNN: Calls subroutine at NNN.",
	OpSeByte:  "3XNN: Skips the next instruction if VX equals NN.",
	OpSneByte: "4XNN: Skips the next instruction if VX doesn't equal NN.",
	OpSeReg:   "5XY0: Skips the next instruction if VX equals VY.",
	OpLdByte:  "6XNN: Sets VX to NN.",
	OpAddByte: "7XNN: Adds NN to VX.",
	OpLdReg:   "8XY0: Sets VX to the value of VY.",
	OpOr:      "8XY1: Sets VX to VX | VY (bit-wise OR).",
	OpAnd:     "8XY2: Sets VX to VX & VY (bit-wise AND).",
	OpXor:     "8XY3: Sets VX to VX ^ VY (bit-wise XOR).",
	OpAddReg:  "8XY4: VX += VY. VF = 1 when there's a carry, 0 when there isn't.",
	OpSub:     "8XY5: VX -= VY. VF = 0 when there's a borrow, 1 when there isn't.",
	OpShr:     "8XY6: VX = VY >> 1. VF = least significant bit prior to the shift.",
	OpSubn: "8XY7: VX = VY - VX. VF = 0 when there's a borrow, " +
		"1 when there isn't.",
	OpShl:     "8XYE: VX = VY << 1. VF = most significant bit prior to the shift.",
	OpSneReg:  "9XY0: Skips the next instruction if VX doesn't equal VY.",
	OpLdI:     "ANNN: Sets I to the address NNN.",
	OpJpV0:    "BNNN: Jumps to the address NNN plus V0.",
	OpRnd:     "CXNN: Sets VX to a random number (0-FF) & NN (bit-wise AND).",
	OpDrw:     "DXYN: Draws N rows of sprite pointed by I at VX,VY.",
	OpSkp:     "EX9E: Skips the next instruction if the key stored in VX is pressed.",
	OpSknp:    "EXA1: Skips the next instruction if the key stored in VX isn't pressed.",
	OpLdVxDT:  "FX07: Sets VX to the value of the delay timer.",
	OpLdVxK:   "FX0A: A key press is awaited, and then key number is stored in VX.",
	OpLdDTVx:  "FX15: Sets the delay timer to VX.",
	OpLdSTVx:  "FX18: Sets the sound timer to VX.",
	OpAddI:    "FX1E: Adds VX to I.",
	OpLdF:     "FX29: Sets I to the location of the sprite for the character in VX.",
	OpLdB:     "FX33: Store BCD representation of VX in memory at I, I+1, and I+2.",
	OpLdMemVx: "FX55: Stores V0 to VX in memory starting at address I, then I += X+1.",
	OpLdVxMem: "FX65: Fills V0 to VX with values from memory starting at address I, then I += X+1.",
}

// Description returns a detailed description of what the instruction does.
func (in Instruction) Description() string {
	if int(in.Op) < len(descriptions) {
		return descriptions[in.Op]
	}
	return descriptions[OpUnknown]
}

// String returns a pseudo-asm representation of the instruction.
func (in Instruction) String() string {
	switch in.Op {
	case OpSys:
		return fmt.Sprintf("SYS %03X", in.NNN)
	case OpCls:
		return "CLS"
	case OpRet:
		return "RET"
	case OpJp:
		return fmt.Sprintf("JP %03X", in.NNN)
	case OpCall:
		return fmt.Sprintf("CALL %03X", in.NNN)
	case OpSeByte:
		return fmt.Sprintf("SE V%1X,%02X", in.X, in.NN)
	case OpSneByte:
		return fmt.Sprintf("SNE V%1X,%02X", in.X, in.NN)
	case OpSeReg:
		return fmt.Sprintf("SE V%1X,V%1X", in.X, in.Y)
	case OpLdByte:
		return fmt.Sprintf("LD V%1X,%02X", in.X, in.NN)
	case OpAddByte:
		return fmt.Sprintf("ADD V%1X,%02X", in.X, in.NN)
	case OpLdReg:
		return fmt.Sprintf("LD V%1X,V%1X", in.X, in.Y)
	case OpOr:
		return fmt.Sprintf("OR V%1X,V%1X", in.X, in.Y)
	case OpAnd:
		return fmt.Sprintf("AND V%1X,V%1X", in.X, in.Y)
	case OpXor:
		return fmt.Sprintf("XOR V%1X,V%1X", in.X, in.Y)
	case OpAddReg:
		return fmt.Sprintf("ADD V%1X,V%1X", in.X, in.Y)
	case OpSub:
		return fmt.Sprintf("SUB V%1X,V%1X", in.X, in.Y)
	case OpShr:
		return fmt.Sprintf("SHR V%1X,V%1X", in.X, in.Y)
	case OpSubn:
		return fmt.Sprintf("SUBN V%1X,V%1X", in.X, in.Y)
	case OpShl:
		return fmt.Sprintf("SHL V%1X,V%1X", in.X, in.Y)
	case OpSneReg:
		return fmt.Sprintf("SNE V%1X,V%1X", in.X, in.Y)
	case OpLdI:
		return fmt.Sprintf("LD I,%03X", in.NNN)
	case OpJpV0:
		return fmt.Sprintf("JP V0,%03X", in.NNN)
	case OpRnd:
		return fmt.Sprintf("RND V%1X,%02X", in.X, in.NN)
	case OpDrw:
		return fmt.Sprintf("DRW V%1X,V%1X,%1X", in.X, in.Y, in.N)
	case OpSkp:
		return fmt.Sprintf("SKP V%1X", in.X)
	case OpSknp:
		return fmt.Sprintf("SKNP V%1X", in.X)
	case OpLdVxDT:
		return fmt.Sprintf("LD V%1X,DT", in.X)
	case OpLdVxK:
		return fmt.Sprintf("LD V%1X,K", in.X)
	case OpLdDTVx:
		return fmt.Sprintf("LD DT,V%1X", in.X)
	case OpLdSTVx:
		return fmt.Sprintf("LD ST,V%1X", in.X)
	case OpAddI:
		return fmt.Sprintf("ADD I,V%1X", in.X)
	case OpLdF:
		return fmt.Sprintf("LD F,V%1X", in.X)
	case OpLdB:
		return fmt.Sprintf("LD B,V%1X", in.X)
	case OpLdMemVx:
		return fmt.Sprintf("LD [I],V%1X", in.X)
	case OpLdVxMem:
		return fmt.Sprintf("LD V%1X,[I]", in.X)
	}
	return fmt.Sprintf("DB %02X %02X", uint8(in.Word>>8), uint8(in.Word))
}

// -----------------------------------------------------------------------------

// A Line is one entry of a disassembly listing: either a decoded instruction
// or 1-2 bytes of unrecognized raw data.
type Line struct {
	Address     uint16
	Bytes       []byte
	Instruction Instruction
}

// Raw reports whether the line holds data that didn't decode.
func (l Line) Raw() bool { return l.Instruction.Op == OpUnknown }

// Size returns the size of the line in bytes.
func (l Line) Size() int { return len(l.Bytes) }

// Opcode returns the line's bytes as a big-endian integer.
func (l Line) Opcode() (res uint16) {
	for _, b := range l.Bytes {
		res = res<<8 | uint16(b)
	}
	return
}

// ASCII returns the ASCII representation of the raw data for this line.
// Returns an empty string if the data is not printable ascii.
func (l Line) ASCII() (res string) {
	if isPrintableASCII(l.Bytes) {
		res = string(l.Bytes)
	}
	return
}

func (l Line) String() string {
	if l.Size() == 1 {
		return fmt.Sprintf("DB %02X", l.Bytes[0])
	}
	return l.Instruction.String()
}

// DisassembleSimple disassembles raw data that is loaded at base and returns
// one Line per 2-byte word. A trailing odd byte becomes a 1-byte raw data
// line. It's fast but it cannot handle odd-aligned opcodes or recognize raw
// data memory regions.
func DisassembleSimple(b []byte, base uint16) []Line {
	lines := make([]Line, 0, (len(b)+1)/2)

	for i := 0; i < len(b); i += 2 {
		addr := base + uint16(i)
		if i+1 == len(b) {
			lines = append(lines, Line{Address: addr, Bytes: b[i : i+1]})
			break
		}

		word := uint16(b[i])<<8 | uint16(b[i+1])
		in, _ := Decode(word) // unknown words are listed as raw data
		lines = append(lines, Line{Address: addr, Bytes: b[i : i+2], Instruction: in})
	}
	return lines
}

// WriteListing writes a tab-aligned listing with address, opcode,
// pseudo-code, ascii and description columns.
func WriteListing(w io.Writer, lines []Line) error {
	tw := tabwriter.NewWriter(w, 8, 8, 0, '\t', 0)
	fmt.Fprintln(tw, "addr\topcode\tpseudo-code\tascii\tdescription\t")

	for _, l := range lines {
		asciitext := ""
		if ascii := l.ASCII(); len(ascii) != 0 {
			asciitext = fmt.Sprintf("`%s`", ascii)
		}

		opcodeFormatter := "%04X"
		if l.Size() == 1 {
			opcodeFormatter = "%02X"
		}

		fmt.Fprintf(tw, "%04X\t"+opcodeFormatter+"\t%v\t%s\t%s\t\n",
			l.Address, l.Opcode(), l, asciitext, l.Instruction.Description())
	}

	return tw.Flush()
}

func isPrintableASCII(s []byte) bool {
	for _, c := range s {
		if c < 32 || c > 126 {
			return false
		}
	}
	return true
}
