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


package hachi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AhmadJanjua/Emulator/hachi"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		word uint16
		op   hachi.Op
		text string
	}{
		{0x0123, hachi.OpSys, "SYS 123"},
		{0x00E0, hachi.OpCls, "CLS"},
		{0x00EE, hachi.OpRet, "RET"},
		{0x1ABC, hachi.OpJp, "JP ABC"},
		{0x2ABC, hachi.OpCall, "CALL ABC"},
		{0x3A12, hachi.OpSeByte, "SE VA,12"},
		{0x4A12, hachi.OpSneByte, "SNE VA,12"},
		{0x5AB0, hachi.OpSeReg, "SE VA,VB"},
		{0x6A12, hachi.OpLdByte, "LD VA,12"},
		{0x7A12, hachi.OpAddByte, "ADD VA,12"},
		{0x8AB0, hachi.OpLdReg, "LD VA,VB"},
		{0x8AB1, hachi.OpOr, "OR VA,VB"},
		{0x8AB2, hachi.OpAnd, "AND VA,VB"},
		{0x8AB3, hachi.OpXor, "XOR VA,VB"},
		{0x8AB4, hachi.OpAddReg, "ADD VA,VB"},
		{0x8AB5, hachi.OpSub, "SUB VA,VB"},
		{0x8AB6, hachi.OpShr, "SHR VA,VB"},
		{0x8AB7, hachi.OpSubn, "SUBN VA,VB"},
		{0x8ABE, hachi.OpShl, "SHL VA,VB"},
		{0x9AB0, hachi.OpSneReg, "SNE VA,VB"},
		{0xAABC, hachi.OpLdI, "LD I,ABC"},
		{0xBABC, hachi.OpJpV0, "JP V0,ABC"},
		{0xCA12, hachi.OpRnd, "RND VA,12"},
		{0xDAB5, hachi.OpDrw, "DRW VA,VB,5"},
		{0xEA9E, hachi.OpSkp, "SKP VA"},
		{0xEAA1, hachi.OpSknp, "SKNP VA"},
		{0xFA07, hachi.OpLdVxDT, "LD VA,DT"},
		{0xFA0A, hachi.OpLdVxK, "LD VA,K"},
		{0xFA15, hachi.OpLdDTVx, "LD DT,VA"},
		{0xFA18, hachi.OpLdSTVx, "LD ST,VA"},
		{0xFA1E, hachi.OpAddI, "ADD I,VA"},
		{0xFA29, hachi.OpLdF, "LD F,VA"},
		{0xFA33, hachi.OpLdB, "LD B,VA"},
		{0xFA55, hachi.OpLdMemVx, "LD [I],VA"},
		{0xFA65, hachi.OpLdVxMem, "LD VA,[I]"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%04X", tt.word), func(t *testing.T) {
			in, err := hachi.Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.op, in.Op)
			assert.Equal(t, tt.word, in.Word)
			assert.Equal(t, tt.text, in.String())
			assert.NotEmpty(t, in.Description())
		})
	}
}

func TestDecodeUnknown(t *testing.T) {
	for _, word := range []uint16{0x5121, 0x512F, 0x8AB8, 0x8ABF, 0x9AB1, 0xE000, 0xEA9F, 0xF000, 0xFAFF} {
		t.Run(fmt.Sprintf("%04X", word), func(t *testing.T) {
			in, err := hachi.Decode(word)
			assert.Equal(t, hachi.OpUnknown, in.Op)

			var unknown *hachi.UnknownInstructionErr
			assert.True(t, errors.As(err, &unknown))
			assert.Equal(t, word, unknown.Word)
			assert.True(t, hachi.IsRecoverable(err))
			assert.Equal(t, fmt.Sprintf("DB %02X %02X", word>>8, word&0xFF), in.String())
		})
	}
}

func TestDecodeOperands(t *testing.T) {
	in, err := hachi.Decode(0xD7C3)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x7), in.X)
	assert.Equal(t, uint8(0xC), in.Y)
	assert.Equal(t, uint8(0x3), in.N)
	assert.Equal(t, uint8(0xC3), in.NN)
	assert.Equal(t, uint16(0x7C3), in.NNN)
}

func TestOpIsSkip(t *testing.T) {
	assert.True(t, hachi.OpSeByte.IsSkip())
	assert.True(t, hachi.OpSknp.IsSkip())
	assert.False(t, hachi.OpJp.IsSkip())
	assert.False(t, hachi.OpUnknown.IsSkip())
}
