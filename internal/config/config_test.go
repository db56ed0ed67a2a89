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


package config

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "defaults",
			args: []string{"pong.ch8"},
			want: Options{Program: "pong.ch8", Driver: "termloop", Cycles: 10},
		},
		{
			name: "driver and quirks",
			args: []string{"-driver", "ebiten", "-logic-keeps-vf", "-vf-writes", "pong.ch8"},
			want: Options{Program: "pong.ch8", Driver: "ebiten", Cycles: 10, LogicKeepsVF: true, VFWrites: true},
		},
		{
			name: "tools",
			args: []string{"-disasm", "-dump", "-cycles", "20", "-seed", "7", "pong.ch8"},
			want: Options{Program: "pong.ch8", Driver: "termloop", Cycles: 20, Seed: 7, Disasm: true, Dump: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags("tl-hachi", tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no program", nil},
		{"two programs", []string{"a.ch8", "b.ch8"}},
		{"unknown flag", []string{"-nope", "a.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags("tl-hachi", tt.args)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}

func TestParseFlagsInvalidCycles(t *testing.T) {
	_, err := ParseFlags("tl-hachi", []string{"-cycles", "0", "a.ch8"})
	assert.ErrorContains(t, err, "invalid cycle count")

	var usageErr *UsageError
	assert.False(t, errors.As(err, &usageErr))
}

func TestOptionsSettings(t *testing.T) {
	s := Options{Cycles: 5, LogicKeepsVF: true, Seed: 3}.Settings()
	assert.Equal(t, 5, s.CyclesPerFrame)
	assert.False(t, s.Quirks.LogicResetsFlag)
	assert.True(t, s.Quirks.GuardFlagRegister)
	assert.Equal(t, int64(3), s.Seed)
	assert.NoError(t, s.Validate())
}
