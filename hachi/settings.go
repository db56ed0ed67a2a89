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
	"time"
)

// Quirks selects between behaviours that differ across historical CHIP-8
// interpreters.
type Quirks struct {
	// LogicResetsFlag makes OR, AND and XOR VX,VY clear VF. When disabled VF
	// keeps its previous value.
	LogicResetsFlag bool
	// GuardFlagRegister skips writing the result of ADD, SUB, SUBN, SHR and
	// SHL when the destination is VF, so only the flag survives. When
	// disabled the flag is set first and a VF destination overwrites it with
	// the result, like the earliest interpreters.
	GuardFlagRegister bool
}

// Settings holds the configuration parameters for a Chip8 instance.
type Settings struct {
	Quirks Quirks
	// The interval between each timer tick, normally 60hz = time.Second / 60.
	TimerInterval time.Duration
	// Number of instructions RunFrame executes per display frame.
	CyclesPerFrame int
	// Trace logs every executed instruction at debug level.
	Trace bool
	// Seed for RND. Zero picks a time based seed.
	Seed int64
	// OnFault, if set, is called with every recoverable error.
	OnFault func(err error)
}

// Validate validates the settings.
// Returns an error when the settings aren't valid.
func (s *Settings) Validate() error {
	if s.TimerInterval <= 0 {
		return fmt.Errorf("TimerInterval must be > 0, got %v", s.TimerInterval)
	}
	if s.CyclesPerFrame < 1 {
		return fmt.Errorf("CyclesPerFrame must be >= 1, got %v", s.CyclesPerFrame)
	}
	return nil
}

// DefaultSettings returns the usual settings:
// both quirks enabled, 60hz timers and 10 instructions per frame.
func DefaultSettings() Settings {
	return Settings{
		Quirks: Quirks{
			LogicResetsFlag:   true,
			GuardFlagRegister: true,
		},
		TimerInterval:  time.Second / 60,
		CyclesPerFrame: 10,
	}
}
