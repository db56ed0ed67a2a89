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
	"errors"
	"fmt"
)

// ErrQuit is returned by Input.PollEvents when the user asked to end the
// session. It terminates RunFrame and Run without being counted as a fault.
var ErrQuit = errors.New("quit requested")

// LoadErrorKind tells why a program image was rejected.
type LoadErrorKind int

const (
	// LoadUnreadable means the image could not be read from its source.
	LoadUnreadable LoadErrorKind = iota
	// LoadEmpty means the image contains no bytes.
	LoadEmpty
	// LoadTooLarge means the image does not fit between 0x200 and the end of
	// memory.
	LoadTooLarge
)

func (k LoadErrorKind) String() string {
	switch k {
	case LoadUnreadable:
		return "unreadable"
	case LoadEmpty:
		return "empty"
	case LoadTooLarge:
		return "too large"
	}
	return fmt.Sprintf("LoadErrorKind(%d)", int(k))
}

// A LoadError is returned when a program image can't be loaded. Memory is
// left untouched when this happens.
type LoadError struct {
	Kind LoadErrorKind
	// Size of the image in bytes, when known.
	Size int
	// Underlying I/O error for LoadUnreadable.
	Err error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case LoadEmpty:
		return "program image is empty"
	case LoadTooLarge:
		return fmt.Sprintf("not enough memory (program size: %v, free memory: %v)",
			e.Size, MemorySize-ProgramStart)
	}
	if e.Err != nil {
		return fmt.Sprintf("program image is unreadable: %v", e.Err)
	}
	return "program image is unreadable"
}

func (e *LoadError) Unwrap() error { return e.Err }

// A StackOverflowErr is returned when a CALL is executed with a full stack.
// The call is ignored.
type StackOverflowErr struct {
	// Address of the offending instruction.
	Address uint16
}

func (e *StackOverflowErr) Error() string {
	return fmt.Sprintf("stack overflow at %04X", e.Address)
}

// A StackUnderflowErr is returned when a RET is executed with an empty stack.
// The return is ignored.
type StackUnderflowErr struct {
	Address uint16
}

func (e *StackUnderflowErr) Error() string {
	return fmt.Sprintf("stack underflow at %04X", e.Address)
}

// An UnknownInstructionErr is returned when a word doesn't decode to any
// operation. Execution continues with the following instruction.
type UnknownInstructionErr struct {
	Word    uint16
	Address uint16
}

func (e *UnknownInstructionErr) Error() string {
	return fmt.Sprintf("unknown instruction %04X at %04X", e.Word, e.Address)
}

// IsRecoverable reports whether err is one of the faults the interpreter
// survives: stack overflow, stack underflow and unknown instructions.
func IsRecoverable(err error) bool {
	var (
		overflow  *StackOverflowErr
		underflow *StackUnderflowErr
		unknown   *UnknownInstructionErr
	)
	return errors.As(err, &overflow) ||
		errors.As(err, &underflow) ||
		errors.As(err, &unknown)
}
