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

// StackSize is the maximum amount of nested calls.
const StackSize = 16

// push stores a return address. It reports false, leaving the stack as it
// was, when all StackSize slots are in use.
func (c *Chip8) push(addr uint16) bool {
	if c.SP >= StackSize {
		return false
	}
	c.Stack[c.SP] = addr
	c.SP++
	return true
}

// pop removes the most recent return address. It reports false on an empty
// stack.
func (c *Chip8) pop() (uint16, bool) {
	if c.SP <= 0 {
		return 0, false
	}
	c.SP--
	return c.Stack[c.SP], true
}
