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


// Command tl-hachi runs a CHIP-8 program.
package main

import (
	"errors"
	"os"

	_ "github.com/AhmadJanjua/Emulator/drivers"
	"github.com/AhmadJanjua/Emulator/hachi"
	"github.com/AhmadJanjua/Emulator/internal/config"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

func main() {
	opts, err := config.ParseFlags(os.Args[0], os.Args[1:])
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			logger.Error(usageErr.Error())
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	if err := run(logger, opts); err != nil {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func run(logger *log.Logger, opts config.Options) error {
	driver := opts.Driver
	if opts.Disasm || opts.Dump {
		// tools don't need a screen
		driver = "null"
	}

	settings := opts.Settings()
	c, err := hachi.New(driver, &settings, logger)
	if err != nil {
		return err
	}
	if err := c.LoadFile(opts.Program); err != nil {
		return err
	}

	switch {
	case opts.Disasm:
		lines := hachi.DisassembleSimple(c.Program(), hachi.ProgramStart)
		return hachi.WriteListing(os.Stdout, lines)
	case opts.Dump:
		return c.Dump(os.Stdout)
	}

	ctx := app.Context()
	if err := c.Driver().Run(ctx, c); err != nil {
		return err
	}
	logger.Debug("Session ended", log.Int("faults", int(c.Faults())))
	return nil
}
