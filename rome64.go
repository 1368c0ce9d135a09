// This file is part of Rome64.
//
// Rome64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rome64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rome64.  If not, see <https://www.gnu.org/licenses/>.

// Rome64 is a 64K ROM/RAM chip emulator. The program is the device side: it
// speaks the line-oriented command protocol on a serial channel and drives
// the chip bus - normally the simulated one - in response.
package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/rome64/firmware"
	"github.com/jetsetilly/rome64/hardware"
	"github.com/jetsetilly/rome64/hardware/simbus"
	"github.com/jetsetilly/rome64/logger"
	"github.com/jetsetilly/rome64/modalflag"
	"github.com/jetsetilly/rome64/performance"
	"github.com/jetsetilly/rome64/serial"
	"github.com/jetsetilly/rome64/serial/stdiochan"
	"github.com/jetsetilly/rome64/serial/termchan"
	"github.com/jetsetilly/rome64/statsview"
	"github.com/jetsetilly/rome64/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")
	md.AddDefaultSubMode("RUN")
	md.AdditionalHelp(
		"The RUN mode is the device firmware proper: it serves the command protocol on a\n" +
			"serial channel, driving the simulated chip bus in response. The PERFORMANCE mode\n" +
			"measures how quickly the bus can be swept on this machine.")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, version.Identity, version.Revision)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	port := md.AddString("port", "", "tty device to serve on (stdio when empty)")
	bitRate := md.AddInt("baud", serial.DefaultBitRate, "bit rate for the tty device")
	log := md.AddBool("log", true, "echo log entries to the host as informational lines")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var channel serial.Channel
	if *port != "" {
		channel, err = termchan.NewTermChan(*port, *bitRate)
		if err != nil {
			return err
		}
	} else {
		channel = stdiochan.NewStdioChan()
	}
	defer channel.CleanUp()

	dev := hardware.NewDevice(simbus.NewSimBus())
	fw := firmware.NewFirmware(channel, dev)

	if *log {
		logger.SetEcho(fw.InfoWriter())
	}

	return fw.Run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "duration of the measurement run")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, ALL, NONE")
	stats := md.AddBool("statsview", false, "run live stats view")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* program not built with statsview support")
		}
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, *duration)
}
