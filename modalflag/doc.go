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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// A mode is a special command line argument that when specified puts the
// program into a different mode of operation, with its own set of flags. The
// Rome64 command line is the motivating example: its RUN, PERFORMANCE and
// VERSION modes need different flags (a serial device name makes no sense to
// the performance measurement, a profiling option makes no sense to the
// command loop).
//
// Modes are added with the AddSubModes() function. Comparisons are case
// insensitive:
//
//	md.AddSubModes("run", "performance", "version")
//
// Subsequent calls to Parse() process flags in the normal way but in addition
// check whether the first argument after the flags is one of these modes. The
// Mode() function says which mode was selected:
//
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		runMode(md)
//	}
//
// Once the mode is known, NewMode() begins a fresh flag set for it and
// Parse() is called again for the remaining arguments:
//
//	func runMode(md *modalflag.Modes) error {
//		md.NewMode()
//		port := md.AddString("port", "", "tty device to serve on")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		return serve(*port)
//	}
//
// Modes can be chained as deep as required, each NewMode()/Parse() pair
// consuming one layer of the command line.
package modalflag
