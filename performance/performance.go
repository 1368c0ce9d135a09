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

// Package performance contains helper functions relating to performance.
//
// Check() runs the device against the simulated bus for a fixed duration of
// time, hammering the self-test path, and reports how many full sweeps of
// the address space were completed. It will optionally generate profiling
// information.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/rome64/hardware"
	"github.com/jetsetilly/rome64/hardware/simbus"
)

// number of bus transfers in one self-test invocation: two patterns, each a
// full write sweep and a full verify sweep.
const transfersPerSweep = 4 * simbus.MemorySize

// Check measures self-test throughput on a simulated bus. the run lasts for
// the given duration and will create a cpu or memory profile (or both) as
// defined by the profile argument.
func Check(output io.Writer, profile Profile, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	dev := hardware.NewDevice(simbus.NewSimBus())

	runner := func() error {
		sweeps := 0
		start := time.Now()
		end := start.Add(dur)

		for time.Now().Before(end) {
			if res := dev.SelfTest(); res.HasErrors {
				return fmt.Errorf("performance: self-test failed on a healthy simulated bus (mask %02X)", res.ErrorMask)
			}
			sweeps++
		}

		elapsed := time.Since(start).Seconds()
		transfers := float64(sweeps) * transfersPerSweep

		fmt.Fprintf(output, "%d full-space self-test sweeps in %.2fs\n", sweeps, elapsed)
		fmt.Fprintf(output, "%.2f sweeps/sec; %.0f bus transfers/sec\n", float64(sweeps)/elapsed, transfers/elapsed)

		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return nil
}
