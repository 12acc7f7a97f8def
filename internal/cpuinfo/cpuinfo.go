// Copyright 2025 go-lens Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cpuinfo reports the CPU features seen by golang.org/x/sys/cpu and
// the vector dispatch chosen by hwy.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-lens/hwy"
	"github.com/ajroetker/go-lens/quad"
)

// Feature is a single CPU capability flag.
type Feature struct {
	Name string
	Has  bool
	Note string
}

// Report is a snapshot of the runtime and dispatch state.
type Report struct {
	GOOS          string
	GOARCH        string
	NumCPU        int
	GOMAXPROCS    int
	Level         hwy.DispatchLevel
	Width         int
	Name          string
	Float64Lanes  int
	HasFMA        bool
	NoSimd        bool
	Features      []Feature
	ParallelAbove int
	StripSize     int
}

// Collect gathers a Report for the running process.
func Collect() Report {
	return Report{
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		NumCPU:        runtime.NumCPU(),
		GOMAXPROCS:    runtime.GOMAXPROCS(0),
		Level:         hwy.CurrentLevel(),
		Width:         hwy.CurrentWidth(),
		Name:          hwy.CurrentName(),
		Float64Lanes:  hwy.MaxLanes[float64](),
		HasFMA:        hwy.HasFMA(),
		NoSimd:        hwy.NoSimdEnv(),
		Features:      Features(runtime.GOARCH),
		ParallelAbove: quad.MinParallelElems,
		StripSize:     quad.StripSize,
	}
}

// Features lists the x/sys/cpu flags relevant to goarch. Unknown
// architectures yield nil.
func Features(goarch string) []Feature {
	switch goarch {
	case "arm64":
		return []Feature{
			{"HasASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
			{"HasFP", cpu.ARM64.HasFP, "floating point"},
			{"HasFPHP", cpu.ARM64.HasFPHP, "FP16 scalar, ARMv8.2-A"},
			{"HasASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
			{"HasSVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
			{"HasSVE2", cpu.ARM64.HasSVE2, ""},
			{"HasATOMICS", cpu.ARM64.HasATOMICS, "Large System Extensions"},
		}
	case "amd64":
		return []Feature{
			{"HasSSE2", cpu.X86.HasSSE2, ""},
			{"HasSSE41", cpu.X86.HasSSE41, ""},
			{"HasAVX", cpu.X86.HasAVX, ""},
			{"HasAVX2", cpu.X86.HasAVX2, ""},
			{"HasFMA", cpu.X86.HasFMA, ""},
			{"HasAVX512F", cpu.X86.HasAVX512F, ""},
			{"HasAVX512DQ", cpu.X86.HasAVX512DQ, ""},
		}
	}
	return nil
}

// Write prints r to w as an aligned table.
func (r Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "GOOS:\t%s\n", r.GOOS)
	fmt.Fprintf(tw, "GOARCH:\t%s\n", r.GOARCH)
	fmt.Fprintf(tw, "NumCPU:\t%d\n", r.NumCPU)
	fmt.Fprintf(tw, "GOMAXPROCS:\t%d\n", r.GOMAXPROCS)
	fmt.Fprintf(tw, "Dispatch level:\t%s\n", r.Level)
	fmt.Fprintf(tw, "Dispatch width:\t%d bytes (%d float64 lanes)\n", r.Width, r.Float64Lanes)
	fmt.Fprintf(tw, "Dispatch name:\t%s\n", r.Name)
	fmt.Fprintf(tw, "FMA:\t%v\n", r.HasFMA)
	fmt.Fprintf(tw, "HWY_NO_SIMD:\t%v\n", r.NoSimd)
	fmt.Fprintf(tw, "Quadrature:\tparallel above %d radii, %d per strip\n", r.ParallelAbove, r.StripSize)
	if len(r.Features) > 0 {
		fmt.Fprintf(tw, "\n=== golang.org/x/sys/cpu (%s) ===\n", r.GOARCH)
		for _, f := range r.Features {
			if f.Note != "" {
				fmt.Fprintf(tw, "  %s:\t%v\t(%s)\n", f.Name, f.Has, f.Note)
			} else {
				fmt.Fprintf(tw, "  %s:\t%v\n", f.Name, f.Has)
			}
		}
	}
	return tw.Flush()
}
