// Bench measures forksort build performance across fan-out cutoffs and
// verifies that correctness is cutoff-invariant.
//
// Usage:
//
//	go run ./cmd/bench -n 1000000 -cutoffs 0,1,2,3,4 -shape random
//
// Flags:
//
//	-n           Number of elements to sort (default: 1,000,000)
//	-cutoffs     Comma-separated cutoff values to compare (default: 0,1,2,3,4)
//	-shape       Input shape: random, reversed, constant, sorted (default: random)
//	-seed        Seed for the random shape (default: 0x1234567890abcdef)
//	-trials      Timed runs per cutoff; best time is reported (default: 3)
//	-spawnlimit  Live spawned task bound, -1 for unlimited (default: -1)
//	-file        Sort a memory-mapped data file at this path instead of RAM
//	-cpuprofile  Write a CPU profile of the timed runs to this file
//	-memprofile  Write a heap profile taken after the timed runs to this file
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
	"golang.org/x/sys/unix"

	"github.com/tamirms/forksort"
	"github.com/tamirms/forksort/internal/datafile"
	"github.com/tamirms/forksort/internal/datagen"
)

// maxRSS returns the peak resident set size in bytes.
func maxRSS() uint64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	// On macOS Maxrss is in bytes; on Linux it is in kilobytes.
	rss := uint64(ru.Maxrss)
	if runtime.GOOS == "linux" {
		rss *= 1024
	}
	return rss
}

// orderedDigest hashes the buffer in index order: equal digests mean
// bit-identical contents.
func orderedDigest(data []int64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range data {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// multisetFingerprint folds per-element hashes commutatively, so it is
// invariant under any permutation of the buffer. Matching fingerprints
// before and after a sort mean no element was created, lost or duplicated
// (up to hash collisions).
func multisetFingerprint(data []int64) uint64 {
	var sum uint64
	var buf [8]byte
	for _, v := range data {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		sum += xxh3.Hash(buf[:])
	}
	return sum
}

func parseCutoffs(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	cutoffs := make([]int, 0, len(parts))
	for _, p := range parts {
		c, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || c < 0 {
			return nil, fmt.Errorf("invalid cutoff %q", p)
		}
		cutoffs = append(cutoffs, c)
	}
	if len(cutoffs) == 0 {
		return nil, fmt.Errorf("no cutoffs given")
	}
	return cutoffs, nil
}

func fillShape(dst []int64, shape string, seed uint64) error {
	switch shape {
	case "random":
		datagen.Fill(dst, seed)
	case "reversed":
		datagen.FillReversed(dst)
	case "constant":
		datagen.FillConstant(dst, 42)
	case "sorted":
		datagen.FillSorted(dst)
	default:
		return fmt.Errorf("unknown shape %q", shape)
	}
	return nil
}

func main() {
	nFlag := flag.Int("n", 1_000_000, "number of elements")
	cutoffsFlag := flag.String("cutoffs", "0,1,2,3,4", "comma-separated cutoffs to compare")
	shapeFlag := flag.String("shape", "random", "input shape: random, reversed, constant, sorted")
	seedFlag := flag.Uint64("seed", 0x1234567890abcdef, "seed for the random shape")
	trialsFlag := flag.Int("trials", 3, "timed runs per cutoff")
	spawnLimitFlag := flag.Int("spawnlimit", -1, "live spawned task bound, -1 for unlimited")
	fileFlag := flag.String("file", "", "sort a memory-mapped data file at this path")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	flag.Parse()

	if err := run(*nFlag, *cutoffsFlag, *shapeFlag, *seedFlag, *trialsFlag,
		*spawnLimitFlag, *fileFlag, *cpuprofile, *memprofile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(n int, cutoffsCSV, shape string, seed uint64, trials, spawnLimit int,
	filePath, cpuprofile, memprofile string) error {
	if n <= 0 {
		return fmt.Errorf("-n must be positive")
	}
	if trials <= 0 {
		return fmt.Errorf("-trials must be positive")
	}
	cutoffs, err := parseCutoffs(cutoffsCSV)
	if err != nil {
		return err
	}

	var opts []forksort.Option
	if spawnLimit >= 0 {
		opts = append(opts, forksort.WithSpawnLimit(spawnLimit))
	}

	// Primary buffer: RAM, or a mapped data file sorted in place.
	var primary []int64
	var df *datafile.File
	if filePath != "" {
		df, err = datafile.Create(filePath, n)
		if err != nil {
			return err
		}
		defer df.Close()
		primary = df.Data()
		fmt.Printf("Sorting %d elements in place in %s (mmap)\n", n, filePath)
	} else {
		primary = make([]int64, n)
		fmt.Printf("Sorting %d elements in RAM\n", n)
	}

	fmt.Printf("Generating %s input...\n", shape)
	pristine := make([]int64, n)
	if err := fillShape(pristine, shape, seed); err != nil {
		return err
	}
	scratch := make([]int64, n)
	inputFP := multisetFingerprint(pristine)

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Printf("\n%-8s %-14s %-12s %s\n", "cutoff", "best", "throughput", "digest")
	var wantDigest uint64
	for ci, cutoff := range cutoffs {
		var best time.Duration
		for trial := 0; trial < trials; trial++ {
			copy(primary, pristine)
			start := time.Now()
			if err := forksort.Sort(primary, scratch, cutoff, opts...); err != nil {
				return fmt.Errorf("cutoff %d: %w", cutoff, err)
			}
			elapsed := time.Since(start)
			if trial == 0 || elapsed < best {
				best = elapsed
			}
		}

		if !slices.IsSorted(primary) {
			return fmt.Errorf("cutoff %d: result is not sorted", cutoff)
		}
		if fp := multisetFingerprint(primary); fp != inputFP {
			return fmt.Errorf("cutoff %d: result is not a permutation of the input", cutoff)
		}
		digest := orderedDigest(primary)
		if ci == 0 {
			wantDigest = digest
		} else if digest != wantDigest {
			return fmt.Errorf("cutoff %d: digest %016x differs from cutoff %d's %016x",
				cutoff, digest, cutoffs[0], wantDigest)
		}

		elemsPerSec := float64(n) / best.Seconds()
		fmt.Printf("%-8d %-14v %-12s %016x\n",
			cutoff, best, fmt.Sprintf("%.1fM/s", elemsPerSec/1e6), digest)
	}

	if df != nil {
		if err := df.Flush(); err != nil {
			return err
		}
	}

	if memprofile != "" {
		f, err := os.Create(memprofile)
		if err != nil {
			return err
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}
	}

	fmt.Printf("\nAll cutoffs produced bit-identical sorted output\n")
	fmt.Printf("Peak RSS: %.1f MiB\n", float64(maxRSS())/(1<<20))
	return nil
}
