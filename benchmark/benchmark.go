// benchmark.go
// A reusable benchmarking module for biokit
// Measures execution time and memory usage for any wrapped command

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Result is the resource usage of one wrapped run.
type Result struct {
	Label          string
	Elapsed        time.Duration
	MemUsedMB      float64
	TotalAllocMB   float64
	PeakHeapMB     float64
	GCCycles       uint32
	CPUCores       int
	GoroutineStart int
	GoroutineEnd   int
}

// Run wraps f to measure its runtime and memory usage and writes the report
// to w. The error of f is returned unchanged after the report is written.
func Run(w io.Writer, label string, f func() error) (Result, error) {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	// Prepare for benchmark
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	res := Result{
		Label:          label,
		CPUCores:       runtime.NumCPU(),
		GoroutineStart: runtime.NumGoroutine(),
	}
	start := time.Now()

	// Run benchmarked function
	runErr := f()

	res.Elapsed = time.Since(start)
	runtime.ReadMemStats(&memEnd)
	res.GoroutineEnd = runtime.NumGoroutine()
	res.MemUsedMB = mb(int64(memEnd.Alloc) - int64(memStart.Alloc))
	res.TotalAllocMB = mb(int64(memEnd.TotalAlloc - memStart.TotalAlloc))
	res.PeakHeapMB = mb(int64(memEnd.HeapAlloc))
	res.GCCycles = memEnd.NumGC - memStart.NumGC

	// Report resource usage
	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", res.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", res.MemUsedMB)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", res.TotalAllocMB)
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", res.PeakHeapMB)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", res.GCCycles)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", res.CPUCores)
	fmt.Fprintf(w, "[Benchmark] Goroutines Started: %d → %d\n", res.GoroutineStart, res.GoroutineEnd)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
	return res, runErr
}

func mb(bytes int64) float64 {
	return float64(bytes) / 1024.0 / 1024.0
}
