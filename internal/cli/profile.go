package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"
)

// MemorySampleInterval controls how often a heap profile is dumped while the
// memory profiler runs. Long intervals keep the number of dump files manageable.
var MemorySampleInterval = 2 * time.Second

type memProfiler struct {
	dumpDir   string
	dumpCount int
	stop      chan struct{}
}

var activeMemProfiler *memProfiler

func StartCPUProfiler(profileOutput io.Writer) {
	runtime.SetCPUProfileRate(500)
	if err := pprof.StartCPUProfile(profileOutput); err != nil {
		log.Fatalln("Error starting CPU profiler")
	}
}

func StopCPUProfiler() {
	pprof.StopCPUProfile()
}

func StartMemoryProfiler(dumpDir string) {
	if MemorySampleInterval <= 0 {
		return
	}

	activeMemProfiler = &memProfiler{dumpDir: dumpDir, stop: make(chan struct{})}

	go func() {
		ticker := time.NewTicker(MemorySampleInterval)
		defer ticker.Stop()
		for {
			select {
			case <-activeMemProfiler.stop:
				return
			case <-ticker.C:
				activeMemProfiler.dumpHeap()
			}
		}
	}()
}

func StopMemoryProfiler() {
	if activeMemProfiler != nil {
		close(activeMemProfiler.stop)
		activeMemProfiler.dumpHeap()
		activeMemProfiler = nil
	}
}

func (p *memProfiler) dumpHeap() {
	_ = os.MkdirAll(p.dumpDir, os.ModePerm)
	dumpFile, err := os.Create(filepath.Join(p.dumpDir, fmt.Sprintf("mem-%d.mprof", p.dumpCount)))
	if err != nil {
		log.Println("Error creating memory profile dump file")
		return
	}
	defer dumpFile.Close()

	if err = pprof.WriteHeapProfile(dumpFile); err != nil {
		log.Println("Error writing memory profile to disk")
		return
	}
	p.dumpCount++
}
