package metrics

import "runtime"

// MemorySnapshot holds the runtime memory figures reported after a run.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use by the process
	TotalAlloc  uint64 // cumulative bytes allocated
	NumGC       uint32 // completed GC cycles
	HeapObjects uint64 // live heap objects
}

// ReadMemory reads the current runtime memory statistics.
func ReadMemory() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		TotalAlloc:  m.TotalAlloc,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
	}
}

// RecordMemory stores a memory snapshot in the heap gauges.
func (c *FitCollector) RecordMemory(s MemorySnapshot) {
	if c == nil {
		return
	}
	c.HeapAlloc.Set(float64(s.HeapAlloc))
	c.TotalAlloc.Set(float64(s.TotalAlloc))
	c.GCCycles.Set(float64(s.NumGC))
}
