package ui

import (
	"strconv"
	"sync"
)

var (
	idMu       sync.Mutex
	idCounters = make(map[string]uint64)
)

// UniqueID returns kind concatenated with a monotonically increasing
// per-kind counter, e.g. "entry1", "entry2". Uniqueness holds for the
// process lifetime within one kind; callers must not rely on uniqueness
// across kinds beyond the concatenation scheme.
func UniqueID(kind string) string {
	idMu.Lock()
	defer idMu.Unlock()
	idCounters[kind]++
	return kind + strconv.FormatUint(idCounters[kind], 10)
}
