// Package metrics 提供运行时指标采集与控制台报告输出
package metrics

import (
	"runtime"
	"runtime/debug"
	"time"
)

// Snapshot 运行时指标快照
type Snapshot struct {
	TS           time.Time
	HeapAlloc    uint64
	HeapSys      uint64
	TotalAlloc   uint64
	NumGC        uint32
	NumGoroutine int
}

// Take 采集当前运行时指标
func Take() Snapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Snapshot{
		TS:           time.Now(),
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		TotalAlloc:   m.TotalAlloc,
		NumGC:        m.NumGC,
		NumGoroutine: runtime.NumGoroutine(),
	}
}

// GC 触发 GC 并释放回 OS，避免回收落在计时区间内
func GC() {
	runtime.GC()
	debug.FreeOSMemory()
}

// Delta 两次快照之间的差值
type Delta struct {
	Elapsed      time.Duration
	AllocBytes   uint64 // 区间内累计分配字节数
	AllocRateBps float64
	GCCount      uint32
}

// Diff 计算两次快照间的累计分配量、分配速率（bytes/s）和 GC 次数差
func Diff(before, after Snapshot) Delta {
	d := Delta{Elapsed: after.TS.Sub(before.TS)}
	if after.TotalAlloc > before.TotalAlloc {
		d.AllocBytes = after.TotalAlloc - before.TotalAlloc
	}
	if secs := d.Elapsed.Seconds(); secs > 0 {
		d.AllocRateBps = float64(d.AllocBytes) / secs
	}
	if after.NumGC >= before.NumGC {
		d.GCCount = after.NumGC - before.NumGC
	}
	return d
}
