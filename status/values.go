package status

import (
	"math"
	"sync/atomic"
)

// MaxStringLen caps string metrics; state names and short labels fit
const MaxStringLen = 32

// AtomicFloat is a float64 metric stored as its IEEE bits; the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *AtomicFloat) Get() float64  { return math.Float64frombits(f.bits.Load()) }

// Add applies delta with a CAS loop and returns the result
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		cur := f.bits.Load()
		next := math.Float64frombits(cur) + delta
		if f.bits.CompareAndSwap(cur, math.Float64bits(next)) {
			return next
		}
	}
}

// AtomicString is a string metric; the zero value reads ""
type AtomicString struct {
	p atomic.Pointer[string]
}

// Store keeps at most MaxStringLen bytes of v
func (s *AtomicString) Store(v string) {
	if len(v) > MaxStringLen {
		v = v[:MaxStringLen]
	}
	s.p.Store(&v)
}

func (s *AtomicString) Load() string {
	if p := s.p.Load(); p != nil {
		return *p
	}
	return ""
}
