// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/katalvlaran/robustgeo/interval"
)

// Sentinel errors. The precondition errors are only raised by builds tagged
// robustgeo_debug; release builds do not validate inputs.
var (
	// ErrDegenerateSegment indicates that the two endpoints of a segment coincide.
	ErrDegenerateSegment = errors.New("kernel: segment endpoints coincide")

	// ErrZeroVector indicates that a direction vector is zero.
	ErrZeroVector = errors.New("kernel: direction vector is zero")

	// ErrNilStats indicates that a nil statistics block was passed to an Option.
	ErrNilStats = errors.New("kernel: statistics block is nil")

	// ErrNilLogger indicates that a nil logger was passed to WithLogger.
	ErrNilLogger = errors.New("kernel: logger is nil")
)

// Orientation is the turn direction of an ordered point triple.
type Orientation int

const (
	// RightTurn means clockwise.
	RightTurn Orientation = -1
	// Collinear means the three points lie on one line.
	Collinear Orientation = 0
	// LeftTurn means counter-clockwise.
	LeftTurn Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case RightTurn:
		return "right-turn"
	case Collinear:
		return "collinear"
	case LeftTurn:
		return "left-turn"
	default:
		return "orientation(?)"
	}
}

// OrientedSide is the position of a point relative to an oriented circle.
type OrientedSide int

const (
	// OnNegativeSide means strictly outside a counter-clockwise circle.
	OnNegativeSide OrientedSide = -1
	// OnBoundary means on the circle.
	OnBoundary OrientedSide = 0
	// OnPositiveSide means strictly inside a counter-clockwise circle.
	OnPositiveSide OrientedSide = 1
)

func (s OrientedSide) String() string {
	switch s {
	case OnNegativeSide:
		return "negative"
	case OnBoundary:
		return "boundary"
	case OnPositiveSide:
		return "positive"
	default:
		return "side(?)"
	}
}

// Statistics is a point-in-time copy of a kernel Stats block.
type Statistics struct {
	OrientationTotalCount          uint64
	OrientationExactCount          uint64
	PreferredDirectionTotalCount   uint64
	PreferredDirectionExactCount   uint64
	SideOfOrientedCircleTotalCount uint64
	SideOfOrientedCircleExactCount uint64
}

// counter tracks calls to one primitive predicate and how many of them fell
// back to exact arithmetic.
type counter struct {
	total atomic.Uint64
	exact atomic.Uint64
}

func (c *counter) clear() {
	c.total.Store(0)
	c.exact.Store(0)
}

// Stats is a live block of kernel counters. The zero value is ready to use.
// A Stats must not be copied after first use.
type Stats struct {
	orientation        counter
	preferredDirection counter
	sideOfCircle       counter
}

// Clear resets all six counters.
func (s *Stats) Clear() {
	s.orientation.clear()
	s.preferredDirection.clear()
	s.sideOfCircle.clear()
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() Statistics {
	return Statistics{
		OrientationTotalCount:          s.orientation.total.Load(),
		OrientationExactCount:          s.orientation.exact.Load(),
		PreferredDirectionTotalCount:   s.preferredDirection.total.Load(),
		PreferredDirectionExactCount:   s.preferredDirection.exact.Load(),
		SideOfOrientedCircleTotalCount: s.sideOfCircle.total.Load(),
		SideOfOrientedCircleExactCount: s.sideOfCircle.exact.Load(),
	}
}

// Options configures a Kernel.
type Options struct {
	// Stats receives the kernel counters; default is the process-wide block.
	Stats *Stats

	// IntervalStats receives the interval filter counters; nil selects
	// interval.DefaultStats[T]() for the kernel's real type.
	IntervalStats *interval.Stats

	// Logger receives a debug entry for every exact fallback.
	Logger *zap.Logger
}

// Option represents a functional option for configuring a Kernel.
type Option func(*Options)

// WithStats binds the kernel to its own counter block.
// Panics with ErrNilStats if s is nil.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		if s == nil {
			panic(ErrNilStats.Error())
		}
		o.Stats = s
	}
}

// WithIntervalStats binds the kernel's interval filter to its own counters.
// Panics with ErrNilStats if s is nil.
func WithIntervalStats(s *interval.Stats) Option {
	return func(o *Options) {
		if s == nil {
			panic(ErrNilStats.Error())
		}
		o.IntervalStats = s
	}
}

// WithLogger routes exact-fallback diagnostics to l.
// Panics with ErrNilLogger if l is nil.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic(ErrNilLogger.Error())
		}
		o.Logger = l
	}
}

// DefaultOptions returns the process-wide counters and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Stats:  &defaultStats,
		Logger: zap.NewNop(),
	}
}
