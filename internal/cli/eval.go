package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/robustgeo/interval"
	"github.com/katalvlaran/robustgeo/kernel"
	"github.com/katalvlaran/robustgeo/planar"
)

// predicate names a kernel operation reachable from the command line.
type predicate string

const (
	predOrient     predicate = "orientation"
	predInCircle   predicate = "side-of-oriented-circle"
	predPrefDir    predicate = "preferred-direction"
	predConvex     predicate = "strictly-convex-quad"
	predDelaunay   predicate = "locally-delaunay-edge"
	predPDDelaunay predicate = "locally-pd-delaunay-edge"
)

// Result is the payload printed by every predicate command.
type Result struct {
	Predicate string       `json:"predicate"`
	Precision string       `json:"precision"`
	Value     string       `json:"value"`
	Stats     *StatsReport `json:"stats,omitempty"`
}

// StatsReport carries the counters recorded while evaluating one command.
type StatsReport struct {
	Kernel   kernel.Statistics   `json:"kernel"`
	Interval interval.Statistics `json:"interval"`
}

func (r Result) String() string {
	if r.Stats == nil {
		return r.Value
	}
	k, iv := r.Stats.Kernel, r.Stats.Interval
	var b strings.Builder
	fmt.Fprintln(&b, r.Value)
	fmt.Fprintf(&b, "orientation total=%d exact=%d\n", k.OrientationTotalCount, k.OrientationExactCount)
	fmt.Fprintf(&b, "side-of-oriented-circle total=%d exact=%d\n",
		k.SideOfOrientedCircleTotalCount, k.SideOfOrientedCircleExactCount)
	fmt.Fprintf(&b, "preferred-direction total=%d exact=%d\n",
		k.PreferredDirectionTotalCount, k.PreferredDirectionExactCount)
	fmt.Fprintf(&b, "interval arithmetic=%d indeterminate=%d", iv.ArithmeticOpCount, iv.IndeterminateResultCount)
	return b.String()
}

// query is one parsed command invocation.
type query struct {
	pred   predicate
	points []planar.Point[float64]
	dirs   []planar.Vector[float64]
}

// run evaluates q at the requested precision and prints the result.
func run(opts *RootOptions, cmd *cobra.Command, q query) error {
	if err := checkFinite(q.points, q.dirs); err != nil {
		return err
	}
	var (
		st kernel.Stats
		iv interval.Stats
	)
	logger := newLogger(opts.Verbose, cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	kopts := []kernel.Option{
		kernel.WithStats(&st),
		kernel.WithIntervalStats(&iv),
		kernel.WithLogger(logger.With(zap.String("command", cmd.Name()))),
	}

	res := Result{Predicate: string(q.pred)}
	if opts.Single {
		points, dirs := convert(q.points, planar.Single), convert(q.dirs, planar.SingleVector)
		if err := checkFinite(points, dirs); err != nil {
			return errors.WithMessage(err, "--float32")
		}
		res.Precision = "float32"
		res.Value = evaluate(kernel.New[float32](kopts...), q.pred, points, dirs)
	} else {
		res.Precision = "float64"
		res.Value = evaluate(kernel.New[float64](kopts...), q.pred, q.points, q.dirs)
	}
	if opts.Stats {
		res.Stats = &StatsReport{Kernel: st.Snapshot(), Interval: iv.Snapshot()}
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return out.Success(res)
}

func evaluate[T interval.Real](k kernel.Kernel[T], pred predicate, p []planar.Point[T], v []planar.Vector[T]) string {
	switch pred {
	case predOrient:
		return k.Orientation(p[0], p[1], p[2]).String()
	case predInCircle:
		return k.SideOfOrientedCircle(p[0], p[1], p[2], p[3]).String()
	case predPrefDir:
		return strconv.Itoa(k.PreferredDirection(p[0], p[1], p[2], p[3], v[0]))
	case predConvex:
		return strconv.FormatBool(k.IsStrictlyConvexQuad(p[0], p[1], p[2], p[3]))
	case predDelaunay:
		return strconv.FormatBool(k.IsLocallyDelaunayEdge(p[0], p[1], p[2], p[3]))
	case predPDDelaunay:
		return strconv.FormatBool(k.IsLocallyPDDelaunayEdge(p[0], p[1], p[2], p[3], v[0], v[1]))
	}
	panic(fmt.Sprintf("cli: unknown predicate %q", pred))
}

func convert[S, D any](in []S, fn func(S) D) []D {
	out := make([]D, len(in))
	for i, s := range in {
		out[i] = fn(s)
	}
	return out
}

// newLogger returns a debug-level console logger on w, or a no-op logger.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core)
}

// coordArgs accepts exactly n positional coordinates.
func coordArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return NewExitError(ExitCommandError,
				fmt.Sprintf("expected %d coordinates, got %d", n, len(args)))
		}
		return nil
	}
}

// parsePairs reads consecutive (x, y) pairs from args.
func parsePairs(args []string) ([]r2.Point, error) {
	if len(args)%2 != 0 {
		return nil, NewExitError(ExitCommandError, "coordinates must come in x y pairs")
	}
	pairs := make([]r2.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := parseCoord(args, i)
		if err != nil {
			return nil, err
		}
		y, err := parseCoord(args, i+1)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, r2.Point{X: x, Y: y})
	}
	return pairs, nil
}

func parseCoord(args []string, i int) (float64, error) {
	f, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, "invalid coordinate",
			errors.Wrapf(err, "argument %d", i+1))
	}
	if !isFinite(f) {
		return 0, NewExitError(ExitCommandError,
			fmt.Sprintf("invalid coordinate: argument %d: %q is not finite", i+1, args[i]))
	}
	return f, nil
}

// checkFinite rejects NaN and infinite coordinates, including values that
// overflowed while narrowing to float32.
func checkFinite[T interval.Real](points []planar.Point[T], dirs []planar.Vector[T]) error {
	for i, p := range points {
		if !isFinite(float64(p.X())) || !isFinite(float64(p.Y())) {
			return NewExitError(ExitCommandError, fmt.Sprintf("point %d %v is not finite", i+1, p))
		}
	}
	for i, v := range dirs {
		if !isFinite(float64(v.X())) || !isFinite(float64(v.Y())) {
			return NewExitError(ExitCommandError, fmt.Sprintf("direction %d %v is not finite", i+1, v))
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// parsePoints reads args as (x, y) pairs.
func parsePoints(args []string) ([]planar.Point[float64], error) {
	pairs, err := parsePairs(args)
	if err != nil {
		return nil, err
	}
	return convert(pairs, planar.FromR2), nil
}

// parseVector reads a direction given as "x,y".
func parseVector(flag, s string) (planar.Vector[float64], error) {
	if s == "" {
		return planar.Vector[float64]{}, NewExitError(ExitCommandError,
			fmt.Sprintf("--%s is required", flag))
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return planar.Vector[float64]{}, NewExitError(ExitCommandError,
			fmt.Sprintf("--%s: expected x,y, got %q", flag, s))
	}
	pairs, err := parsePairs([]string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])})
	if err != nil {
		return planar.Vector[float64]{}, errors.WithMessagef(err, "--%s", flag)
	}
	return planar.VectorFromR2(pairs[0]), nil
}

// quadArgs reads four vertices either from args or from a WKT geometry.
func quadArgs(wktText string, args []string) ([]planar.Point[float64], error) {
	if wktText == "" {
		if len(args) != 8 {
			return nil, NewExitError(ExitCommandError,
				fmt.Sprintf("expected 8 coordinates or --wkt, got %d coordinates", len(args)))
		}
		return parsePoints(args)
	}
	if len(args) != 0 {
		return nil, NewExitError(ExitCommandError, "--wkt and coordinates are mutually exclusive")
	}
	pts, err := planar.FromWKT(wktText)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid --wkt", err)
	}
	if len(pts) != 4 {
		return nil, NewExitError(ExitCommandError,
			fmt.Sprintf("--wkt: expected 4 vertices, got %d", len(pts)))
	}
	return pts, nil
}
