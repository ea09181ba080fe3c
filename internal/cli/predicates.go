package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/robustgeo/planar"
)

// NewOrientCommand creates the orient command.
func NewOrientCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "orient AX AY BX BY CX CY",
		Short: "Turn direction of three points",
		Long: `Print the turn direction of a, b, c: left-turn (counter-clockwise),
right-turn (clockwise) or collinear.`,
		Args: coordArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := parsePoints(args)
			if err != nil {
				return err
			}
			return run(rootOpts, cmd, query{pred: predOrient, points: pts})
		},
	}
}

// NewInCircleCommand creates the incircle command.
func NewInCircleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "incircle AX AY BX BY CX CY DX DY",
		Short: "Side of the circle through a, b, c on which d lies",
		Long: `Print the side of the oriented circle through a, b, c on which d lies.
For a counter-clockwise triangle "positive" means strictly inside.`,
		Args: coordArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := parsePoints(args)
			if err != nil {
				return err
			}
			return run(rootOpts, cmd, query{pred: predInCircle, points: pts})
		},
	}
}

// NewPrefDirCommand creates the prefdir command.
func NewPrefDirCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prefdir AX AY BX BY CX CY DX DY VX VY",
		Short: "Compare the alignment of segments ab and cd with v",
		Long: `Print 1 if segment ab is closer in direction to v than segment cd,
0 if equally close and -1 if farther.`,
		Args: coordArgs(10),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := parsePairs(args)
			if err != nil {
				return err
			}
			q := query{
				pred:   predPrefDir,
				points: convert(pairs[:4], planar.FromR2),
				dirs:   []planar.Vector[float64]{planar.VectorFromR2(pairs[4])},
			}
			return run(rootOpts, cmd, q)
		},
	}
}

// NewConvexCommand creates the convex command.
func NewConvexCommand(rootOpts *RootOptions) *cobra.Command {
	var wktText string
	cmd := &cobra.Command{
		Use:   "convex [AX AY BX BY CX CY DX DY]",
		Short: "Whether a counter-clockwise quadrilateral is strictly convex",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := quadArgs(wktText, args)
			if err != nil {
				return err
			}
			return run(rootOpts, cmd, query{pred: predConvex, points: pts})
		},
	}
	cmd.Flags().StringVar(&wktText, "wkt", "", "quadrilateral as WKT (POLYGON, LINESTRING or MULTIPOINT)")
	return cmd
}

// NewDelaunayCommand creates the delaunay command.
func NewDelaunayCommand(rootOpts *RootOptions) *cobra.Command {
	var wktText string
	cmd := &cobra.Command{
		Use:   "delaunay [AX AY BX BY CX CY DX DY]",
		Short: "Whether diagonal ac of quadrilateral abcd is locally Delaunay",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := quadArgs(wktText, args)
			if err != nil {
				return err
			}
			return run(rootOpts, cmd, query{pred: predDelaunay, points: pts})
		},
	}
	cmd.Flags().StringVar(&wktText, "wkt", "", "quadrilateral as WKT (POLYGON, LINESTRING or MULTIPOINT)")
	return cmd
}

// NewPDDelaunayCommand creates the pd-delaunay command.
func NewPDDelaunayCommand(rootOpts *RootOptions) *cobra.Command {
	var wktText, u, v string
	cmd := &cobra.Command{
		Use:   "pd-delaunay --u X,Y --v X,Y [AX AY BX BY CX CY DX DY]",
		Short: "Locally Delaunay test with a preferred-direction tie-break",
		Long: `Like delaunay, but when a, b, c, d are cocircular the diagonal ac is kept
only if it is closer than bd to the direction --u, or equally close to --u and
closer to --v.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := quadArgs(wktText, args)
			if err != nil {
				return err
			}
			du, err := parseVector("u", u)
			if err != nil {
				return err
			}
			dv, err := parseVector("v", v)
			if err != nil {
				return err
			}
			q := query{pred: predPDDelaunay, points: pts, dirs: []planar.Vector[float64]{du, dv}}
			return run(rootOpts, cmd, q)
		},
	}
	cmd.Flags().StringVar(&wktText, "wkt", "", "quadrilateral as WKT (POLYGON, LINESTRING or MULTIPOINT)")
	cmd.Flags().StringVar(&u, "u", "", "preferred direction as x,y (required)")
	cmd.Flags().StringVar(&v, "v", "", "secondary direction as x,y (required)")
	return cmd
}
