package components

import (
	"math"

	"github.com/druarnfield/arcspin/internal/motion"
)

// samplesPerAxis is the supersampling factor used per cell.
const samplesPerAxis = 2

// Raster is a grid of stroke coverage values in [0,1], row-major.
type Raster struct {
	Cols, Rows int
	Cells      []float64
}

// At returns the coverage of the cell at col, row.
func (r Raster) At(col, row int) float64 {
	return r.Cells[row*r.Cols+col]
}

// Rasterize maps the square canvas described by g onto a cols×rows grid and
// computes how much of each cell the arc stroke covers. Angles follow the
// drawing convention: degrees clockwise from 3 o'clock with y pointing down.
// The extra rotation turns the whole arc about the canvas centre.
func Rasterize(g motion.Geometry, f motion.Frame, cols, rows int) Raster {
	r := Raster{Cols: cols, Rows: rows, Cells: make([]float64, cols*rows)}
	if cols <= 0 || rows <= 0 || g.CanvasSize <= 0 {
		return r
	}

	a := arcShape{
		center: g.Center,
		radius: g.Radius(),
		half:   g.StrokeWidth / 2,
		start:  normDeg(f.StartAngle + f.ExtraRotateAngle),
		sweep:  f.SweepAngle,
	}
	a.head = a.pointAt(a.start)
	a.tail = a.pointAt(a.start + a.sweep)

	cw := g.CanvasSize / float64(cols)
	ch := g.CanvasSize / float64(rows)
	weight := 1.0 / (samplesPerAxis * samplesPerAxis)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			var cov float64
			for sy := 0; sy < samplesPerAxis; sy++ {
				for sx := 0; sx < samplesPerAxis; sx++ {
					x := (float64(col) + (float64(sx)+0.5)/samplesPerAxis) * cw
					y := (float64(row) + (float64(sy)+0.5)/samplesPerAxis) * ch
					if a.contains(x, y) {
						cov += weight
					}
				}
			}
			r.Cells[row*cols+col] = cov
		}
	}
	return r
}

type arcShape struct {
	center     motion.Point
	radius     float64
	half       float64
	start      float64
	sweep      float64
	head, tail motion.Point
}

func (a arcShape) pointAt(deg float64) motion.Point {
	rad := deg * math.Pi / 180
	return motion.Point{
		X: a.center.X + a.radius*math.Cos(rad),
		Y: a.center.Y + a.radius*math.Sin(rad),
	}
}

func (a arcShape) contains(x, y float64) bool {
	dx, dy := x-a.center.X, y-a.center.Y
	if math.Abs(math.Hypot(dx, dy)-a.radius) <= a.half {
		if a.sweep >= 360 {
			return true
		}
		theta := math.Atan2(dy, dx) * 180 / math.Pi
		if normDeg(theta-a.start) <= a.sweep {
			return true
		}
	}
	// round caps
	return math.Hypot(x-a.head.X, y-a.head.Y) <= a.half ||
		math.Hypot(x-a.tail.X, y-a.tail.Y) <= a.half
}

// normDeg maps any angle into [0, 360).
func normDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
