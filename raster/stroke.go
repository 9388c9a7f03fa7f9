package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// joinSides is the number of sides of the polygon approximating round joins.
const joinSides = 8

// strokeOutline expands p into polygons whose union covers the stroke. Each
// segment becomes a quad and each vertex a small round join. All polygons
// share one orientation so overlaps add up instead of cancelling.
func strokeOutline(p *path.Data, width, flatness float64) [][]vec.Vec2 {
	hw := width / 2
	var polys [][]vec.Vec2
	emit := func(a, b vec.Vec2) {
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			return
		}
		n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(hw / l)
		polys = append(polys, []vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
	}
	joins := make([]vec.Vec2, 0, len(p.Coords))

	var cur, start vec.Vec2
	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[i]
			start = cur
			joins = append(joins, cur)
			i++
		case path.CmdLineTo:
			emit(cur, p.Coords[i])
			cur = p.Coords[i]
			joins = append(joins, cur)
			i++
		case path.CmdQuadTo:
			flattenQuadratic(cur, p.Coords[i], p.Coords[i+1], flatness, emit)
			cur = p.Coords[i+1]
			joins = append(joins, cur)
			i += 2
		case path.CmdCubeTo:
			flattenCubic(cur, p.Coords[i], p.Coords[i+1], p.Coords[i+2], flatness, func(a, b vec.Vec2) {
				emit(a, b)
				joins = append(joins, b)
			})
			cur = p.Coords[i+2]
			i += 3
		case path.CmdClose:
			if cur != start {
				emit(cur, start)
			}
			cur = start
		}
	}

	for _, j := range joins {
		polys = append(polys, joinPolygon(j, hw))
	}
	return polys
}

// joinPolygon approximates a disc of radius r around c. Vertices run with
// decreasing angle, the same orientation as the segment quads.
func joinPolygon(c vec.Vec2, r float64) []vec.Vec2 {
	poly := make([]vec.Vec2, joinSides)
	for k := range poly {
		a := -2 * math.Pi * float64(k) / joinSides
		poly[k] = vec.Vec2{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return poly
}

// flattenQuadratic splits a quadratic Bézier into line segments no further
// than flatness from the curve.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(a, b vec.Vec2)) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if l := e.Length(); l > flatness {
		n = int(math.Ceil(math.Sqrt(l / flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic splits a cubic Bézier into line segments using Wang's formula
// for the segment count.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(a, b vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}
