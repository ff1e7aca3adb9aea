package pga

// Incidence constructions. Meets intersect, joins span; both are bilinear
// in their arguments and degrade gracefully to ideal results instead of
// failing when the inputs are parallel or coincident.

// MeetPlanes intersects two planes. The line direction follows the right
// hand rule from the first normal to the second. Parallel planes meet in an
// ideal line with a zero direction part.
func MeetPlanes(p, q Plane) Line {
	return Line{
		e01: p.e0*q.e1 - p.e1*q.e0,
		e02: p.e0*q.e2 - p.e2*q.e0,
		e03: p.e0*q.e3 - p.e3*q.e0,
		e23: p.e2*q.e3 - p.e3*q.e2,
		e31: p.e3*q.e1 - p.e1*q.e3,
		e12: p.e1*q.e2 - p.e2*q.e1,
	}
}

// MeetPlaneLine intersects a plane with a line. A line parallel to the
// plane produces an ideal point with zero weight.
func MeetPlaneLine(p Plane, l Line) Point {
	return Point{
		e123: p.e1*l.e23 + p.e2*l.e31 + p.e3*l.e12,
		e032: p.e2*l.e03 - p.e3*l.e02 - p.e0*l.e23,
		e013: p.e3*l.e01 - p.e1*l.e03 - p.e0*l.e31,
		e021: p.e1*l.e02 - p.e2*l.e01 - p.e0*l.e12,
	}
}

// JoinPoints spans the line through p and q, pointing from p toward q when
// both carry unit weight. Coincident points give the zero line.
func JoinPoints(p, q Point) Line {
	return Line{
		e01: p.e013*q.e021 - p.e021*q.e013,
		e02: p.e021*q.e032 - p.e032*q.e021,
		e03: p.e032*q.e013 - p.e013*q.e032,
		e23: p.e123*q.e032 - q.e123*p.e032,
		e31: p.e123*q.e013 - q.e123*p.e013,
		e12: p.e123*q.e021 - q.e123*p.e021,
	}
}

// JoinPointLine spans the plane containing p and l. A point on the line
// gives the zero plane.
func JoinPointLine(p Point, l Line) Plane {
	return Plane{
		e0: p.e032*l.e01 + p.e013*l.e02 + p.e021*l.e03,
		e1: p.e013*l.e12 - p.e021*l.e31 - p.e123*l.e01,
		e2: p.e021*l.e23 - p.e032*l.e12 - p.e123*l.e02,
		e3: p.e032*l.e31 - p.e013*l.e23 - p.e123*l.e03,
	}
}

// PlaneFromPoints spans the plane through three points. The normal follows
// the right hand rule around p1 -> p2 -> p3; collinear points give the zero
// plane.
func PlaneFromPoints(p1, p2, p3 Point) Plane {
	return JoinPointLine(p1, JoinPoints(p3, p2))
}
