package geo

// CatmullRomSpline evaluates a Catmull-Rom spline through the given control
// points. It generates samplesPerSegment intermediate points per segment.
// Tension controls tightness (0.5 = centripetal, 0.0 = uniform).
// Returns a polyline of sampled points.
func CatmullRomSpline(controlPoints []Point, samplesPerSegment int, tension float64) Polyline {
	n := len(controlPoints)
	if n == 0 {
		return Polyline{}
	}
	if n == 1 {
		return NewPolyline(controlPoints[0])
	}
	if samplesPerSegment < 1 {
		samplesPerSegment = 1
	}
	if n == 2 {
		// Degenerate: linear interpolation.
		pts := make([]Point, samplesPerSegment+1)
		for i := 0; i <= samplesPerSegment; i++ {
			t := float64(i) / float64(samplesPerSegment)
			pts[i] = controlPoints[0].Lerp(controlPoints[1], t)
		}
		return Polyline{Points: pts}
	}

	// Build extended control point array with phantom endpoints reflecting
	// the first and last segments.
	extended := make([]Point, n+2)
	extended[0] = controlPoints[0].Add(controlPoints[0].Sub(controlPoints[1]))
	copy(extended[1:], controlPoints)
	extended[n+1] = controlPoints[n-1].Add(controlPoints[n-1].Sub(controlPoints[n-2]))

	var pts []Point
	for i := 1; i < n; i++ {
		p0 := extended[i-1]
		p1 := extended[i]
		p2 := extended[i+1]
		p3 := extended[i+2]

		for j := 0; j < samplesPerSegment; j++ {
			t := float64(j) / float64(samplesPerSegment)
			pts = append(pts, catmullRomPoint(p0, p1, p2, p3, t, tension))
		}
	}
	pts = append(pts, controlPoints[n-1])

	return Polyline{Points: pts}
}

// catmullRomPoint evaluates a single point on a Catmull-Rom spline segment.
func catmullRomPoint(p0, p1, p2, p3 Point, t, tension float64) Point {
	t2 := t * t
	t3 := t2 * t
	s := tension

	x := 0.5 * ((-s*p0.X+(2-s)*p1.X+(s-2)*p2.X+s*p3.X)*t3 +
		(2*s*p0.X+(s-3)*p1.X+(3-2*s)*p2.X-s*p3.X)*t2 +
		(-s*p0.X+s*p2.X)*t +
		2*p1.X)

	y := 0.5 * ((-s*p0.Y+(2-s)*p1.Y+(s-2)*p2.Y+s*p3.Y)*t3 +
		(2*s*p0.Y+(s-3)*p1.Y+(3-2*s)*p2.Y-s*p3.Y)*t2 +
		(-s*p0.Y+s*p2.Y)*t +
		2*p1.Y)

	return Point{X: x, Y: y}
}
