// Package circle rasterizes circle outlines with several classic strategies.
//
// # Overview
//
// Every strategy answers the same question: which pixels approximate the
// circle x² + y² = r²? They differ in how they get there:
//
//   - [NaiveSampler] solves y = sqrt(r² - x²) for every column. Columns near
//     the left and right edges leave visible gaps; that is the point.
//   - [SqrtOctantSampler] solves the same equation for one octant only and
//     mirrors it, which closes the gaps.
//   - [QuadrantSampler] solves for x in one octant and for y in the next and
//     mirrors both into the four quadrants.
//   - [MidpointOctantTracer] decides between two candidate rows by testing
//     whether their midpoint lies inside the circle.
//   - [BresenhamOctantTracer] is the same decision carried in integers only.
//   - [ClassicBresenhamTracer] keeps the 3-2r recurrence of the textbook
//     listing for comparison; it drifts inside the circle as r grows.
//   - [AntialiasedOctantTracer] splits full opacity between the two rows
//     closest to the exact y.
//
// # Quick Start
//
//	pm := circle.NewPixmap(400, 400)
//	pm.Clear(circle.White)
//
//	c, err := circle.NewCircle(200, 200, 190)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = circle.Render(pm, c,
//	    circle.WithStrategy(circle.Antialiased),
//	    circle.WithColor(circle.Red))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = pm.Save("antialiased.png")
//
// # Sequences
//
// Tracers return an [iter.Seq]. Each Trace call validates the radius first
// and then hands back a fresh sequence; stopping the range loop early is
// always safe.
//
// # Coordinate System
//
// Tracers work relative to the circle's own origin. [Render] adds the
// center. The pixmap follows image conventions: origin at top-left, y grows
// downwards, so octant 7 (0 <= x <= y) is the lower-right wedge below the
// center.
package circle
