package circle

import "testing"

// BenchmarkCoverage compares the strategies on the 190 px reference circle.
func BenchmarkCoverage(b *testing.B) {
	for _, s := range Strategies() {
		b.Run(s.String(), func(b *testing.B) {
			t := s.Tracer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				cov, err := t.Coverage(190, AllOctants)
				if err != nil {
					b.Fatal(err)
				}
				for range cov {
				}
			}
		})
	}
}

// BenchmarkRender measures tracing plus compositing into a pixmap.
func BenchmarkRender(b *testing.B) {
	pm := NewPixmap(400, 400)
	c, _ := NewCircle(200, 200, 190)

	for _, s := range []Strategy{Bresenham, Antialiased} {
		b.Run(s.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Render(pm, c, WithStrategy(s)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSetPixel(b *testing.B) {
	pm := NewPixmap(1000, 1000)
	for _, alpha := range []uint8{255, 128} {
		name := "opaque"
		if alpha < 255 {
			name = "blend"
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for x := range 100 {
					pm.SetPixel(x, 500, Red, alpha)
				}
			}
		})
	}
}
