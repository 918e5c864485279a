package raster

// drawLine plots the Bresenham approximation of the segment from (x0, y0)
// to (x1, y1) into pb, one pixel per step along the dominant axis. Steep
// segments are transposed so the loop always walks x, and endpoints are
// swapped so it walks left to right; both transforms are undone at plot
// time. Pixels falling outside the buffer are dropped.
func drawLine(pb *PixelBuffer, x0, y0, x1, y1 int, c Color) {
	steep := false
	if abs(y1-y0) > abs(x1-x0) {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		steep = true
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := y1 - y0

	// Integer reformulation of the fractional slope error: accumulate
	// 2|dy| per x step and step y once the total exceeds dx.
	derr2 := abs(dy) * 2
	err2 := 0
	ystep := 1
	if dy < 0 {
		ystep = -1
	}

	y := y0
	for x := x0; x <= x1; x++ {
		px, py := x, y
		if steep {
			px, py = y, x
		}
		if px >= 0 && px < pb.Width && py >= 0 && py < pb.Height {
			pb.Set(px, py, c)
		}
		err2 += derr2
		if err2 > dx {
			y += ystep
			err2 -= dx * 2
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
