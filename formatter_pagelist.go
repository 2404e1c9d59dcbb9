package vtscreen

// PageListFormatter composes chunked [PageFormatter] calls across
// however many pages a pin range spans, threading [TrailingState]
// between chunks (spec.md §4.5).
type PageListFormatter struct {
	Options Options
}

// Format renders every row in [topLeft, bottomRight]. If pins is
// non-nil it receives one [Pin] per output byte, built by attaching
// each chunk's page node to the page-local points [PageFormatter]
// produced.
func (f *PageListFormatter) Format(list *PageList, topLeft, bottomRight Pin, pins *PinMap) []byte {
	chunks := list.PageChunks(topLeft, bottomRight)
	pf := &PageFormatter{Options: f.Options}
	var out []byte
	var trailing TrailingState
	for i, chunk := range chunks {
		startX, endX := 0, chunk.Page.Cols()
		if i == 0 {
			startX = topLeft.X
		}
		if i == len(chunks)-1 {
			endX = bottomRight.X + 1
		}

		var points []pagePoint
		var pointsPtr *[]pagePoint
		if pins != nil {
			pointsPtr = &points
		}

		chunkOut, chunkTrailing := pf.Format(chunk.Page, chunk.StartY, chunk.EndY, startX, endX, &trailing, pointsPtr)
		out = append(out, chunkOut...)
		trailing = chunkTrailing

		if pins != nil {
			for _, p := range points {
				pins.append(Pin{page: chunk.node, Y: p.Y, X: p.X})
			}
		}
	}
	return out
}
