package vlist

// sizeEstimator keeps running averages of row size and items per row,
// used to guess the extent of content that has never been measured.
//
// Each average uses the row index as the sample count. After an
// invalidation that kept the averages, re-measurement restarts at row
// index 0, so the first re-observed row resets the mean and the old
// samples are rebuilt rather than double-counted.
type sizeEstimator struct {
	avgSize     Vec2
	avgItems    float32
	haveSamples bool
}

// observe folds one measured row into the averages. rowIndex is the
// row's position in the cache, itemCount the number of items it
// consumed, and rect its measured rectangle.
func (e *sizeEstimator) observe(rowIndex int, itemCount int, rect Rect) {
	n := float32(rowIndex)
	e.avgSize = Vec2{
		X: (n*e.avgSize.X + rect.W) / (n + 1),
		Y: (n*e.avgSize.Y + rect.H) / (n + 1),
	}
	e.avgItems = (n*e.avgItems + float32(itemCount)) / (n + 1)
	e.haveSamples = true
}

// remainingExtent estimates the total height of the given number of
// not-yet-measured items. Zero before any row has been observed.
func (e *sizeEstimator) remainingExtent(remainingItems int) float32 {
	if !e.haveSamples || e.avgItems <= 0 || remainingItems <= 0 {
		return 0
	}
	return float32(remainingItems) / e.avgItems * e.avgSize.Y
}

// reset clears the averages.
func (e *sizeEstimator) reset() {
	*e = sizeEstimator{}
}
