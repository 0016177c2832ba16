package manhattan

import "sort"

// TopSignal is the strongest significant marker within one LD-block-sized
// window of a chromosome.
type TopSignal struct {
	Point

	// Chromosome names the span the signal came from.
	Chromosome string

	// WindowStart is the window's first base-pair position.
	WindowStart int
}

// TopSignals splits each chromosome into fixed-width windows and keeps, per
// window, the single marker with the smallest p-value at or below the
// threshold. Ties go to the marker that appeared first in the input. Windows
// whose winner carries no annotation ID are omitted, since the only use for
// these signals is labeling. Results follow the layout's display order, then
// ascend by window. windowSize must be positive.
func TopSignals(l *Layout, threshold float64, windowSize int) []TopSignal {
	var out []TopSignal

	for _, span := range l.Spans {
		bestByWindow := make(map[int]Point)
		for _, pt := range span.Points {
			if pt.Marker.P > threshold {
				continue
			}

			k := pt.Marker.Position / windowSize
			cur, seen := bestByWindow[k]
			if !seen || pt.Marker.P < cur.Marker.P {
				bestByWindow[k] = pt
			}
		}

		windows := make([]int, 0, len(bestByWindow))
		for k := range bestByWindow {
			windows = append(windows, k)
		}
		sort.Ints(windows)

		for _, k := range windows {
			pt := bestByWindow[k]
			if !pt.Marker.ID.Valid {
				continue
			}

			out = append(out, TopSignal{
				Point:       pt,
				Chromosome:  span.Name,
				WindowStart: k * windowSize,
			})
		}
	}

	return out
}
