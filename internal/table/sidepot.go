package table

import "sort"

// Layer is one side-pot layer: an amount and the seats eligible to win it.
type Layer struct {
	Amount        int
	EligibleSeats []int
}

// BuildSidePots implements the layer-peeling side-pot algorithm: repeatedly
// take the smallest positive total contribution as a layer height h; the
// layer amount is h times the number of seats with a positive remaining
// contribution; eligible winners are non-folded, non-sitting-out seats
// with a positive remaining contribution in that layer; subtract h from
// every positive contribution and repeat. Layers are returned smallest to
// largest.
func BuildSidePots(seats []Seat) []Layer {
	remaining := make([]int, len(seats))
	for i := range seats {
		remaining[i] = seats[i].TotalContrib
	}

	var layers []Layer
	for {
		height := 0
		contributors := 0
		for _, c := range remaining {
			if c > 0 {
				contributors++
				if height == 0 || c < height {
					height = c
				}
			}
		}
		if contributors == 0 {
			break
		}

		var eligible []int
		for i := range seats {
			if remaining[i] > 0 && !seats[i].HasFolded && !seats[i].SittingOut {
				eligible = append(eligible, i)
			}
		}
		sort.Ints(eligible)

		layers = append(layers, Layer{Amount: height * contributors, EligibleSeats: eligible})

		for i := range remaining {
			if remaining[i] > 0 {
				remaining[i] -= height
			}
		}
	}
	return layers
}
