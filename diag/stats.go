/*
NAME
  stats.go - descriptive statistics over a decoded ADC channel.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package diag

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ChannelStats returns the mean and standard deviation of one channel's
// decoded ADC samples, for diagnostic summaries - nothing in this package
// participates in the physics reconstruction itself.
func ChannelStats(samples []uint16) (mean, stddev float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	x := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = float64(s)
	}
	mean, variance := stat.MeanVariance(x, nil)
	return mean, math.Sqrt(variance)
}
