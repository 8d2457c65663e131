package parts

import (
	"math"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

const maxMetric = 2.0

// Metric is one named axis of a part's performance profile, in [0, 2]
type Metric struct {
	Name  string
	Value float64
}

func metric(name string, raw float64) Metric {
	return Metric{Name: name, Value: math.Min(maxMetric, raw/100)}
}

// PerformanceMetrics profiles the part from its effective stats
func (p *Part) PerformanceMetrics() []Metric {
	stats := p.EffectiveStats()

	switch p.category {
	case robot.CategoryArm:
		return armMetrics(stats, p)
	case robot.CategoryLeg:
		return legMetrics(stats, p)
	case robot.CategoryTorso:
		return torsoMetrics(stats, p)
	case robot.CategoryHead:
		return headMetrics(stats, p)
	case robot.CategoryAccessory:
		return accessoryMetrics(stats, p)
	default:
		return nil
	}
}

// PerformanceScore is the mean of the performance metrics
func (p *Part) PerformanceScore() float64 {
	metrics := p.PerformanceMetrics()
	if len(metrics) == 0 {
		return 0
	}

	var total float64
	for _, m := range metrics {
		total += m.Value
	}
	return total / float64(len(metrics))
}
