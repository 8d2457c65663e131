package parts

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

// Head unlock levels
const (
	BattleAnalysisLevel = 9
	MindLinkLevel       = 13
)

// BattleAnalysis raises critical hit chance
type BattleAnalysis struct {
	Enabled       bool
	CriticalBonus float64
}

// MindLink shares sensor data with allies in range
type MindLink struct {
	Enabled bool
	Range   int
}

// HeadCapabilities are the tiered capabilities of a head
type HeadCapabilities struct {
	BattleAnalysis BattleAnalysis
	MindLink       MindLink
}

func headCapabilities(level int) HeadCapabilities {
	var caps HeadCapabilities
	if level >= BattleAnalysisLevel {
		caps.BattleAnalysis = BattleAnalysis{Enabled: true, CriticalBonus: 0.15}
	}
	if level >= MindLinkLevel {
		caps.MindLink = MindLink{Enabled: true, Range: 5}
	}
	return caps
}

var headSynergy = map[robot.PartCategory]float64{
	robot.CategoryArm:   0.12,
	robot.CategoryTorso: 0.05,
}

func headMetrics(s robot.Stats, _ *Part) []Metric {
	return []Metric{
		metric("sensor_range", float64(s.Perception)),
		metric("processing", float64(s.Perception+s.Speed)/2),
		metric("targeting", float64(s.Perception+s.Attack)/2),
	}
}
