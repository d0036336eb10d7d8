package sim

import (
	"math"
	"time"
)

// PipeSpeed is the horizontal pipe speed per tick for a score.
func PipeSpeed(score int) float64 {
	return math.Min(PipeBaseSpeed+float64(score)*PipeSpeedAcc, PipeSpeedCap)
}

// PipeSpawnInterval shrinks as score grows and never drops below one frame.
func PipeSpawnInterval(score int) time.Duration {
	d := time.Duration(float64(PipeBaseInterval) / (1 + float64(score)*PipeIntervalAcc))
	if d < MinSpawnInterval {
		return MinSpawnInterval
	}
	return d
}

// EnemySpawnInterval shrinks linearly with the points earned since shooter
// mode began, floored at EnemyMinInterval.
func EnemySpawnInterval(score, entryScore int) time.Duration {
	earned := score - entryScore
	if earned < 0 {
		earned = 0
	}
	d := EnemyBaseInterval - time.Duration(earned)*EnemyIntervalStep
	if d < EnemyMinInterval {
		return EnemyMinInterval
	}
	return d
}

// ChaosLevel maps score to the cosmetic intensity tier (1-3).
func ChaosLevel(score int) int {
	switch {
	case score < ChaosTier2Score:
		return DefaultChaosLevel
	case score < ChaosTier3Score:
		return 2
	}
	return MaxChaosLevel
}
