package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/robot-forge/internal/pkg/clock"
	mockclock "github.com/KirkDiggler/robot-forge/internal/pkg/clock/mock"
)

func TestSince(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mockclock.NewMockClock(ctrl)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.EXPECT().Now().Return(start.Add(1500 * time.Millisecond))

	assert.Equal(t, 1500*time.Millisecond, clock.Since(c, start))
}

func TestRealClockMovesForward(t *testing.T) {
	c := clock.New()
	before := c.Now()
	assert.GreaterOrEqual(t, clock.Since(c, before), time.Duration(0))
}
