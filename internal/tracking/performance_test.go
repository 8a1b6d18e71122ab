package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerformancePct(t *testing.T) {
	assert.Equal(t, 0.0, PerformancePct(0, 0))
	assert.Equal(t, 0.0, PerformancePct(10, 0))
	assert.Equal(t, 0.0, PerformancePct(10, -5))
	assert.Equal(t, 150.0, PerformancePct(150, 100))
	assert.Equal(t, 75.0, PerformancePct(75, 100))
	assert.Equal(t, 33.3, PerformancePct(1, 3))
	assert.Equal(t, 66.7, PerformancePct(2, 3))
}

func TestPerformancePct_NotCommutative(t *testing.T) {
	assert.Equal(t, 200.0, PerformancePct(100, 50))
	assert.Equal(t, 50.0, PerformancePct(50, 100))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusMet, Classify(100))
	assert.Equal(t, StatusMet, Classify(250.5))
	assert.Equal(t, StatusNear, Classify(99.9))
	assert.Equal(t, StatusNear, Classify(75))
	assert.Equal(t, StatusBehind, Classify(74.9))
	assert.Equal(t, StatusBehind, Classify(0))
}
