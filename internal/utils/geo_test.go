package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKnownDistances(t *testing.T) {
	// Kampala to Entebbe, roughly 35 km.
	d := HaversineKm(0.3476, 32.5825, 0.0512, 32.4637)
	assert.InDelta(t, 35, d, 2)

	// Same point is zero.
	assert.InDelta(t, 0, HaversineKm(0.3476, 32.5825, 0.3476, 32.5825), 1e-9)
}

func TestHaversineFormsAgree(t *testing.T) {
	points := [][4]float64{
		{0.3476, 32.5825, 0.0512, 32.4637},
		{-1.2921, 36.8219, 0.3476, 32.5825},
		{51.5074, -0.1278, 48.8566, 2.3522},
		{0, 0, 0, 0},
	}
	for _, p := range points {
		asin := HaversineKm(p[0], p[1], p[2], p[3])
		acos := HaversineAcosKm(p[0], p[1], p[2], p[3])
		assert.InDelta(t, asin, acos, 1e-6)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	a := HaversineKm(0.3476, 32.5825, -1.2921, 36.8219)
	b := HaversineKm(-1.2921, 36.8219, 0.3476, 32.5825)
	assert.InDelta(t, a, b, 1e-9)
}
