package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationStatus(t *testing.T) {
	tests := []struct {
		status string
		label  string
		color  Color
	}{
		{"OPEN", "Abierto", ColorSuccess},
		{"CLOSED_TEMPORARILY", "Cerrado temporalmente", ColorWarning},
		{"CLOSED_PERMANENTLY", "Cerrado permanentemente", ColorError},
		{"", "Desconocido", ColorDefault},
		{"OPEN_FOR_BUSINESS_UNSPECIFIED", "OPEN_FOR_BUSINESS_UNSPECIFIED", ColorDefault},
	}

	for _, tt := range tests {
		label, color := LocationStatus(tt.status)
		assert.Equal(t, tt.label, label, tt.status)
		assert.Equal(t, tt.color, color, tt.status)
	}
}

func TestPostStateLabel(t *testing.T) {
	assert.Equal(t, "Activa", PostStateLabel("LIVE"))
	assert.Equal(t, "Activa", PostStateLabel(""))
	assert.Equal(t, "Borrador", PostStateLabel("PROCESSING"))
}

func TestDaysColor(t *testing.T) {
	assert.Equal(t, ColorSuccess, DaysColor(0))
	assert.Equal(t, ColorSuccess, DaysColor(13))
	assert.Equal(t, ColorWarning, DaysColor(14))
	assert.Equal(t, ColorWarning, DaysColor(29))
	assert.Equal(t, ColorError, DaysColor(30))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "☆☆☆☆☆", Stars(-1))
	assert.Equal(t, "★★★★★", Stars(9))
}

func TestBadgeContainsLabel(t *testing.T) {
	assert.Contains(t, Badge("Activa", ColorSuccess), "[Activa]")
}
