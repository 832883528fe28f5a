package booking

import (
	"testing"

	"freshfold/models"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		sel  models.ServiceSelection
		want float64
	}{
		{"nothing selected", models.ServiceSelection{}, 0},
		{"laundry only", models.ServiceSelection{Laundry: true}, 25.00},
		{"duvets only", models.ServiceSelection{Duvets: true}, 35.00},
		{"dry cleaning only", models.ServiceSelection{DryCleaning: true}, 45.00},
		{"laundry and duvets", models.ServiceSelection{Laundry: true, Duvets: true}, 60.00},
		{"laundry and dry cleaning", models.ServiceSelection{Laundry: true, DryCleaning: true}, 70.00},
		{"duvets and dry cleaning", models.ServiceSelection{Duvets: true, DryCleaning: true}, 80.00},
		{"everything", models.ServiceSelection{Laundry: true, Duvets: true, DryCleaning: true}, 105.00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.sel))
		})
	}
}

func TestPerLockerShare(t *testing.T) {
	assert.Equal(t, 25.00, PerLockerShare(25.00, 1))
	assert.Equal(t, 12.50, PerLockerShare(25.00, 2))
	assert.InDelta(t, 35.0, PerLockerShare(105.00, 3), 1e-9)

	// A zero or negative count falls back to the undivided total.
	assert.Equal(t, 60.00, PerLockerShare(60.00, 0))

	// Shares always sum back to the total within float tolerance.
	for _, n := range []int{1, 2, 3, 5, 7, 17} {
		share := PerLockerShare(105.00, n)
		assert.InDelta(t, 105.00, share*float64(n), 1e-9, "locker count %d", n)
	}
}

func TestBuildOrderLines(t *testing.T) {
	lines := BuildOrderLines(models.ServiceSelection{Laundry: true, DryCleaning: true})
	if assert.Len(t, lines, 2) {
		assert.Equal(t, "Wash & Fold", lines[0].Name)
		assert.Equal(t, 25.00, lines[0].UnitPrice)
		assert.Equal(t, models.ServiceLaundry, lines[0].Service)
		assert.Equal(t, "Dry Cleaning", lines[1].Name)
		assert.Equal(t, 45.00, lines[1].UnitPrice)
	}

	assert.Empty(t, BuildOrderLines(models.ServiceSelection{}))
}
