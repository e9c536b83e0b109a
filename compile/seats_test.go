package compile_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewgram/compile"
	"crewgram/models"
)

// crewOfSize builds a stroke-to-bow name list of n rowers.
func crewOfSize(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Rower %d", i+1)
	}
	return names
}

func TestAssignSeats_AllClasses(t *testing.T) {
	for _, code := range models.BoatClassCodes() {
		t.Run(code, func(t *testing.T) {
			class, err := models.LookupBoatClass(code)
			require.NoError(t, err)

			names := crewOfSize(class.RowerSeats)
			cox := ""
			if class.Coxed {
				cox = "Coxswain Name"
			}

			assignments, err := compile.AssignSeats(code, names, cox)
			require.NoError(t, err)
			require.Len(t, assignments, class.TotalSeats())

			seen := map[int]bool{}
			bows, strokes, coxes := 0, 0, 0
			for _, a := range assignments {
				switch a.Label {
				case "Bow":
					bows++
				case "Stroke":
					strokes++
				case "Coxswain":
					coxes++
				}
				if a.SeatNumber > 0 {
					assert.False(t, seen[a.SeatNumber], "duplicate seat %d", a.SeatNumber)
					seen[a.SeatNumber] = true
					assert.GreaterOrEqual(t, a.SeatNumber, 1)
					assert.LessOrEqual(t, a.SeatNumber, class.RowerSeats)
				}
			}

			// Seat numbers are a contiguous permutation of 1..rowerSeats.
			assert.Len(t, seen, class.RowerSeats)

			if class.RowerSeats == 1 {
				assert.Equal(t, 0, bows)
				assert.Equal(t, 0, strokes)
				assert.Equal(t, "Single Sculler", assignments[0].Label)
				assert.Equal(t, "S", assignments[0].Badge)
			} else {
				assert.Equal(t, 1, bows)
				assert.Equal(t, 1, strokes)
			}

			if class.Coxed {
				assert.Equal(t, 1, coxes)
			} else {
				assert.Equal(t, 0, coxes)
			}
		})
	}
}

func TestAssignSeats_EightWithEmbeddedCox(t *testing.T) {
	names := []string{"Cox: A", "B", "C", "D", "E", "F", "G", "H", "I"}

	assignments, err := compile.AssignSeats("8+", names, "")
	require.NoError(t, err)
	require.Len(t, assignments, 9)

	// Boat diagram order: Bow first, Stroke last rower, coxswain at the end.
	assert.Equal(t, "Bow", assignments[0].Label)
	assert.Equal(t, "I", assignments[0].Name)
	assert.Equal(t, "B", assignments[0].Badge)

	assert.Equal(t, "Stroke", assignments[7].Label)
	assert.Equal(t, "B", assignments[7].Name)
	assert.Equal(t, "S", assignments[7].Badge)

	assert.Equal(t, "Coxswain", assignments[8].Label)
	assert.Equal(t, "A", assignments[8].Name)
	assert.Equal(t, "C", assignments[8].Badge)

	// Middle names map to descending seat numbers: C is seat 7, H is seat 2.
	assert.Equal(t, "H", assignments[1].Name)
	assert.Equal(t, "Seat 2", assignments[1].Label)
	assert.Equal(t, "C", assignments[6].Name)
	assert.Equal(t, "Seat 7", assignments[6].Label)
}

func TestAssignSeats_CoxswainNameParameter(t *testing.T) {
	assignments, err := compile.AssignSeats("4+", crewOfSize(4), "Sam Waters")
	require.NoError(t, err)
	require.Len(t, assignments, 5)
	assert.Equal(t, "Sam Waters", assignments[4].Name)
	assert.Equal(t, "Coxswain", assignments[4].Label)
}

func TestAssignSeats_OversizedCoxedListUsesFirstEntry(t *testing.T) {
	// Five names in a coxed four with no marker: first entry is the cox.
	assignments, err := compile.AssignSeats("4+", []string{"A", "B", "C", "D", "E"}, "")
	require.NoError(t, err)
	require.Len(t, assignments, 5)
	assert.Equal(t, "A", assignments[4].Name)
	assert.Equal(t, "B", assignments[3].Name) // stroke
	assert.Equal(t, "E", assignments[0].Name) // bow
}

func TestAssignSeats_SingleSculler(t *testing.T) {
	assignments, err := compile.AssignSeats("1x", []string{"Jane Doe"}, "")
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "Single Sculler", assignments[0].Label)
	assert.Equal(t, "S", assignments[0].Badge)
	assert.Equal(t, "Jane Doe", assignments[0].Name)
}

func TestAssignSeats_UnknownClass(t *testing.T) {
	_, err := compile.AssignSeats("9x", []string{"A"}, "")
	assert.ErrorIs(t, err, models.ErrUnknownBoatClass)
}

func TestAssignSeats_ExtraNamesDropped(t *testing.T) {
	// Six names for a quad: the two trailing names have no seat and are dropped.
	assignments, err := compile.AssignSeats("4x", []string{"A", "B", "C", "D", "E", "F"}, "")
	require.NoError(t, err)
	require.Len(t, assignments, 4)
	assert.Equal(t, "D", assignments[0].Name) // bow is seat 1
	assert.Equal(t, "A", assignments[3].Name) // stroke
	for _, a := range assignments {
		assert.NotContains(t, []string{"E", "F"}, a.Name)
	}
}

func TestAssignSeats_ShortListLeavesSeatsUnfilled(t *testing.T) {
	assignments, err := compile.AssignSeats("4x", []string{"A", "B"}, "")
	require.NoError(t, err)
	require.Len(t, assignments, 4)
	assert.Equal(t, "", assignments[0].Name) // bow unfilled
	assert.Equal(t, "", assignments[1].Name)
	assert.Equal(t, "B", assignments[2].Name)
	assert.Equal(t, "A", assignments[3].Name)
}

func TestRowingOrder(t *testing.T) {
	assignments, err := compile.AssignSeats("8+", []string{"Cox: A", "B", "C", "D", "E", "F", "G", "H", "I"}, "")
	require.NoError(t, err)

	ordered := compile.RowingOrder(assignments)
	require.Len(t, ordered, 9)

	assert.Equal(t, "Coxswain", ordered[0].Label)
	assert.Equal(t, "A", ordered[0].Name)
	assert.Equal(t, "Stroke", ordered[1].Label)
	assert.Equal(t, "B", ordered[1].Name)
	assert.Equal(t, "Bow", ordered[8].Label)
	assert.Equal(t, "I", ordered[8].Name)
}

func TestAssignSeats_PositionStyles(t *testing.T) {
	assignments, err := compile.AssignSeats("8+", crewOfSize(8), "Cox")
	require.NoError(t, err)
	for _, a := range assignments {
		assert.Contains(t, a.Style, "position: absolute")
	}
}
