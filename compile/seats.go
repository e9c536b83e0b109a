package compile

import (
	"fmt"
	"strconv"
	"strings"

	"crewgram/models"
)

// SeatAssignment is one rower (or coxswain) resolved onto a physical seat:
// the seat label shown on the card, a short badge for the boat diagram, and
// the absolute-position directive placing the badge on the silhouette.
type SeatAssignment struct {
	SeatNumber int    `json:"seatNumber"` // 1..rowerSeats, 0 for the coxswain
	Label      string `json:"label"`      // "Bow", "Seat 3", "Stroke", "Coxswain", "Single Sculler"
	Badge      string `json:"badge"`      // "B", "3", "S", "C"
	Name       string `json:"name"`
	Style      string `json:"style"` // CSS absolute-position directive
}

// coxMarkerPrefix marks an embedded coxswain entry in a crew name list,
// matched case-insensitively (e.g. "Cox: Sam Waters").
const coxMarkerPrefix = "cox:"

// AssignSeats maps a stored crew name list onto boat seats for the given
// class. Names are stored stroke-to-bow while seats are numbered
// bow-to-stroke, so the first remaining name takes the highest seat number
// and the last takes seat 1 (Bow).
//
// The coxswain is taken from coxswainName if set, otherwise from a
// "cox:"-prefixed entry in crewNames, otherwise (for coxed classes with
// one name more than the rowing seats) from the first list entry.
//
// Length mismatches are not rejected: names beyond the seat count are
// dropped and short lists leave low seats unfilled.
//
// The returned slice is in boat diagram order: Bow first, Stroke last
// among the rowers, coxswain (if any) at the end.
func AssignSeats(boatClassCode string, crewNames []string, coxswainName string) ([]SeatAssignment, error) {
	class, err := models.LookupBoatClass(boatClassCode)
	if err != nil {
		return nil, fmt.Errorf("assign seats: %w", err)
	}

	rowers, coxName := extractCoxswain(class, crewNames, coxswainName)

	// First remaining name is stroke seat, counting down to bow.
	bySeat := make(map[int]string, class.RowerSeats)
	for i, name := range rowers {
		seat := class.RowerSeats - i
		if seat < 1 || seat > class.RowerSeats {
			// Extra names past the seat count are silently dropped.
			continue
		}
		bySeat[seat] = name
	}

	assignments := make([]SeatAssignment, 0, class.TotalSeats())
	for seat := 1; seat <= class.RowerSeats; seat++ {
		badge := seatBadge(class, seat)
		assignments = append(assignments, SeatAssignment{
			SeatNumber: seat,
			Label:      seatLabel(class, seat),
			Badge:      badge,
			Name:       bySeat[seat],
			Style:      lookupSeatStyle(class.Code, badge),
		})
	}

	if class.Coxed {
		assignments = append(assignments, SeatAssignment{
			SeatNumber: 0,
			Label:      "Coxswain",
			Badge:      "C",
			Name:       coxName,
			Style:      lookupSeatStyle(class.Code, "C"),
		})
	}

	return assignments, nil
}

// RowingOrder reorders assignments from boat diagram order to the legacy
// rowing-order view: coxswain first (if present), then Stroke down to Bow.
func RowingOrder(assignments []SeatAssignment) []SeatAssignment {
	ordered := make([]SeatAssignment, 0, len(assignments))
	for _, a := range assignments {
		if a.SeatNumber == 0 {
			ordered = append(ordered, a)
		}
	}
	for i := len(assignments) - 1; i >= 0; i-- {
		if assignments[i].SeatNumber != 0 {
			ordered = append(ordered, assignments[i])
		}
	}
	return ordered
}

// extractCoxswain splits the coxswain out of the rower pool. Priority:
// explicit coxswainName, then a "cox:"-prefixed entry, then (for coxed
// classes with an oversized list) the first entry by caller convention.
func extractCoxswain(class models.BoatClass, crewNames []string, coxswainName string) ([]string, string) {
	rowers := make([]string, 0, len(crewNames))
	coxName := strings.TrimSpace(coxswainName)

	for _, name := range crewNames {
		trimmed := strings.TrimSpace(name)
		if coxName == "" && len(trimmed) >= len(coxMarkerPrefix) &&
			strings.EqualFold(trimmed[:len(coxMarkerPrefix)], coxMarkerPrefix) {
			coxName = strings.TrimSpace(trimmed[len(coxMarkerPrefix):])
			continue
		}
		rowers = append(rowers, trimmed)
	}

	if coxName == "" && class.Coxed && len(rowers) > class.RowerSeats {
		coxName = rowers[0]
		rowers = rowers[1:]
	}

	return rowers, coxName
}

// seatLabel returns the display label for a rowing seat.
func seatLabel(class models.BoatClass, seat int) string {
	if class.RowerSeats == 1 {
		return "Single Sculler"
	}
	switch seat {
	case 1:
		return "Bow"
	case class.RowerSeats:
		return "Stroke"
	default:
		return fmt.Sprintf("Seat %d", seat)
	}
}

// seatBadge returns the short badge for a rowing seat.
func seatBadge(class models.BoatClass, seat int) string {
	if class.RowerSeats == 1 {
		return "S"
	}
	switch seat {
	case 1:
		return "B"
	case class.RowerSeats:
		return "S"
	default:
		return strconv.Itoa(seat)
	}
}
