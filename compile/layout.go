package compile

// Seat badge positions over the boat silhouettes, per boat class.
// Silhouettes are drawn horizontally with the bow on the left, so badge
// positions run left (Bow) to right (Stroke) with the coxswain behind
// stroke at the stern. Vertical offsets alternate on sweep boats to follow
// the rigger sides.
//
// New boat classes are supported by adding a table here; classes without a
// table fall back to defaultSeatStyle.

// defaultSeatStyle centers a badge over the silhouette when no per-class
// position exists.
const defaultSeatStyle = "position: absolute; left: 50%; top: 50%; transform: translate(-50%, -50%);"

var seatStyles = map[string]map[string]string{
	"8+": {
		"B": "position: absolute; left: 5%; top: 40%;",
		"2": "position: absolute; left: 15%; top: 56%;",
		"3": "position: absolute; left: 25%; top: 40%;",
		"4": "position: absolute; left: 35%; top: 56%;",
		"5": "position: absolute; left: 45%; top: 40%;",
		"6": "position: absolute; left: 55%; top: 56%;",
		"7": "position: absolute; left: 65%; top: 40%;",
		"S": "position: absolute; left: 75%; top: 56%;",
		"C": "position: absolute; left: 89%; top: 48%;",
	},
	"4+": {
		"B": "position: absolute; left: 10%; top: 40%;",
		"2": "position: absolute; left: 30%; top: 56%;",
		"3": "position: absolute; left: 50%; top: 40%;",
		"S": "position: absolute; left: 70%; top: 56%;",
		"C": "position: absolute; left: 88%; top: 48%;",
	},
	"4-": {
		"B": "position: absolute; left: 12%; top: 40%;",
		"2": "position: absolute; left: 36%; top: 56%;",
		"3": "position: absolute; left: 60%; top: 40%;",
		"S": "position: absolute; left: 84%; top: 56%;",
	},
	"4x": {
		"B": "position: absolute; left: 12%; top: 48%;",
		"2": "position: absolute; left: 36%; top: 48%;",
		"3": "position: absolute; left: 60%; top: 48%;",
		"S": "position: absolute; left: 84%; top: 48%;",
	},
	"2+": {
		"B": "position: absolute; left: 18%; top: 40%;",
		"S": "position: absolute; left: 58%; top: 56%;",
		"C": "position: absolute; left: 84%; top: 48%;",
	},
	"2-": {
		"B": "position: absolute; left: 25%; top: 40%;",
		"S": "position: absolute; left: 70%; top: 56%;",
	},
	"2x": {
		"B": "position: absolute; left: 25%; top: 48%;",
		"S": "position: absolute; left: 70%; top: 48%;",
	},
	"1x": {
		"S": "position: absolute; left: 48%; top: 48%;",
	},
}

// lookupSeatStyle returns the position directive for a badge on a boat
// class silhouette, or the centered default if no table row exists.
func lookupSeatStyle(boatClassCode, badge string) string {
	if positions, exists := seatStyles[boatClassCode]; exists {
		if style, exists := positions[badge]; exists {
			return style
		}
	}
	return defaultSeatStyle
}
