package models

// Roster is one crew entry as loaded from a roster file: the boat class,
// the surrounding race/club context, and the crew names in stored order
// (stroke first, bow last). A coxswain may appear either as CoxswainName
// or embedded in CrewNames with a "Cox:" prefix.
type Roster struct {
	Name          string   `json:"name"`
	ClubName      string   `json:"clubName"`
	RaceName      string   `json:"raceName"`
	BoatName      string   `json:"boatName"`
	CoachName     string   `json:"coachName"`
	Category      string   `json:"category"` // e.g. "M1 Senior Men"
	Event         string   `json:"event"`    // competition label, e.g. "Open Club"
	BoatClassCode string   `json:"boatClass"`
	CrewNames     []string `json:"crewNames"`
	CoxswainName  string   `json:"coxswainName,omitempty"`
}

// RosterFile is the on-disk input format: one club preset plus the crews
// to compile against it.
type RosterFile struct {
	Club    Club     `json:"club"`
	Rosters []Roster `json:"rosters"`
}

// Club holds the club presentation preset: colors applied by the theme
// pass and an optional logo reference (managed path or external URL).
type Club struct {
	Name           string `json:"name"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	LogoURL        string `json:"logoUrl,omitempty"`
}

// ColorScheme is a primary/secondary hex color pair ("#rrggbb") applied to
// a template's default palette. Consumed read-only by the theme pass.
type ColorScheme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

// Scheme returns the club's colors as a ColorScheme.
func (c Club) Scheme() ColorScheme {
	return ColorScheme{PrimaryColor: c.PrimaryColor, SecondaryColor: c.SecondaryColor}
}
