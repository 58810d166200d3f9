package enums

import "fmt"

// Sport represents supported sports types
type Sport string

const (
	Soccer     Sport = "soccer"
	Baseball   Sport = "baseball"
	Basketball Sport = "basketball"
	Volleyball Sport = "volleyball"
)

// SportInfo contains additional information about a sport
type SportInfo struct {
	Name  string
	Alias string
}

// GetSportInfo returns sport information
func (s Sport) GetSportInfo() SportInfo {
	switch s {
	case Soccer:
		return SportInfo{
			Name:  "Soccer",
			Alias: "soccer",
		}
	case Baseball:
		return SportInfo{
			Name:  "Baseball",
			Alias: "baseball",
		}
	case Basketball:
		return SportInfo{
			Name:  "Basketball",
			Alias: "basketball",
		}
	case Volleyball:
		return SportInfo{
			Name:  "Volleyball",
			Alias: "volleyball",
		}
	default:
		return SportInfo{
			Name:  string(s),
			Alias: string(s),
		}
	}
}

// ParseSport validates a sport alias
func ParseSport(s string) (Sport, error) {
	switch Sport(s) {
	case Soccer, Baseball, Basketball, Volleyball:
		return Sport(s), nil
	default:
		return "", fmt.Errorf("unknown sport: %s", s)
	}
}
