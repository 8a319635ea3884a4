package tour

import "fmt"

// Tour is a competitive division inside a season. Every tour card belongs
// to exactly one tour.
type Tour struct {
	ID        string
	SeasonID  string
	Name      string
	ShortForm string
	LogoURL   string
	BuyIn     float64
	// PlayoffSpots holds the gold and silver bracket sizes.
	PlayoffSpots []int
}

func (t Tour) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tour id is required")
	}
	if t.SeasonID == "" {
		return fmt.Errorf("tour season id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tour name is required")
	}
	if t.BuyIn < 0 {
		return fmt.Errorf("tour buy-in must not be negative")
	}
	for _, spots := range t.PlayoffSpots {
		if spots < 0 {
			return fmt.Errorf("tour playoff spots must not be negative")
		}
	}
	return nil
}

// GoldSpots is the number of cards that qualify for the gold bracket.
func (t Tour) GoldSpots() int {
	if len(t.PlayoffSpots) == 0 {
		return 0
	}
	return t.PlayoffSpots[0]
}

// SilverSpots is the number of cards after the gold bracket that qualify
// for silver.
func (t Tour) SilverSpots() int {
	if len(t.PlayoffSpots) < 2 {
		return 0
	}
	return t.PlayoffSpots[1]
}
