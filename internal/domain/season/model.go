package season

import "fmt"

// Season is one calendar year of play.
type Season struct {
	ID     string
	Year   int
	Number int
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.Year < 2000 {
		return fmt.Errorf("season year is invalid: %d", s.Year)
	}
	return nil
}
