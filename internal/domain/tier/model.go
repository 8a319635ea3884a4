package tier

import "fmt"

// Tier classifies tournaments by what they pay. Payouts and Points are
// indexed by finishing position starting at 1st.
type Tier struct {
	ID       string
	SeasonID string
	Name     string
	Payouts  []float64
	Points   []float64
}

func (t Tier) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tier id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tier name is required")
	}
	for i := 1; i < len(t.Payouts); i++ {
		if t.Payouts[i] > t.Payouts[i-1] {
			return fmt.Errorf("tier payouts must not increase: position %d", i+1)
		}
	}
	for i := 1; i < len(t.Points); i++ {
		if t.Points[i] > t.Points[i-1] {
			return fmt.Errorf("tier points must not increase: position %d", i+1)
		}
	}
	return nil
}
