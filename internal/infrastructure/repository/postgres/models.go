package postgres

import (
	"time"

	"github.com/lib/pq"
)

type seasonTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	Year      int       `db:"year"`
	Number    int       `db:"number"`
	CreatedAt time.Time `db:"created_at"`
}

type tierTableModel struct {
	ID        int64           `db:"id"`
	PublicID  string          `db:"public_id"`
	SeasonID  string          `db:"season_public_id"`
	Name      string          `db:"name"`
	Payouts   pq.Float64Array `db:"payouts"`
	Points    pq.Float64Array `db:"points"`
	CreatedAt time.Time       `db:"created_at"`
}

type tourTableModel struct {
	ID           int64         `db:"id"`
	PublicID     string        `db:"public_id"`
	SeasonID     string        `db:"season_public_id"`
	Name         string        `db:"name"`
	ShortForm    string        `db:"short_form"`
	LogoURL      string        `db:"logo_url"`
	BuyIn        float64       `db:"buy_in"`
	PlayoffSpots pq.Int64Array `db:"playoff_spots"`
	CreatedAt    time.Time     `db:"created_at"`
}

type tournamentTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	SeasonID     string     `db:"season_public_id"`
	TierID       string     `db:"tier_public_id"`
	Name         string     `db:"name"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      time.Time  `db:"end_date"`
	CurrentRound int        `db:"current_round"`
	LivePlay     bool       `db:"live_play"`
	FinalizedAt  *time.Time `db:"finalized_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type memberTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Email     string     `db:"email"`
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	Role      string     `db:"role"`
	Account   float64    `db:"account"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type memberInsertModel struct {
	PublicID  string  `db:"public_id"`
	Email     string  `db:"email"`
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Role      string  `db:"role"`
	Account   float64 `db:"account"`
}

type tourCardTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	MemberID    string     `db:"member_public_id"`
	TourID      string     `db:"tour_public_id"`
	SeasonID    string     `db:"season_public_id"`
	DisplayName string     `db:"display_name"`
	Points      float64    `db:"points"`
	Earnings    float64    `db:"earnings"`
	Position    string     `db:"position"`
	Playoff     int        `db:"playoff"`
	Wins        int        `db:"wins"`
	TopTen      int        `db:"top_ten"`
	Appearances int        `db:"appearances"`
	MadeCut     int        `db:"made_cut"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type tourCardInsertModel struct {
	PublicID    string `db:"public_id"`
	MemberID    string `db:"member_public_id"`
	TourID      string `db:"tour_public_id"`
	SeasonID    string `db:"season_public_id"`
	DisplayName string `db:"display_name"`
}

type golferTableModel struct {
	ID           int64         `db:"id"`
	PublicID     string        `db:"public_id"`
	APIID        int           `db:"api_id"`
	TournamentID string        `db:"tournament_public_id"`
	Name         string        `db:"name"`
	Country      string        `db:"country"`
	Position     string        `db:"position"`
	PosChange    int           `db:"pos_change"`
	Score        *int64        `db:"score"`
	Today        *int64        `db:"today"`
	Thru         *int64        `db:"thru"`
	Round        *int64        `db:"round"`
	Group        int           `db:"draft_group"`
	WorldRank    *int64        `db:"world_rank"`
	RoundScores  pq.Int64Array `db:"round_scores"`
	UpdatedAt    time.Time     `db:"updated_at"`
}

type teamTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	TourCardID   string         `db:"tour_card_public_id"`
	GolferIDs    pq.StringArray `db:"golfer_ids"`
	Position     string         `db:"position"`
	PastPosition string         `db:"past_position"`
	Score        *int64         `db:"score"`
	Today        *int64         `db:"today"`
	Thru         *int64         `db:"thru"`
	Round        *int64         `db:"round"`
	Points       float64        `db:"points"`
	Earnings     float64        `db:"earnings"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}

type teamUpsertModel struct {
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	TourCardID   string         `db:"tour_card_public_id"`
	GolferIDs    pq.StringArray `db:"golfer_ids"`
	Position     string         `db:"position"`
	PastPosition string         `db:"past_position"`
	Score        *int64         `db:"score"`
	Today        *int64         `db:"today"`
	Thru         *int64         `db:"thru"`
	Round        *int64         `db:"round"`
}
