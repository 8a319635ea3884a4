package memory

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/fantasy-golf/internal/domain/golfer"
	"github.com/riskibarqy/fantasy-golf/internal/domain/member"
	"github.com/riskibarqy/fantasy-golf/internal/domain/season"
	"github.com/riskibarqy/fantasy-golf/internal/domain/team"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tier"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tour"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tourcard"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tournament"
)

//go:embed seed/league.yaml
var defaultSeed []byte

// Dataset is a complete league snapshot used to boot the memory store.
type Dataset struct {
	Seasons     []season.Season
	Tiers       []tier.Tier
	Tours       []tour.Tour
	Tournaments []tournament.Tournament
	Members     []member.Member
	TourCards   []tourcard.TourCard
	Golfers     []golfer.Golfer
	Teams       []team.Team
}

type seedFile struct {
	Seasons []struct {
		ID     string `yaml:"id"`
		Year   int    `yaml:"year"`
		Number int    `yaml:"number"`
	} `yaml:"seasons"`
	Tiers []struct {
		ID       string    `yaml:"id"`
		SeasonID string    `yaml:"season_id"`
		Name     string    `yaml:"name"`
		Payouts  []float64 `yaml:"payouts"`
		Points   []float64 `yaml:"points"`
	} `yaml:"tiers"`
	Tours []struct {
		ID           string  `yaml:"id"`
		SeasonID     string  `yaml:"season_id"`
		Name         string  `yaml:"name"`
		ShortForm    string  `yaml:"short_form"`
		LogoURL      string  `yaml:"logo_url"`
		BuyIn        float64 `yaml:"buy_in"`
		PlayoffSpots []int   `yaml:"playoff_spots"`
	} `yaml:"tours"`
	Tournaments []struct {
		ID           string     `yaml:"id"`
		SeasonID     string     `yaml:"season_id"`
		TierID       string     `yaml:"tier_id"`
		Name         string     `yaml:"name"`
		StartDate    time.Time  `yaml:"start_date"`
		EndDate      time.Time  `yaml:"end_date"`
		CurrentRound int        `yaml:"current_round"`
		LivePlay     bool       `yaml:"live_play"`
		FinalizedAt  *time.Time `yaml:"finalized_at"`
	} `yaml:"tournaments"`
	Members []struct {
		ID        string  `yaml:"id"`
		Email     string  `yaml:"email"`
		FirstName string  `yaml:"first_name"`
		LastName  string  `yaml:"last_name"`
		Role      string  `yaml:"role"`
		Account   float64 `yaml:"account"`
	} `yaml:"members"`
	TourCards []struct {
		ID          string  `yaml:"id"`
		MemberID    string  `yaml:"member_id"`
		TourID      string  `yaml:"tour_id"`
		SeasonID    string  `yaml:"season_id"`
		DisplayName string  `yaml:"display_name"`
		Points      float64 `yaml:"points"`
		Earnings    float64 `yaml:"earnings"`
		Position    string  `yaml:"position"`
		Playoff     int     `yaml:"playoff"`
		Wins        int     `yaml:"wins"`
		TopTen      int     `yaml:"top_ten"`
		Appearances int     `yaml:"appearances"`
		MadeCut     int     `yaml:"made_cut"`
	} `yaml:"tour_cards"`
	Golfers []struct {
		ID           string `yaml:"id"`
		APIID        int    `yaml:"api_id"`
		TournamentID string `yaml:"tournament_id"`
		Name         string `yaml:"name"`
		Country      string `yaml:"country"`
		Group        int    `yaml:"group"`
		Position     string `yaml:"position"`
		Score        *int   `yaml:"score"`
		Today        *int   `yaml:"today"`
		Thru         *int   `yaml:"thru"`
		Round        *int   `yaml:"round"`
		WorldRank    *int   `yaml:"world_rank"`
		RoundScores  []int  `yaml:"round_scores"`
	} `yaml:"golfers"`
	Teams []struct {
		ID           string   `yaml:"id"`
		TournamentID string   `yaml:"tournament_id"`
		TourCardID   string   `yaml:"tour_card_id"`
		GolferIDs    []string `yaml:"golfer_ids"`
		Position     string   `yaml:"position"`
		PastPosition string   `yaml:"past_position"`
		Score        *int     `yaml:"score"`
		Today        *int     `yaml:"today"`
		Thru         *int     `yaml:"thru"`
		Round        *int     `yaml:"round"`
		Points       float64  `yaml:"points"`
		Earnings     float64  `yaml:"earnings"`
	} `yaml:"teams"`
}

// DefaultDataset decodes the embedded league seed.
func DefaultDataset() (Dataset, error) {
	return LoadDataset(bytes.NewReader(defaultSeed))
}

// LoadDatasetFile decodes a seed file; an empty path selects the embedded seed.
func LoadDatasetFile(path string) (Dataset, error) {
	if path == "" {
		return DefaultDataset()
	}
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return LoadDataset(f)
}

func LoadDataset(r io.Reader) (Dataset, error) {
	var raw seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return Dataset{}, fmt.Errorf("decode seed: %w", err)
	}

	var ds Dataset
	for _, s := range raw.Seasons {
		ds.Seasons = append(ds.Seasons, season.Season{ID: s.ID, Year: s.Year, Number: s.Number})
	}
	for _, t := range raw.Tiers {
		ds.Tiers = append(ds.Tiers, tier.Tier{ID: t.ID, SeasonID: t.SeasonID, Name: t.Name, Payouts: t.Payouts, Points: t.Points})
	}
	for _, t := range raw.Tours {
		ds.Tours = append(ds.Tours, tour.Tour{
			ID: t.ID, SeasonID: t.SeasonID, Name: t.Name, ShortForm: t.ShortForm,
			LogoURL: t.LogoURL, BuyIn: t.BuyIn, PlayoffSpots: t.PlayoffSpots,
		})
	}
	for _, t := range raw.Tournaments {
		ds.Tournaments = append(ds.Tournaments, tournament.Tournament{
			ID: t.ID, SeasonID: t.SeasonID, TierID: t.TierID, Name: t.Name,
			StartDate: t.StartDate, EndDate: t.EndDate, CurrentRound: t.CurrentRound,
			LivePlay: t.LivePlay, FinalizedAt: t.FinalizedAt,
		})
	}
	for _, m := range raw.Members {
		role, err := member.ParseRole(m.Role)
		if err != nil {
			return Dataset{}, fmt.Errorf("seed member %s: %w", m.ID, err)
		}
		ds.Members = append(ds.Members, member.Member{
			ID: m.ID, Email: m.Email, FirstName: m.FirstName, LastName: m.LastName,
			Role: role, Account: m.Account,
		})
	}
	for _, c := range raw.TourCards {
		ds.TourCards = append(ds.TourCards, tourcard.TourCard{
			ID: c.ID, MemberID: c.MemberID, TourID: c.TourID, SeasonID: c.SeasonID,
			DisplayName: c.DisplayName, Points: c.Points, Earnings: c.Earnings,
			Position: c.Position, Playoff: c.Playoff, Wins: c.Wins, TopTen: c.TopTen,
			Appearances: c.Appearances, MadeCut: c.MadeCut,
		})
	}
	for _, g := range raw.Golfers {
		ds.Golfers = append(ds.Golfers, golfer.Golfer{
			ID: g.ID, APIID: g.APIID, TournamentID: g.TournamentID, Name: g.Name,
			Country: g.Country, Group: g.Group, Position: g.Position, Score: g.Score,
			Today: g.Today, Thru: g.Thru, Round: g.Round, WorldRank: g.WorldRank,
			RoundScores: g.RoundScores,
		})
	}
	for _, t := range raw.Teams {
		ds.Teams = append(ds.Teams, team.Team{
			ID: t.ID, TournamentID: t.TournamentID, TourCardID: t.TourCardID,
			GolferIDs: t.GolferIDs, Position: t.Position, PastPosition: t.PastPosition,
			Score: t.Score, Today: t.Today, Thru: t.Thru, Round: t.Round,
			Points: t.Points, Earnings: t.Earnings,
		})
	}

	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Validate checks every row and the references between them.
func (ds Dataset) Validate() error {
	seasons := make(map[string]struct{}, len(ds.Seasons))
	for _, s := range ds.Seasons {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("seed season: %w", err)
		}
		seasons[s.ID] = struct{}{}
	}
	tiers := make(map[string]struct{}, len(ds.Tiers))
	for _, t := range ds.Tiers {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("seed tier: %w", err)
		}
		tiers[t.ID] = struct{}{}
	}
	tours := make(map[string]struct{}, len(ds.Tours))
	for _, t := range ds.Tours {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("seed tour: %w", err)
		}
		if _, ok := seasons[t.SeasonID]; !ok {
			return fmt.Errorf("seed tour %s references unknown season %s", t.ID, t.SeasonID)
		}
		tours[t.ID] = struct{}{}
	}
	tournaments := make(map[string]struct{}, len(ds.Tournaments))
	for _, t := range ds.Tournaments {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("seed tournament: %w", err)
		}
		if _, ok := tiers[t.TierID]; !ok {
			return fmt.Errorf("seed tournament %s references unknown tier %s", t.ID, t.TierID)
		}
		tournaments[t.ID] = struct{}{}
	}
	members := make(map[string]struct{}, len(ds.Members))
	for _, m := range ds.Members {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("seed member: %w", err)
		}
		members[m.ID] = struct{}{}
	}
	cards := make(map[string]struct{}, len(ds.TourCards))
	for _, c := range ds.TourCards {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("seed tour card: %w", err)
		}
		if _, ok := members[c.MemberID]; !ok {
			return fmt.Errorf("seed tour card %s references unknown member %s", c.ID, c.MemberID)
		}
		if _, ok := tours[c.TourID]; !ok {
			return fmt.Errorf("seed tour card %s references unknown tour %s", c.ID, c.TourID)
		}
		cards[c.ID] = struct{}{}
	}
	for _, g := range ds.Golfers {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("seed golfer: %w", err)
		}
		if _, ok := tournaments[g.TournamentID]; !ok {
			return fmt.Errorf("seed golfer %s references unknown tournament %s", g.ID, g.TournamentID)
		}
	}
	for _, t := range ds.Teams {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("seed team: %w", err)
		}
		if _, ok := cards[t.TourCardID]; !ok {
			return fmt.Errorf("seed team %s references unknown tour card %s", t.ID, t.TourCardID)
		}
		if _, ok := tournaments[t.TournamentID]; !ok {
			return fmt.Errorf("seed team %s references unknown tournament %s", t.ID, t.TournamentID)
		}
	}
	return nil
}

// Repositories is the full memory store built from one dataset.
type Repositories struct {
	Seasons     *SeasonRepository
	Tiers       *TierRepository
	Tours       *TourRepository
	Tournaments *TournamentRepository
	Members     *MemberRepository
	TourCards   *TourCardRepository
	Golfers     *GolferRepository
	Teams       *TeamRepository
}

func NewRepositories(ds Dataset) Repositories {
	return Repositories{
		Seasons:     NewSeasonRepository(ds.Seasons),
		Tiers:       NewTierRepository(ds.Tiers),
		Tours:       NewTourRepository(ds.Tours),
		Tournaments: NewTournamentRepository(ds.Tournaments),
		Members:     NewMemberRepository(ds.Members),
		TourCards:   NewTourCardRepository(ds.TourCards),
		Golfers:     NewGolferRepository(ds.Golfers),
		Teams:       NewTeamRepository(ds.Teams),
	}
}
