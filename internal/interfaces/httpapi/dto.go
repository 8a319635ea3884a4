package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/fantasy-golf/internal/domain/golfer"
	"github.com/riskibarqy/fantasy-golf/internal/domain/member"
	"github.com/riskibarqy/fantasy-golf/internal/domain/season"
	"github.com/riskibarqy/fantasy-golf/internal/domain/standings"
	"github.com/riskibarqy/fantasy-golf/internal/domain/team"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tour"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tourcard"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tournament"
	"github.com/riskibarqy/fantasy-golf/internal/usecase"
)

type updateProfileRequest struct {
	FirstName string `json:"firstName" validate:"required,max=60"`
	LastName  string `json:"lastName" validate:"required,max=60"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
}

type saveTeamRequest struct {
	GolferIDs []string `json:"golferIds" validate:"required,min=1,max=20,dive,required"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin moderator regular"`
}

type adjustAccountRequest struct {
	Amount float64 `json:"amount" validate:"required"`
}

type seasonDTO struct {
	ID     string `json:"id"`
	Year   int    `json:"year"`
	Number int    `json:"number"`
}

type tourDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ShortForm    string  `json:"shortForm"`
	LogoURL      string  `json:"logoUrl,omitempty"`
	BuyIn        float64 `json:"buyIn"`
	PlayoffSpots []int   `json:"playoffSpots"`
}

type standingRowDTO struct {
	TourCardID      string  `json:"tourCardId"`
	MemberID        string  `json:"memberId"`
	DisplayName     string  `json:"displayName"`
	Position        string  `json:"position"`
	Rank            int     `json:"rank"`
	Points          float64 `json:"points"`
	PointsDisplay   string  `json:"pointsDisplay"`
	Earnings        float64 `json:"earnings"`
	EarningsDisplay string  `json:"earningsDisplay"`
	Change          int     `json:"change"`
	ChangeOverall   int     `json:"changeOverall"`
	Band            string  `json:"band"`
	Wins            int     `json:"wins"`
	TopTen          int     `json:"topTen"`
	Appearances     int     `json:"appearances"`
	MadeCut         int     `json:"madeCut"`
}

type tourStandingsDTO struct {
	Tour        tourDTO          `json:"tour"`
	GoldCount   int              `json:"goldCount"`
	SilverCount int              `json:"silverCount"`
	Rows        []standingRowDTO `json:"rows"`
}

type seasonStandingsDTO struct {
	Season           seasonDTO          `json:"season"`
	LastTournamentID string             `json:"lastTournamentId,omitempty"`
	Tours            []tourStandingsDTO `json:"tours"`
}

type playoffRowDTO struct {
	TourCardID      string   `json:"tourCardId"`
	TourID          string   `json:"tourId"`
	DisplayName     string   `json:"displayName"`
	Position        string   `json:"position"`
	Points          float64  `json:"points"`
	Level           int      `json:"level"`
	StartingStrokes *float64 `json:"startingStrokes,omitempty"`
}

type playoffStandingsDTO struct {
	Season seasonDTO       `json:"season"`
	Gold   []playoffRowDTO `json:"gold"`
	Silver []playoffRowDTO `json:"silver"`
	Bumped []playoffRowDTO `json:"bumped"`
}

type tournamentDTO struct {
	ID           string  `json:"id"`
	SeasonID     string  `json:"seasonId"`
	TierID       string  `json:"tierId"`
	Name         string  `json:"name"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	CurrentRound int     `json:"currentRound"`
	LivePlay     bool    `json:"livePlay"`
	FinalizedAt  *string `json:"finalizedAt,omitempty"`
}

type leaderboardRowDTO struct {
	TeamID          string   `json:"teamId"`
	TourCardID      string   `json:"tourCardId"`
	DisplayName     string   `json:"displayName"`
	Position        string   `json:"position"`
	Status          string   `json:"status"`
	Change          int      `json:"change"`
	Score           *int     `json:"score"`
	Today           *int     `json:"today"`
	Thru            *int     `json:"thru"`
	Round           *int     `json:"round"`
	Earnings        *float64 `json:"earnings,omitempty"`
	Points          *float64 `json:"points,omitempty"`
	EarningsDisplay string   `json:"earningsDisplay"`
	PointsDisplay   string   `json:"pointsDisplay"`
	GolferIDs       []string `json:"golferIds"`
}

type tourLeaderboardDTO struct {
	Tour tourDTO             `json:"tour"`
	Rows []leaderboardRowDTO `json:"rows"`
}

type golferRowDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	Group     int    `json:"group"`
	Position  string `json:"position"`
	Status    string `json:"status"`
	Score     *int   `json:"score"`
	Today     *int   `json:"today"`
	Thru      *int   `json:"thru"`
	Round     *int   `json:"round"`
	WorldRank *int   `json:"worldRank,omitempty"`
	// Usage is the share of teams that picked the golfer.
	Usage     string `json:"usage"`
}

type leaderboardDTO struct {
	Tournament tournamentDTO        `json:"tournament"`
	TierName   string               `json:"tierName"`
	Tours      []tourLeaderboardDTO `json:"tours"`
	Golfers    []golferRowDTO       `json:"golfers"`
}

type memberDTO struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	DisplayName    string  `json:"displayName"`
	Role           string  `json:"role"`
	Account        float64 `json:"account"`
	AccountDisplay string  `json:"accountDisplay"`
}

type tourCardDTO struct {
	ID          string  `json:"id"`
	MemberID    string  `json:"memberId"`
	TourID      string  `json:"tourId"`
	SeasonID    string  `json:"seasonId"`
	DisplayName string  `json:"displayName"`
	Points      float64 `json:"points"`
	Earnings    float64 `json:"earnings"`
	Position    string  `json:"position"`
	Playoff     int     `json:"playoff"`
}

type joinTourDTO struct {
	TourCard tourCardDTO `json:"tourCard"`
	Balance  float64     `json:"balance"`
}

type teamDTO struct {
	ID           string   `json:"id"`
	TournamentID string   `json:"tournamentId"`
	TourCardID   string   `json:"tourCardId"`
	GolferIDs    []string `json:"golferIds"`
	UpdatedAt    string   `json:"updatedAt"`
}

type accountDTO struct {
	MemberID string  `json:"memberId"`
	Balance  float64 `json:"balance"`
}

type finalizeDTO struct {
	TournamentID string `json:"tournamentId"`
	Teams        int    `json:"teams"`
	Cards        int    `json:"cards"`
	FinalizedAt  string `json:"finalizedAt"`
}

func seasonToDTO(s season.Season) seasonDTO {
	return seasonDTO{ID: s.ID, Year: s.Year, Number: s.Number}
}

func tourToDTO(t tour.Tour) tourDTO {
	spots := append([]int{}, t.PlayoffSpots...)
	return tourDTO{
		ID:           t.ID,
		Name:         t.Name,
		ShortForm:    t.ShortForm,
		LogoURL:      t.LogoURL,
		BuyIn:        t.BuyIn,
		PlayoffSpots: spots,
	}
}

func seasonStandingsToDTO(ctx context.Context, in usecase.SeasonStandings) seasonStandingsDTO {
	_, span := startSpan(ctx, "httpapi.seasonStandingsToDTO")
	defer span.End()

	out := seasonStandingsDTO{
		Season: seasonToDTO(in.Season),
		Tours:  make([]tourStandingsDTO, 0, len(in.Tours)),
	}
	if in.LastTournament != nil {
		out.LastTournamentID = in.LastTournament.ID
	}
	for _, ts := range in.Tours {
		rows := make([]standingRowDTO, 0, len(ts.Board.Rows))
		for _, row := range ts.Board.Rows {
			card := in.Cards[row.ID]
			rows = append(rows, standingRowDTO{
				TourCardID:      row.ID,
				MemberID:        card.MemberID,
				DisplayName:     card.DisplayName,
				Position:        row.Rank.Display,
				Rank:            row.Rank.Position,
				Points:          row.Points,
				PointsDisplay:   standings.FormatPoints(row.Points),
				Earnings:        card.Earnings,
				EarningsDisplay: standings.FormatMoney(card.Earnings),
				Change:          row.Change.Change,
				ChangeOverall:   row.Change.ChangeOverall,
				Band:            string(row.Band),
				Wins:            card.Wins,
				TopTen:          card.TopTen,
				Appearances:     card.Appearances,
				MadeCut:         card.MadeCut,
			})
		}
		out.Tours = append(out.Tours, tourStandingsDTO{
			Tour:        tourToDTO(ts.Tour),
			GoldCount:   len(ts.Board.Bands.Gold),
			SilverCount: len(ts.Board.Bands.Silver),
			Rows:        rows,
		})
	}
	return out
}

func playoffStandingsToDTO(ctx context.Context, in usecase.PlayoffStandings) playoffStandingsDTO {
	_, span := startSpan(ctx, "httpapi.playoffStandingsToDTO")
	defer span.End()

	convert := func(rows []standings.PlayoffRow) []playoffRowDTO {
		out := make([]playoffRowDTO, 0, len(rows))
		for _, row := range rows {
			item := playoffRowDTO{
				TourCardID:  row.ID,
				TourID:      row.GroupID,
				DisplayName: in.Cards[row.ID].DisplayName,
				Position:    row.Rank.Display,
				Points:      row.Points,
				Level:       row.Level,
			}
			if row.HasStrokes {
				strokes := row.StartingStrokes
				item.StartingStrokes = &strokes
			}
			out = append(out, item)
		}
		return out
	}

	return playoffStandingsDTO{
		Season: seasonToDTO(in.Season),
		Gold:   convert(in.Brackets.Gold),
		Silver: convert(in.Brackets.Silver),
		Bumped: convert(in.Brackets.Bumped),
	}
}

func tournamentToDTO(t tournament.Tournament) tournamentDTO {
	out := tournamentDTO{
		ID:           t.ID,
		SeasonID:     t.SeasonID,
		TierID:       t.TierID,
		Name:         t.Name,
		StartDate:    t.StartDate.UTC().Format(time.RFC3339),
		EndDate:      t.EndDate.UTC().Format(time.RFC3339),
		CurrentRound: t.CurrentRound,
		LivePlay:     t.LivePlay,
	}
	if t.FinalizedAt != nil {
		at := t.FinalizedAt.UTC().Format(time.RFC3339)
		out.FinalizedAt = &at
	}
	return out
}

func leaderboardToDTO(ctx context.Context, in usecase.Leaderboard) leaderboardDTO {
	_, span := startSpan(ctx, "httpapi.leaderboardToDTO")
	defer span.End()

	out := leaderboardDTO{
		Tournament: tournamentToDTO(in.Tournament),
		TierName:   in.Tier.Name,
		Tours:      make([]tourLeaderboardDTO, 0, len(in.Tours)),
		Golfers:    make([]golferRowDTO, 0, len(in.Golfers)),
	}
	for _, tl := range in.Tours {
		rows := make([]leaderboardRowDTO, 0, len(tl.Rows))
		for _, row := range tl.Rows {
			tm := in.Teams[row.ID]
			item := leaderboardRowDTO{
				TeamID:      row.ID,
				TourCardID:  tm.TourCardID,
				DisplayName: in.Cards[tm.TourCardID].DisplayName,
				Position:    row.Rank.Display,
				Status:      row.Status().String(),
				Change:      row.Change,
				Score:       row.Score,
				Today:       row.Today,
				Thru:        row.Thru,
				Round:       row.Round,
				GolferIDs:   append([]string{}, tm.GolferIDs...),
			}
			if row.HasEarnings {
				earnings := row.Earnings
				item.Earnings = &earnings
			}
			if row.HasPoints {
				points := row.Points
				item.Points = &points
			}
			item.EarningsDisplay = standings.FormatLookup(row.Earnings, row.HasEarnings, standings.FormatMoney)
			item.PointsDisplay = standings.FormatLookup(row.Points, row.HasPoints, standings.FormatPoints)
			rows = append(rows, item)
		}
		out.Tours = append(out.Tours, tourLeaderboardDTO{Tour: tourToDTO(tl.Tour), Rows: rows})
	}
	picks := make(map[string]int, len(in.Field))
	for _, tm := range in.Teams {
		for _, id := range tm.GolferIDs {
			picks[id]++
		}
	}
	for _, rc := range in.Golfers {
		g := in.Field[rc.ID]
		row := golferToDTO(g, rc)
		row.Usage = standings.FormatLookup(float64(picks[g.ID])/float64(len(in.Teams)), len(in.Teams) > 0, standings.FormatPercent)
		out.Golfers = append(out.Golfers, row)
	}
	return out
}

func golferToDTO(g golfer.Golfer, rc standings.RankedCompetitor) golferRowDTO {
	return golferRowDTO{
		ID:        g.ID,
		Name:      g.Name,
		Country:   g.Country,
		Group:     g.Group,
		Position:  rc.Rank.Display,
		Status:    rc.Status().String(),
		Score:     g.Score,
		Today:     g.Today,
		Thru:      g.Thru,
		Round:     g.Round,
		WorldRank: g.WorldRank,
	}
}

func memberToDTO(m member.Member) memberDTO {
	return memberDTO{
		ID:             m.ID,
		Email:          m.Email,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		DisplayName:    m.DisplayName(),
		Role:           string(m.Role),
		Account:        m.Account,
		AccountDisplay: standings.FormatMoney(m.Account),
	}
}

func tourCardToDTO(c tourcard.TourCard) tourCardDTO {
	return tourCardDTO{
		ID:          c.ID,
		MemberID:    c.MemberID,
		TourID:      c.TourID,
		SeasonID:    c.SeasonID,
		DisplayName: c.DisplayName,
		Points:      c.Points,
		Earnings:    c.Earnings,
		Position:    c.Position,
		Playoff:     c.Playoff,
	}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:           t.ID,
		TournamentID: t.TournamentID,
		TourCardID:   t.TourCardID,
		GolferIDs:    append([]string{}, t.GolferIDs...),
		UpdatedAt:    t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func finalizeToDTO(r usecase.FinalizeResult) finalizeDTO {
	return finalizeDTO{
		TournamentID: r.TournamentID,
		Teams:        r.Teams,
		Cards:        r.Cards,
		FinalizedAt:  r.FinalizedAt.UTC().Format(time.RFC3339),
	}
}
