package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/riskibarqy/fantasy-golf/internal/domain/standings"
	"github.com/riskibarqy/fantasy-golf/internal/domain/tour"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxSheetName    = 31
)

var standingsHeader = []any{"Place", "Change", "Overall", "Name", "Points", "Earnings", "Wins", "Top 10", "Cuts Made", "Band"}

type Export struct {
	FileName    string
	ContentType string
	Body        []byte
}

type ExportService struct {
	standings *StandingsService
}

func NewExportService(standingsSvc *StandingsService) *ExportService {
	return &ExportService{standings: standingsSvc}
}

// ExportSeasonStandings writes one worksheet per tour with the current
// standings table.
func (s *ExportService) ExportSeasonStandings(ctx context.Context, seasonID string) (Export, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.ExportSeasonStandings")
	defer span.End()

	season, err := s.standings.GetSeasonStandings(ctx, seasonID)
	if err != nil {
		return Export{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return Export{}, fmt.Errorf("create header style: %w", err)
	}

	const defaultSheet = "Sheet1"
	used := make(map[string]bool, len(season.Tours))
	for i, ts := range season.Tours {
		name := sheetName(ts.Tour, used)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return Export{}, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return Export{}, fmt.Errorf("create sheet %s: %w", name, err)
		}

		if err := f.SetSheetRow(name, "A1", &standingsHeader); err != nil {
			return Export{}, fmt.Errorf("write header: %w", err)
		}
		if err := f.SetRowStyle(name, 1, 1, header); err != nil {
			return Export{}, fmt.Errorf("style header: %w", err)
		}

		for r, row := range ts.Board.Rows {
			card := season.Cards[row.ID]
			values := []any{
				row.Rank.Display,
				row.Change.Change,
				standings.Ordinal(row.Change.CurrentPositionOverall),
				card.DisplayName,
				row.Points,
				standings.FormatMoney(card.Earnings),
				card.Wins,
				card.TopTen,
				card.MadeCut,
				string(row.Band),
			}
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return Export{}, fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				return Export{}, fmt.Errorf("write row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return Export{}, fmt.Errorf("write workbook: %w", err)
	}
	return Export{
		FileName:    fmt.Sprintf("standings-%s.xlsx", season.Season.ID),
		ContentType: xlsxContentType,
		Body:        buf.Bytes(),
	}, nil
}

// sheetName picks a unique worksheet name within the spreadsheet limits.
func sheetName(t tour.Tour, used map[string]bool) string {
	base := strings.TrimSpace(t.ShortForm)
	if base == "" {
		base = strings.TrimSpace(t.Name)
	}
	if base == "" {
		base = t.ID
	}
	base = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '-'
		}
		return r
	}, base)
	if len([]rune(base)) > maxSheetName {
		base = string([]rune(base)[:maxSheetName])
	}

	name := base
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" %d", n)
		runes := []rune(base)
		if len(runes)+len(suffix) > maxSheetName {
			runes = runes[:maxSheetName-len(suffix)]
		}
		name = string(runes) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}
