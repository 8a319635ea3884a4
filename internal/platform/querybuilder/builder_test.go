package querybuilder

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		build     func() (string, []any, error)
		wantQuery string
		wantArgs  []any
	}{
		{
			name: "select with filters and paging",
			build: func() (string, []any, error) {
				return Select("id", "display_name").
					From("members").
					Where(Eq("role", "admin"), IsNull("deleted_at"), Gte("account", 10)).
					OrderBy("display_name", "id").
					Limit(20).
					Offset(40).
					ToSQL()
			},
			wantQuery: "SELECT id, display_name FROM members WHERE role = $1 AND deleted_at IS NULL AND account >= $2 ORDER BY display_name, id LIMIT 20 OFFSET 40",
			wantArgs:  []any{"admin", 10},
		},
		{
			name: "select with empty in set",
			build: func() (string, []any, error) {
				return Select("id").From("golfers").Where(InStrings("id", nil), NotNull("world_rank")).ToSQL()
			},
			wantQuery: "SELECT id FROM golfers WHERE 1=0 AND world_rank IS NOT NULL",
		},
		{
			name: "select with in set and expression",
			build: func() (string, []any, error) {
				return Select("id").From("tour_cards").
					Where(InStrings("tour_id", []string{"t1", "t2"}), Expr("points > ? OR earnings > ?", 0, 100)).
					ToSQL()
			},
			wantQuery: "SELECT id FROM tour_cards WHERE tour_id IN ($1, $2) AND points > $3 OR earnings > $4",
			wantArgs:  []any{"t1", "t2", 0, 100},
		},
		{
			name: "insert with returning",
			build: func() (string, []any, error) {
				return InsertInto("seasons").Columns("id", "year").Values("s1", 2026).Suffix("RETURNING id").ToSQL()
			},
			wantQuery: "INSERT INTO seasons (id, year) VALUES ($1, $2) RETURNING id",
			wantArgs:  []any{"s1", 2026},
		},
		{
			name: "insert do nothing",
			build: func() (string, []any, error) {
				return InsertInto("tour_cards").Columns("id", "member_id").Values("c1", "m1").
					OnConflict("member_id", "season_id").DoNothing().ToSQL()
			},
			wantQuery: "INSERT INTO tour_cards (id, member_id) VALUES ($1, $2) ON CONFLICT (member_id, season_id) DO NOTHING",
			wantArgs:  []any{"c1", "m1"},
		},
		{
			name: "update with expression and args",
			build: func() (string, []any, error) {
				return Update("members").
					SetExpr("account", "account + ?", -25.0).
					SetExpr("updated_at", "NOW()").
					Set("role", "regular").
					Where(Eq("id", "m1")).
					ToSQL()
			},
			wantQuery: "UPDATE members SET account = account + $1, updated_at = NOW(), role = $2 WHERE id = $3",
			wantArgs:  []any{-25.0, "regular", "m1"},
		},
		{
			name: "eq literal is quoted",
			build: func() (string, []any, error) {
				return Select("id").From("tiers").Where(EqLiteral("name", "o'neil")).ToSQL()
			},
			wantQuery: "SELECT id FROM tiers WHERE name = 'o''neil'",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := tc.build()
			if err != nil {
				t.Fatalf("build query: %v", err)
			}
			if query != tc.wantQuery {
				t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", tc.wantQuery, query)
			}
			if diff := cmp.Diff(tc.wantArgs, args); diff != "" {
				t.Fatalf("unexpected args (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuilders_Validation(t *testing.T) {
	t.Parallel()

	if _, _, err := Select().From("x").ToSQL(); !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
	if _, _, err := Select("id").ToSQL(); !errors.Is(err, ErrMissingTable) {
		t.Fatalf("expected ErrMissingTable, got %v", err)
	}
	if _, _, err := InsertInto("x").Columns("a").ToSQL(); !errors.Is(err, ErrMissingValues) {
		t.Fatalf("expected ErrMissingValues, got %v", err)
	}
	if _, _, err := InsertInto("x").Columns("a", "b").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected row width error")
	}
	if _, _, err := Update("x").ToSQL(); !errors.Is(err, ErrMissingSets) {
		t.Fatalf("expected ErrMissingSets, got %v", err)
	}
}

type seasonRow struct {
	ID        string    `db:"id"`
	Year      int       `db:"year"`
	CreatedAt time.Time `db:"created_at"`
	Ignored   string    `db:"-"`
	internal  string
	NoTag     string
}

func TestUpsertModel(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	query, args, err := UpsertModel("seasons", &seasonRow{ID: "s1", Year: 2026, CreatedAt: created, internal: "x"}, "id")
	if err != nil {
		t.Fatalf("UpsertModel: %v", err)
	}

	want := "INSERT INTO seasons (id, year, created_at) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET year = EXCLUDED.year, created_at = EXCLUDED.created_at"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if diff := cmp.Diff([]any{"s1", 2026, created}, args); diff != "" {
		t.Fatalf("unexpected args (-want +got):\n%s", diff)
	}
}

func TestModelColumns_RejectsNonStruct(t *testing.T) {
	t.Parallel()

	var nilRow *seasonRow
	if _, _, err := ModelColumns(nilRow); err == nil {
		t.Fatalf("expected error for nil model")
	}
	if _, _, err := ModelColumns(42); err == nil {
		t.Fatalf("expected error for non-struct")
	}
}
