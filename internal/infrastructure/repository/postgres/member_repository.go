package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-golf/internal/domain/member"
	qb "github.com/riskibarqy/fantasy-golf/internal/platform/querybuilder"
)

type MemberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(db *sqlx.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) GetByID(ctx context.Context, memberID string) (member.Member, bool, error) {
	query, args, err := qb.Select("*").From("members").
		Where(qb.Eq("public_id", memberID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return member.Member{}, false, fmt.Errorf("build get member query: %w", err)
	}

	var row memberTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return member.Member{}, false, nil
		}
		return member.Member{}, false, fmt.Errorf("get member: %w", err)
	}
	return memberFromRow(row), true, nil
}

func (r *MemberRepository) List(ctx context.Context) ([]member.Member, error) {
	query, args, err := qb.Select("*").From("members").
		Where(qb.IsNull("deleted_at")).
		OrderBy("last_name", "first_name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list members query: %w", err)
	}

	var rows []memberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	out := make([]member.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, memberFromRow(row))
	}
	return out, nil
}

func (r *MemberRepository) Create(ctx context.Context, m member.Member) error {
	insert, err := qb.InsertModel("members", memberInsertModel{
		PublicID:  m.ID,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Role:      string(m.Role),
		Account:   m.Account,
	})
	if err != nil {
		return fmt.Errorf("build create member query: %w", err)
	}
	query, args, err := insert.ToSQL()
	if err != nil {
		return fmt.Errorf("build create member query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

func (r *MemberRepository) Update(ctx context.Context, m member.Member) error {
	query, args, err := qb.Update("members").
		Set("email", m.Email).
		Set("first_name", m.FirstName).
		Set("last_name", m.LastName).
		Set("role", string(m.Role)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", m.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update member query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("member not found: %s", m.ID)
	}
	return nil
}

func (r *MemberRepository) AdjustAccount(ctx context.Context, memberID string, delta float64) (float64, error) {
	query, args, err := qb.Update("members").
		SetExpr("account", "account + ?", delta).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", memberID), qb.IsNull("deleted_at")).
		Suffix("RETURNING account").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build adjust account query: %w", err)
	}

	var balance float64
	if err := r.db.GetContext(ctx, &balance, query, args...); err != nil {
		if isNotFound(err) {
			return 0, fmt.Errorf("member not found: %s", memberID)
		}
		return 0, fmt.Errorf("adjust account: %w", err)
	}
	return balance, nil
}

func memberFromRow(row memberTableModel) member.Member {
	return member.Member{
		ID:        row.PublicID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Role:      member.Role(row.Role),
		Account:   row.Account,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
