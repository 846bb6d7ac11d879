package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"investorapi/internal/db/models/postgres/public/model"
	"investorapi/internal/db/models/postgres/public/table"
	"investorapi/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// postgres caps a statement at 65535 bind parameters
const insertBatchSize = 5000

type InvestorRepository interface {
	// ReplaceAll atomically swaps the stored investors for the given set.
	// On error the previous set is left untouched.
	ReplaceAll(ctx context.Context, investors []domain.Investor) error
	List(ctx context.Context, filter InvestorListFilter) ([]domain.Investor, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Investor, error)
}

type InvestorListFilter struct {
	InvestorType *model.InvestorType
	Country      *string
	AssetClass   *model.AssetClass
}

type investorRepositoryHandler struct {
	Db *sql.DB
}

func NewInvestorRepository(db *sql.DB) InvestorRepository {
	return investorRepositoryHandler{Db: db}
}

type investorWithCommitments struct {
	model.Investor
	Commitments []model.Commitment
}

func (h investorRepositoryHandler) ReplaceAll(ctx context.Context, investors []domain.Investor) error {
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// blocks other writers until commit; readers keep seeing the old set
	if _, err := tx.ExecContext(ctx, "LOCK TABLE investor IN EXCLUSIVE MODE"); err != nil {
		return fmt.Errorf("failed to lock investor table: %w", err)
	}

	// commitments go with their investor via ON DELETE CASCADE
	_, err = table.Investor.DELETE().WHERE(postgres.Bool(true)).ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to delete investors: %w", err)
	}

	if len(investors) > 0 {
		if err := insertInvestors(ctx, tx, investors); err != nil {
			return err
		}
	}

	for _, stmt := range []string{"ANALYZE investor", "ANALYZE commitment"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to %s: %w", stmt, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit investor replace: %w", err)
	}

	return nil
}

func insertInvestors(ctx context.Context, tx *sql.Tx, investors []domain.Investor) error {
	now := time.Now().UTC()
	models := make([]model.Investor, 0, len(investors))
	for i, in := range investors {
		models = append(models, model.Investor{
			Name:           in.Name,
			InvestorType:   in.InvestorType,
			Country:        in.Country,
			DateAdded:      in.DateAdded,
			LastUpdated:    in.LastUpdated,
			Address:        in.Address,
			IngestPosition: int32(i),
			CreatedAt:      now,
		})
	}

	idByPosition := map[int32]uuid.UUID{}
	for start := 0; start < len(models); start += insertBatchSize {
		end := min(start+insertBatchSize, len(models))
		query := table.Investor.
			INSERT(table.Investor.MutableColumns).
			MODELS(models[start:end]).
			RETURNING(table.Investor.InvestorID, table.Investor.IngestPosition)

		inserted := []model.Investor{}
		if err := query.QueryContext(ctx, tx, &inserted); err != nil {
			return fmt.Errorf("failed to insert investors: %w", err)
		}
		for _, m := range inserted {
			idByPosition[m.IngestPosition] = m.InvestorID
		}
	}

	commitments := []model.Commitment{}
	for i, in := range investors {
		investorID, ok := idByPosition[int32(i)]
		if !ok {
			return fmt.Errorf("failed to insert investors: no id returned for %q", in.Name)
		}
		for position, c := range in.Commitments {
			commitments = append(commitments, model.Commitment{
				InvestorID: investorID,
				Position:   int32(position),
				AssetClass: c.AssetClass,
				Amount:     c.Amount,
				Currency:   c.Currency,
			})
		}
	}

	for start := 0; start < len(commitments); start += insertBatchSize {
		end := min(start+insertBatchSize, len(commitments))
		query := table.Commitment.
			INSERT(table.Commitment.MutableColumns).
			MODELS(commitments[start:end])
		if _, err := query.ExecContext(ctx, tx); err != nil {
			return fmt.Errorf("failed to insert commitments: %w", err)
		}
	}

	return nil
}

func selectInvestorsWithCommitments() postgres.SelectStatement {
	return postgres.SELECT(
		table.Investor.AllColumns,
		table.Commitment.AllColumns,
	).FROM(
		table.Investor.LEFT_JOIN(
			table.Commitment,
			table.Commitment.InvestorID.EQ(table.Investor.InvestorID),
		),
	)
}

func (h investorRepositoryHandler) List(ctx context.Context, filter InvestorListFilter) ([]domain.Investor, error) {
	whereClauses := []postgres.BoolExpression{
		postgres.Bool(true),
	}
	if filter.InvestorType != nil {
		// investor_type is a Postgres enum; compare against an enum value, not text
		whereClauses = append(whereClauses,
			table.Investor.InvestorType.EQ(postgres.NewEnumValue(filter.InvestorType.String())),
		)
	}
	if filter.Country != nil {
		whereClauses = append(whereClauses,
			table.Investor.Country.EQ(postgres.String(*filter.Country)),
		)
	}
	if filter.AssetClass != nil {
		whereClauses = append(whereClauses,
			table.Commitment.AssetClass.EQ(postgres.NewEnumValue(filter.AssetClass.String())),
		)
	}

	query := selectInvestorsWithCommitments().
		WHERE(postgres.AND(whereClauses...)).
		ORDER_BY(
			table.Investor.IngestPosition.ASC(),
			table.Commitment.Position.ASC(),
		)

	result := []investorWithCommitments{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list investors: %w", err)
	}

	out := make([]domain.Investor, 0, len(result))
	for _, r := range result {
		out = append(out, investorFromModel(r))
	}

	return out, nil
}

func (h investorRepositoryHandler) Get(ctx context.Context, id uuid.UUID) (*domain.Investor, error) {
	query := selectInvestorsWithCommitments().
		WHERE(table.Investor.InvestorID.EQ(postgres.UUID(id))).
		ORDER_BY(table.Commitment.Position.ASC())

	result := investorWithCommitments{}
	err := query.QueryContext(ctx, h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: investor with id %s", domain.ErrNotFound, id.String())
	} else if err != nil {
		return nil, fmt.Errorf("failed to get investor %s: %w", id.String(), err)
	}

	out := investorFromModel(result)
	return &out, nil
}

func investorFromModel(m investorWithCommitments) domain.Investor {
	commitments := make([]domain.Commitment, 0, len(m.Commitments))
	for _, c := range m.Commitments {
		commitments = append(commitments, domain.Commitment{
			AssetClass: c.AssetClass,
			Amount:     c.Amount,
			Currency:   c.Currency,
		})
	}

	return domain.Investor{
		InvestorID:   m.InvestorID,
		Name:         m.Name,
		InvestorType: m.InvestorType,
		Country:      m.Country,
		DateAdded:    m.DateAdded,
		LastUpdated:  m.LastUpdated,
		Address:      m.Address,
		Commitments:  commitments,
	}
}
