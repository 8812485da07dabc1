package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stocktracker/internal/db/models/postgres/public/model"
	"stocktracker/internal/db/models/postgres/public/table"
	"stocktracker/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// TransactionRepository is the append-only ledger. There is deliberately
// no Update or Delete - corrections are recorded as offsetting
// transactions.
type TransactionRepository interface {
	Add(tx *sql.Tx, t model.Transaction) (*model.Transaction, error)
	// List returns the full ledger slice for one (user, portfolio) pair
	// in ledger order: transaction date ascending, insertion order
	// breaking ties.
	List(userID uuid.UUID, portfolioName string) ([]domain.Transaction, error)
	ListRecent(userID uuid.UUID, portfolioName string, limit int64) ([]domain.Transaction, error)
	ListPortfolioNames(userID uuid.UUID) ([]string, error)
}

type transactionRepositoryHandler struct {
	Db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return transactionRepositoryHandler{Db: db}
}

func (h transactionRepositoryHandler) Add(tx *sql.Tx, t model.Transaction) (*model.Transaction, error) {
	if t.TransactionID == uuid.Nil {
		t.TransactionID = uuid.New()
	}
	t.CreatedAt = time.Now().UTC()

	query := table.Transaction.
		INSERT(table.Transaction.AllColumns).
		MODEL(t).
		RETURNING(table.Transaction.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Transaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return &out, nil
}

func (h transactionRepositoryHandler) List(userID uuid.UUID, portfolioName string) ([]domain.Transaction, error) {
	query := table.Transaction.
		SELECT(table.Transaction.AllColumns).
		WHERE(
			postgres.AND(
				table.Transaction.UserID.EQ(postgres.UUID(userID)),
				table.Transaction.PortfolioName.EQ(postgres.String(portfolioName)),
			),
		).
		ORDER_BY(
			table.Transaction.TransactionDate.ASC(),
			table.Transaction.CreatedAt.ASC(),
			table.Transaction.TransactionID.ASC(),
		)

	results := []model.Transaction{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactionsToDomain(results), nil
}

func (h transactionRepositoryHandler) ListRecent(userID uuid.UUID, portfolioName string, limit int64) ([]domain.Transaction, error) {
	query := table.Transaction.
		SELECT(table.Transaction.AllColumns).
		WHERE(
			postgres.AND(
				table.Transaction.UserID.EQ(postgres.UUID(userID)),
				table.Transaction.PortfolioName.EQ(postgres.String(portfolioName)),
			),
		).
		ORDER_BY(table.Transaction.CreatedAt.DESC()).
		LIMIT(limit)

	results := []model.Transaction{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	return transactionsToDomain(results), nil
}

func (h transactionRepositoryHandler) ListPortfolioNames(userID uuid.UUID) ([]string, error) {
	query := table.Transaction.
		SELECT(table.Transaction.PortfolioName).
		WHERE(table.Transaction.UserID.EQ(postgres.UUID(userID))).
		DISTINCT().
		ORDER_BY(table.Transaction.PortfolioName.ASC())

	results := []struct {
		PortfolioName string
	}{}
	err := query.Query(h.Db, &results)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to list portfolio names: %w", err)
	}

	names := []string{}
	for _, r := range results {
		names = append(names, r.PortfolioName)
	}

	return names, nil
}

func transactionsToDomain(in []model.Transaction) []domain.Transaction {
	out := []domain.Transaction{}
	for _, t := range in {
		notes := ""
		if t.Notes != nil {
			notes = *t.Notes
		}
		out = append(out, domain.Transaction{
			TransactionID:   t.TransactionID,
			UserID:          t.UserID,
			PortfolioName:   t.PortfolioName,
			Symbol:          t.Symbol,
			TransactionType: domain.TransactionType(t.TransactionType),
			Quantity:        t.Quantity,
			PricePerShare:   t.PricePerShare,
			TransactionDate: t.TransactionDate,
			Notes:           notes,
		})
	}
	return out
}
