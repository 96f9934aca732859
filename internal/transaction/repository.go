package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vinayak-mandal/finflow/internal/money"
)

// ErrNotFound indicates no record exists for the requested id and kind.
var ErrNotFound = errors.New("transaction not found")

// Repository persists income and expense records.
type Repository interface {
	Create(ctx context.Context, tx Transaction) error
	Get(ctx context.Context, kind Kind, id string) (Transaction, error)
	List(ctx context.Context, kind Kind, scope Scope) ([]Transaction, error)
	Update(ctx context.Context, kind Kind, id string, patch Patch) error
	Delete(ctx context.Context, kind Kind, id string) error
}

// Each kind maps to its own table; the label lives in a kind-specific column.
var kindTables = map[Kind]struct {
	table       string
	labelColumn string
}{
	KindIncome:  {table: "income", labelColumn: "name"},
	KindExpense: {table: "expenses", labelColumn: "reason"},
}

// PostgresRepository stores transactions in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a record into the table for its kind.
func (r *PostgresRepository) Create(ctx context.Context, tx Transaction) error {
	t := kindTables[tx.Kind]
	query := fmt.Sprintf(`INSERT INTO %s (id, user_id, amount, %s, created_at)
        VALUES ($1, $2, $3, $4, $5)`, t.table, t.labelColumn)
	_, err := r.db.Exec(ctx, query, tx.ID, tx.OwnerID, int64(tx.Amount), tx.Label, tx.CreatedAt.UTC())
	return err
}

// Get fetches a single record with its owner's display name.
func (r *PostgresRepository) Get(ctx context.Context, kind Kind, id string) (Transaction, error) {
	t := kindTables[kind]
	query := fmt.Sprintf(`SELECT t.id, t.user_id, t.amount, t.%s, t.created_at, u.name
        FROM %s t INNER JOIN users u ON u.id = t.user_id
        WHERE t.id = $1`, t.labelColumn, t.table)
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, id), kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Transaction{}, ErrNotFound
		}
		return Transaction{}, err
	}
	return tx, nil
}

// List returns records newest first, optionally narrowed to one owner, each
// joined with the owner's display name.
func (r *PostgresRepository) List(ctx context.Context, kind Kind, scope Scope) ([]Transaction, error) {
	t := kindTables[kind]
	query := fmt.Sprintf(`SELECT t.id, t.user_id, t.amount, t.%s, t.created_at, u.name
        FROM %s t INNER JOIN users u ON u.id = t.user_id`, t.labelColumn, t.table)

	var (
		rows pgx.Rows
		err  error
	)
	if ownerID, ok := scope.Owner(); ok {
		rows, err = r.db.Query(ctx, query+` WHERE t.user_id = $1 ORDER BY t.created_at DESC`, ownerID)
	} else {
		rows, err = r.db.Query(ctx, query+` ORDER BY t.created_at DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows, kind)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// Update applies the patch to amount and/or label.
func (r *PostgresRepository) Update(ctx context.Context, kind Kind, id string, patch Patch) error {
	t := kindTables[kind]

	set := ""
	args := []any{}
	if patch.Amount != nil {
		args = append(args, int64(*patch.Amount))
		set = fmt.Sprintf("amount = $%d", len(args))
	}
	if patch.Label != nil {
		args = append(args, *patch.Label)
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", t.labelColumn, len(args))
	}
	if set == "" {
		return nil
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`, t.table, set, len(args))
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record permanently.
func (r *PostgresRepository) Delete(ctx context.Context, kind Kind, id string) error {
	t := kindTables[kind]
	cmd, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.table), id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTransaction(row pgx.Row, kind Kind) (Transaction, error) {
	var (
		tx        Transaction
		amount    int64
		createdAt time.Time
	)
	if err := row.Scan(&tx.ID, &tx.OwnerID, &amount, &tx.Label, &createdAt, &tx.OwnerName); err != nil {
		return Transaction{}, err
	}
	tx.Kind = kind
	tx.Amount = money.Paise(amount)
	tx.CreatedAt = createdAt.UTC()
	return tx, nil
}
