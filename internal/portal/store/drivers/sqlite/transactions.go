package sqlite

import (
	"context"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/store"
)

type transactionsRepo struct {
	q dbtx
}

const transactionColumns = `id, tenant_id, type, amount, credits, description, status, reference, date`

func (r *transactionsRepo) ListTransactions(ctx context.Context, tenantID string) ([]domain.Transaction, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE tenant_id = ? ORDER BY date DESC`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (r *transactionsRepo) CreateTransaction(ctx context.Context, t domain.Transaction) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO transactions (id, tenant_id, type, amount, credits, description, status, reference, date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.TenantID, t.Type, t.Amount, t.Credits, t.Description, t.Status, t.Reference, t.Date)
	return err
}

func (r *transactionsRepo) GetTransactionByReference(ctx context.Context, tenantID, reference string) (domain.Transaction, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE tenant_id = ? AND reference = ?`,
		tenantID, reference)
	return scanTransaction(row)
}

func (r *transactionsRepo) UpdateTransactionStatus(ctx context.Context, tenantID, id, status string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE transactions SET status = ? WHERE tenant_id = ? AND id = ?`,
		status, tenantID, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *transactionsRepo) MonthlyUsageCounts(ctx context.Context, tenantID string, since time.Time) ([]store.BucketCount, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT substr(date, 1, 7) AS month, COUNT(*) FROM transactions
		 WHERE tenant_id = ? AND type = ? AND date >= ? GROUP BY month ORDER BY month`,
		tenantID, domain.TransactionTypeUsage, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []store.BucketCount
	for rows.Next() {
		var c store.BucketCount
		if err := rows.Scan(&c.Bucket, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.TenantID, &t.Type, &t.Amount, &t.Credits,
		&t.Description, &t.Status, &t.Reference, &t.Date)
	if err != nil {
		return domain.Transaction{}, mapNotFound(err)
	}
	return t, nil
}
