package transaction

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	records map[Kind]map[string]Transaction
}

// NewMemoryRepository builds an in-memory transaction store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{records: map[Kind]map[string]Transaction{
		KindIncome:  {},
		KindExpense: {},
	}}
}

func (r *memoryRepository) Create(_ context.Context, tx Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[tx.Kind][tx.ID] = tx
	return nil
}

func (r *memoryRepository) Get(_ context.Context, kind Kind, id string) (Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tx, ok := r.records[kind][id]
	if !ok {
		return Transaction{}, ErrNotFound
	}
	return tx, nil
}

func (r *memoryRepository) List(_ context.Context, kind Kind, scope Scope) ([]Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var txs []Transaction
	for _, tx := range r.records[kind] {
		if ownerID, ok := scope.Owner(); ok && tx.OwnerID != ownerID {
			continue
		}
		txs = append(txs, tx)
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].CreatedAt.After(txs[j].CreatedAt) })
	return txs, nil
}

func (r *memoryRepository) Update(_ context.Context, kind Kind, id string, patch Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.records[kind][id]
	if !ok {
		return ErrNotFound
	}
	if patch.Amount != nil {
		tx.Amount = *patch.Amount
	}
	if patch.Label != nil {
		tx.Label = *patch.Label
	}
	r.records[kind][id] = tx
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, kind Kind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[kind][id]; !ok {
		return ErrNotFound
	}
	delete(r.records[kind], id)
	return nil
}
