package transaction

import (
	"fmt"
	"time"

	"github.com/vinayak-mandal/finflow/internal/money"
)

// Kind discriminates the two record variants. Income rows carry a source
// name, expense rows a reason; both share the same shape otherwise.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// ParseKind validates a kind string from the request path or query.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIncome, KindExpense:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown transaction kind %q", s)
	}
}

// Transaction is a single income or expense record. OwnerName is the owning
// user's display name, attached by the repository's list join for
// presentation; it is never written back.
type Transaction struct {
	ID        string
	Kind      Kind
	Amount    money.Paise
	Label     string
	OwnerID   string
	OwnerName string
	CreatedAt time.Time
}

// Patch describes an edit. Nil fields are left untouched; id, owner, and
// created_at can never change.
type Patch struct {
	Amount *money.Paise
	Label  *string
}

// Scope narrows a list to one owner's records.
type Scope struct {
	ownerID string
	all     bool
}

// ScopeAll lists every member's records.
func ScopeAll() Scope { return Scope{all: true} }

// ScopeOwnedBy lists only records owned by the given user.
func ScopeOwnedBy(userID string) Scope { return Scope{ownerID: userID} }

// Owner returns the owning user filter and whether one applies.
func (s Scope) Owner() (string, bool) {
	if s.all {
		return "", false
	}
	return s.ownerID, true
}
