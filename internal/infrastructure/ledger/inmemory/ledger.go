package inmemory

import (
	"errors"
	"sync"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
	"github.com/galleria-network/galleria-daemon/internal/core/ports"
)

var (
	// ErrInsufficientFunds is thrown when the payer balance cannot cover a
	// currency transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAssetNotFound is thrown when transferring an asset the ledger has
	// never seen.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrAssetNotHeld is thrown when the sending account does not hold the
	// asset unit.
	ErrAssetNotHeld = errors.New("asset is not held by the sending account")
	// ErrNoCustodyAccount is thrown when the receiving account has no
	// custody account provisioned for the asset.
	ErrNoCustodyAccount = errors.New("no custody account for the receiving identity")
	// ErrBadAuthority is thrown when the presented authority does not match
	// the sending account.
	ErrBadAuthority = errors.New("authority does not match the sending account")
	// ErrTxClosed is thrown when staging on an already committed or
	// discarded transaction.
	ErrTxClosed = errors.New("ledger transaction already closed")
)

type custodyKey struct {
	owner domain.Identity
	asset domain.AssetID
}

type state struct {
	balances map[domain.Identity]uint64
	holdings map[domain.AssetID]domain.Identity
	accounts map[custodyKey]struct{}
}

func newState() *state {
	return &state{
		balances: map[domain.Identity]uint64{},
		holdings: map[domain.AssetID]domain.Identity{},
		accounts: map[custodyKey]struct{}{},
	}
}

func (s *state) clone() *state {
	next := newState()
	for k, v := range s.balances {
		next.balances[k] = v
	}
	for k, v := range s.holdings {
		next.holdings[k] = v
	}
	for k := range s.accounts {
		next.accounts[k] = struct{}{}
	}
	return next
}

// Ledger is an in-process implementation of the platform custody and
// currency primitives. Every unique asset exists as a single unit parked on
// exactly one custody account; native balances are plain uint64 amounts.
// Transactions are pessimistic: opening one locks the ledger until it is
// committed or discarded, so a staged batch can never fail at commit time.
type Ledger struct {
	stateMtx sync.Mutex
	txMtx    sync.Mutex
	state    *state
}

func NewLedger() *Ledger {
	return &Ledger{state: newState()}
}

// Fund credits native currency to an account. Bootstrap/test helper
// standing in for the platform's own issuance.
func (l *Ledger) Fund(account domain.Identity, amount uint64) {
	l.stateMtx.Lock()
	defer l.stateMtx.Unlock()
	l.state.balances[account] += amount
}

// MintAsset creates the single unit of a unique asset on the owner's
// custody account.
func (l *Ledger) MintAsset(owner domain.Identity, asset domain.AssetID) {
	l.stateMtx.Lock()
	defer l.stateMtx.Unlock()
	l.state.accounts[custodyKey{owner, asset}] = struct{}{}
	l.state.holdings[asset] = owner
}

func (l *Ledger) BalanceOf(account domain.Identity) uint64 {
	l.stateMtx.Lock()
	defer l.stateMtx.Unlock()
	return l.state.balances[account]
}

func (l *Ledger) HolderOf(asset domain.AssetID) (domain.Identity, bool) {
	l.stateMtx.Lock()
	defer l.stateMtx.Unlock()
	holder, ok := l.state.holdings[asset]
	return holder, ok
}

func (l *Ledger) NewTransaction() ports.LedgerTx {
	l.txMtx.Lock()
	l.stateMtx.Lock()
	staged := l.state.clone()
	l.stateMtx.Unlock()
	return &ledgerTx{ledger: l, staged: staged}
}

type ledgerTx struct {
	ledger *Ledger
	staged *state
	closed bool
}

func (tx *ledgerTx) EnsureAssetAccount(
	owner domain.Identity, asset domain.AssetID,
) error {
	if tx.closed {
		return ErrTxClosed
	}
	tx.staged.accounts[custodyKey{owner, asset}] = struct{}{}
	return nil
}

func (tx *ledgerTx) TransferAsset(
	asset domain.AssetID, from, to domain.Identity, auth *ports.EscrowAuthority,
) error {
	if tx.closed {
		return ErrTxClosed
	}

	holder, ok := tx.staged.holdings[asset]
	if !ok {
		return ErrAssetNotFound
	}
	if holder != from {
		return ErrAssetNotHeld
	}
	if auth != nil && auth.Escrow() != from {
		return ErrBadAuthority
	}
	if _, ok := tx.staged.accounts[custodyKey{to, asset}]; !ok {
		return ErrNoCustodyAccount
	}

	tx.staged.holdings[asset] = to
	return nil
}

func (tx *ledgerTx) TransferFunds(
	from, to domain.Identity, amount uint64,
) error {
	if tx.closed {
		return ErrTxClosed
	}

	if tx.staged.balances[from] < amount {
		return ErrInsufficientFunds
	}
	tx.staged.balances[from] -= amount
	tx.staged.balances[to] += amount
	return nil
}

func (tx *ledgerTx) Commit() error {
	if tx.closed {
		return ErrTxClosed
	}
	tx.closed = true

	tx.ledger.stateMtx.Lock()
	tx.ledger.state = tx.staged
	tx.ledger.stateMtx.Unlock()

	tx.ledger.txMtx.Unlock()
	return nil
}

func (tx *ledgerTx) Discard() {
	if tx.closed {
		return
	}
	tx.closed = true
	tx.staged = nil
	tx.ledger.txMtx.Unlock()
}
