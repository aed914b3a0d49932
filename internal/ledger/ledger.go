package ledger

import (
	"sort"
	"time"

	"dilemma-arena/internal/ids"
)

const (
	PotAccount   = "pot"
	HouseAccount = "house"
)

type EntryType string

const (
	EntrySeatChips      EntryType = "seat_chips"
	EntrySeedPot        EntryType = "seed_pot"
	EntryStake          EntryType = "entry_stake"
	EntryRoundPayoff    EntryType = "round_payoff"
	EntryShareDraw      EntryType = "share_draw"
	EntryDoubleBetray   EntryType = "double_betray"
	EntryBustAbsorb     EntryType = "bust_absorb"
	EntryDebtWriteOff   EntryType = "debt_write_off"
	EntryLeaveRefund    EntryType = "leave_refund"
	EntryFinalSplit     EntryType = "final_split"
	EntrySplitRemainder EntryType = "split_remainder"
)

type Entry struct {
	ID        string    `json:"id"`
	Type      EntryType `json:"type"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Amount    int64     `json:"amount"`
	RefType   string    `json:"ref_type"`
	RefID     string    `json:"ref_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Ledger is an in-memory double-entry record of chip movements. Every
// transfer debits one account and credits another, so balances always net
// to zero.
type Ledger struct {
	entries  []Entry
	balances map[string]int64
}

func New() *Ledger {
	return &Ledger{balances: map[string]int64{}}
}

// Transfer moves amount from one account to another. Zero amounts are
// skipped and negative amounts are booked in the opposite direction.
func (l *Ledger) Transfer(typ EntryType, from, to string, amount int64, refType, refID string) (Entry, bool) {
	if l == nil || amount == 0 {
		return Entry{}, false
	}
	if amount < 0 {
		from, to, amount = to, from, -amount
	}
	e := Entry{
		ID:        ids.New(),
		Type:      typ,
		From:      from,
		To:        to,
		Amount:    amount,
		RefType:   refType,
		RefID:     refID,
		CreatedAt: time.Now(),
	}
	l.entries = append(l.entries, e)
	l.balances[from] -= amount
	l.balances[to] += amount
	return e, true
}

func (l *Ledger) Entries() []Entry {
	if l == nil {
		return nil
	}
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Balance(account string) int64 {
	if l == nil {
		return 0
	}
	return l.balances[account]
}

// Net sums every balance; a consistent ledger always reports zero.
func (l *Ledger) Net() int64 {
	if l == nil {
		return 0
	}
	var n int64
	for _, b := range l.balances {
		n += b
	}
	return n
}

type TypeTotal struct {
	Type   EntryType `json:"type"`
	Count  int       `json:"count"`
	Amount int64     `json:"amount"`
}

// Totals aggregates entries per type, ordered by type name.
func (l *Ledger) Totals() []TypeTotal {
	if l == nil {
		return nil
	}
	byType := map[EntryType]*TypeTotal{}
	for _, e := range l.entries {
		t, ok := byType[e.Type]
		if !ok {
			t = &TypeTotal{Type: e.Type}
			byType[e.Type] = t
		}
		t.Count++
		t.Amount += e.Amount
	}
	out := make([]TypeTotal, 0, len(byType))
	for _, t := range byType {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}
