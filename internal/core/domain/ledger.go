package domain

// QuotaLedger counts accepted decisions for a single calendar day. The
// date only ever moves forward; a past day's value is discarded on
// rollover, never carried over.
type QuotaLedger struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// AdmitAndAdvance evaluates whether the target may accept one more unit
// on the given day and returns the ledger to persist if so. It returns
// nil when the target is exhausted. The rules:
//
//   - no ledger yet: admit, ledger starts at {today, 1}
//   - ledger from a past day: admit, quota resets to {today, 1}
//   - ledger from today, under the cap: admit, value increments
//   - ledger from today at the cap, or dated after today: deny
//
// A future-dated ledger (clock skew) is treated as exhausted rather
// than regressed to an earlier day.
func (t Target) AdmitAndAdvance(today string) *QuotaLedger {
	c := t.Count
	switch {
	case c == nil:
		return &QuotaLedger{Date: today, Value: 1}
	case c.Date < today:
		return &QuotaLedger{Date: today, Value: 1}
	case c.Date == today && c.Value < t.MaxAcceptsPerDay:
		return &QuotaLedger{Date: today, Value: c.Value + 1}
	default:
		return nil
	}
}
