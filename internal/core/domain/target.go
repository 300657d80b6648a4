package domain

import (
	"strconv"
	"time"
)

// Target is a biddable destination. It carries the routing URL, the bid
// used for ranking, the daily acceptance cap and the eligibility
// whitelists. The quota ledger is absent until the first acceptance.
type Target struct {
	ID               string       `json:"id"`
	URL              string       `json:"url"`
	Value            float64      `json:"value"`
	MaxAcceptsPerDay int          `json:"maxAcceptsPerDay"`
	Accept           Accept       `json:"accept"`
	Count            *QuotaLedger `json:"count,omitempty"`
}

// Accept groups the eligibility whitelists of a target. A nil set means
// the target declares nothing for that dimension and cannot match a
// request that filters on it.
type Accept struct {
	GeoState *AcceptSet `json:"geoState,omitempty"`
	Hour     *AcceptSet `json:"hour,omitempty"`
}

// AcceptSet is a whitelist of codes. The wire shape keeps the "$in"
// document form the store records already use.
type AcceptSet struct {
	In []string `json:"$in"`
}

// Contains reports whether code is in the set. Matching is exact string
// equality, no normalisation. A nil set contains nothing.
func (s *AcceptSet) Contains(code string) bool {
	if s == nil {
		return false
	}
	for _, v := range s.In {
		if v == code {
			return true
		}
	}
	return false
}

// DayLayout is the calendar-date encoding used by the quota ledger.
// Dates in this layout compare correctly as strings.
const DayLayout = "2006-01-02"

// DayOf returns the calendar day of t in the reference zone, discarding
// the time-of-day component.
func DayOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

// HourCode returns the hour-of-day code of t in the reference zone,
// "0" through "23" with no leading zero.
func HourCode(t time.Time, loc *time.Location) string {
	return strconv.Itoa(t.In(loc).Hour())
}
