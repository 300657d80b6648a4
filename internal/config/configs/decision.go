package configs

import "time"

// Decision configures the decision engine. The time zone applies to
// both the hour eligibility filter and the quota ledger day, so the two
// always agree on where a calendar day starts.
type Decision struct {
	// Timezone is an IANA zone name, e.g. "UTC" or "America/New_York".
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`
	// CommitRetries bounds optimistic commit attempts per target before
	// a decision fails as transiently conflicted.
	CommitRetries int `env:"COMMIT_RETRIES" envDefault:"3"`
}

// Location resolves the configured zone name.
func (c Decision) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
