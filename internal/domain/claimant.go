package domain

import "strings"

// Claimant identifies who holds a reservation: a community sub-group
// plus the villa unit inside it. The pair is free-form text supplied by
// the caller and is never authenticated here.
type Claimant struct {
	Community string
	Villa     string
}

// NewClaimant builds a claimant with surrounding whitespace trimmed
func NewClaimant(community, villa string) Claimant {
	return Claimant{
		Community: strings.TrimSpace(community),
		Villa:     strings.TrimSpace(villa),
	}
}

// Valid returns true if both parts of the claimant are present
func (c Claimant) Valid() bool {
	return c.Community != "" && c.Villa != ""
}

// Equal returns true if both claimants name the same villa unit
func (c Claimant) Equal(other Claimant) bool {
	return c.Community == other.Community && c.Villa == other.Villa
}

// String returns the claimant in "community/villa" form for logs
func (c Claimant) String() string {
	return c.Community + "/" + c.Villa
}
