package service

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// GenerateDealerCode returns a fresh dealer code: "DLR" plus six digits.
// Uniqueness is enforced upstream; collisions surface as registration errors.
func GenerateDealerCode() string {
	return fmt.Sprintf("DLR%06d", rand.IntN(1000000))
}

// GenerateLoanProposalNo returns a proposal number: "LPN", the onboarding
// date as yyyymmdd, and a four-digit discriminator.
func GenerateLoanProposalNo(now time.Time) string {
	return fmt.Sprintf("LPN%s%04d", now.Format("20060102"), rand.IntN(10000))
}
