package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReference builds a human-facing booking reference of the form
// SC-YYYYMMDD-XXXXXXXX. The random segment comes from a UUID, so
// uniqueness is overwhelmingly likely; the reference_number column's
// unique constraint is the final authority.
func NewReference(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("SC-%s-%s", now.Format("20060102"), suffix)
}
