package claims

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewClaimID generates a claim identifier of the form CLM-XXXXXXXX, where the
// suffix is 8 uppercase hex digits taken from a random UUID. Uniqueness is
// probabilistic; at expected claim volumes the collision odds are negligible.
func NewClaimID() string {
	u := uuid.New()
	return fmt.Sprintf("CLM-%s", strings.ToUpper(u.String()[:8]))
}
