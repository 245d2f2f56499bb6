// internal/api/verifications.go
package api

import (
	"context"
	"fmt"

	"afcare-client/internal/models"
)

type VerificationsService struct {
	*Resource[models.Verification]
}

// Submit creates a verification, computing the bankability overall score
// client-side at submit time. A V3 submission must carry all four
// sub-scores; lower levels may omit the bankability block entirely.
func (s *VerificationsService) Submit(ctx context.Context, draft models.Verification) (*models.Verification, error) {
	if draft.Level == models.LevelV3BankabilityScreened {
		if draft.Bankability == nil {
			return nil, fmt.Errorf("verification level %q requires bankability sub-scores", draft.Level)
		}
		draft.Bankability.ComputeOverall()
	}
	return s.Create(ctx, draft)
}
