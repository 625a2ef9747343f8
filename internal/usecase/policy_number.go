package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"insurance_portal/internal/domain/entities"

	"github.com/google/uuid"
)

const policyNumberAttempts = 5

var ErrPolicyNumberExhausted = errors.New("could not allocate a unique policy number")

// policyNumberPrefix is IND for individual quotes and GRP for group quotes.
func policyNumberPrefix(t entities.QuoteType) string {
	if t == entities.QuoteTypeGroup {
		return "GRP"
	}
	return "IND"
}

// formatPolicyNumber renders PREFIX-YYYYMMDD-XXXXXXXX where the suffix is
// the first 8 hex characters of id, uppercased.
func formatPolicyNumber(prefix string, day time.Time, id string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return prefix + "-" + day.Format("20060102") + "-" + suffix
}

func randomSuffixSource() string {
	return uuid.NewString()
}

// nextPolicyNumber retries on collision up to policyNumberAttempts times.
func (u *ConversionUseCase) nextPolicyNumber(ctx context.Context, t entities.QuoteType) (string, error) {
	prefix := policyNumberPrefix(t)
	for i := 0; i < policyNumberAttempts; i++ {
		number := formatPolicyNumber(prefix, u.now(), u.newID())
		taken, err := u.policies.PolicyNumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}
	return "", ErrPolicyNumberExhausted
}
