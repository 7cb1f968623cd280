package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const billNoPrefix = "SALE"

// nextBillNo issues the next per-day sequence number, SALE-YYYYMMDD-NNNN.
// The sequence is best effort: a failed lookup falls back to an epoch-millis
// suffix, which stays unique without coordination at the cost of ordering.
// Concurrent saves on the same day can race to the same number; acceptable
// for a single till.
func (s *Service) nextBillNo(ctx context.Context) string {
	now := s.clock.Now()
	prefix := fmt.Sprintf("%s-%s-", billNoPrefix, now.Format("20060102"))

	latest, err := s.repo.LatestBillNo(ctx, s.db, prefix+"%")
	if err != nil {
		s.log.Warn("bill number lookup failed, using epoch fallback", zap.Error(err))
		return fmt.Sprintf("%s-%d", billNoPrefix, now.UnixMilli())
	}

	seq := 1
	if latest != "" {
		if idx := strings.LastIndex(latest, "-"); idx >= 0 {
			if parsed, perr := strconv.Atoi(latest[idx+1:]); perr == nil {
				seq = parsed + 1
			}
		}
	}

	return fmt.Sprintf("%s%04d", prefix, seq)
}
