package usecases

import (
	"context"
	"time"

	"netbill/internal/application/subscription/dto"
	"netbill/internal/domain/subscription"
	"netbill/internal/shared/biztime"
	"netbill/internal/shared/errors"
	"netbill/internal/shared/logger"
)

type RenewalStatsQuery struct {
	Year  int
	Month int
}

type RenewalStatsUseCase struct {
	renewalRepo subscription.RenewalRepository
	logger      logger.Interface
}

func NewRenewalStatsUseCase(
	renewalRepo subscription.RenewalRepository,
	logger logger.Interface,
) *RenewalStatsUseCase {
	return &RenewalStatsUseCase{
		renewalRepo: renewalRepo,
		logger:      logger,
	}
}

// Execute aggregates renewal count, revenue, and average amount over the
// given month. Year and month default to the current month when zero.
func (uc *RenewalStatsUseCase) Execute(ctx context.Context, query RenewalStatsQuery) (*dto.RenewalStatsDTO, error) {
	now := biztime.NowUTC()
	year := query.Year
	month := query.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, errors.NewValidationError("month must be between 1 and 12")
	}

	from := biztime.StartOfMonthUTC(year, time.Month(month))
	to := biztime.EndOfMonthUTC(year, time.Month(month))

	stats, err := uc.renewalRepo.Stats(ctx, from, to)
	if err != nil {
		uc.logger.Errorw("failed to aggregate renewal stats", "error", err, "year", year, "month", month)
		return nil, errors.NewInternalError("failed to aggregate renewal stats")
	}

	return &dto.RenewalStatsDTO{
		Year:          year,
		Month:         month,
		Count:         stats.Count,
		TotalRevenue:  stats.TotalRevenue,
		AverageAmount: stats.AverageAmount,
	}, nil
}
