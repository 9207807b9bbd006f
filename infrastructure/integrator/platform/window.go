package platform

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

const DefaultMetricsDays = 7

// ResolveWindow devolve o intervalo do relatório. Datas explícitas são usadas como vieram;
// sem elas o intervalo termina ontem (UTC) e tem exatamente `days` dias.
func ResolveWindow(days int, startDate, endDate string, now time.Time) (domain.DateWindow, error) {
	if startDate != "" || endDate != "" {
		if startDate == "" || endDate == "" {
			return domain.DateWindow{}, errors.New("start_date and end_date must be provided together")
		}

		start, err := time.Parse(time.DateOnly, startDate)
		if err != nil {
			return domain.DateWindow{}, errors.Wrapf(err, "invalid start_date %q", startDate)
		}

		end, err := time.Parse(time.DateOnly, endDate)
		if err != nil {
			return domain.DateWindow{}, errors.Wrapf(err, "invalid end_date %q", endDate)
		}

		if end.Before(start) {
			return domain.DateWindow{}, errors.Errorf("end_date %s is before start_date %s", endDate, startDate)
		}

		return domain.DateWindow{Start: start, End: end}, nil
	}

	if days <= 0 {
		days = DefaultMetricsDays
	}

	utc := now.UTC()
	today := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	end := today.AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(days - 1))

	return domain.DateWindow{Start: start, End: end}, nil
}
