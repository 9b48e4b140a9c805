package optimizing

import (
	"time"

	"github.com/vfg2006/wb-promote-cli/internal/domain"
	"github.com/vfg2006/wb-promote-cli/pkg/clierrors"
	"github.com/vfg2006/wb-promote-cli/pkg/utils"
)

// maxRangeDays é o limite da API de estatísticas por intervalo
const maxRangeDays = 31

// ResolveDateRange resolve o intervalo de datas de uma execução. As duas
// datas vêm juntas ou nenhuma vem: com as duas omitidas o intervalo termina
// ontem e cobre defaultDays dias fechados. Datas no formato YYYY-MM-DD.
func ResolveDateRange(from, to string, defaultDays int, now time.Time) (domain.Period, []string, error) {
	if (from == "") != (to == "") {
		return domain.Period{}, nil, clierrors.New(
			clierrors.ErrInvalidDateRange,
			"--from and --to must be provided together",
		)
	}

	var startDate, endDate time.Time

	if from == "" {
		endDate = utils.TruncateToDay(now).AddDate(0, 0, -1)
		startDate = endDate.AddDate(0, 0, -(defaultDays - 1))
	} else {
		parsedFrom, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return domain.Period{}, nil, clierrors.Newf(
				clierrors.ErrInvalidDateRange,
				"invalid --from date %q: expected YYYY-MM-DD", from,
			)
		}
		parsedTo, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return domain.Period{}, nil, clierrors.Newf(
				clierrors.ErrInvalidDateRange,
				"invalid --to date %q: expected YYYY-MM-DD", to,
			)
		}
		startDate, endDate = parsedFrom, parsedTo
	}

	if startDate.After(endDate) {
		return domain.Period{}, nil, clierrors.New(
			clierrors.ErrInvalidDateRange,
			"--from must not be after --to",
		)
	}

	days := int(endDate.Sub(startDate).Hours()/24) + 1
	if days > maxRangeDays {
		return domain.Period{}, nil, clierrors.Newf(
			clierrors.ErrInvalidDateRange,
			"date range spans %d days, maximum is %d", days, maxRangeDays,
		)
	}

	dates := make([]string, 0, days)
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		dates = append(dates, date.Format(time.DateOnly))
	}

	period := domain.Period{
		From: startDate.Format(time.DateOnly),
		To:   endDate.Format(time.DateOnly),
		Days: days,
	}

	return period, dates, nil
}
