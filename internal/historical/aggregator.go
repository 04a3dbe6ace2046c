package historical

import (
	"context"
	"strconv"

	"election_dashboard/internal/election"
	"election_dashboard/internal/logger"
	"election_dashboard/internal/models"

	"github.com/prometheus/client_golang/prometheus"
)

// Aggregator сводит исторические строки в итоги по отслеживаемым годам.
type Aggregator struct {
	source  Source
	skipped prometheus.Counter
}

// NewAggregator создаёт агрегатор; skipped может быть nil.
func NewAggregator(source Source, skipped prometheus.Counter) *Aggregator {
	return &Aggregator{source: source, skipped: skipped}
}

// Results перечитывает источник и возвращает свежую агрегацию.
// При ошибке источника частичный результат не возвращается.
func (a *Aggregator) Results(ctx context.Context) ([]models.YearlyTally, error) {
	rows, err := a.source.Rows(ctx)
	if err != nil {
		return nil, err
	}

	tallies, skipped := Aggregate(rows)
	for _, row := range skipped {
		logger.Log.WithFields(logger.Fields{
			"line":     row.Line,
			"election": row.Election,
			"party":    row.Party,
			"seats":    row.Seats,
		}).Warn("Skipping historical row with non-numeric seats")
		if a.skipped != nil {
			a.skipped.Inc()
		}
	}
	return tallies, nil
}

// Aggregate возвращает ровно по одному итогу на каждый отслеживаемый год в порядке election.TrackedYears.
// Строки неотслеживаемых лет отбрасываются. Строки отслеживаемых лет с нечисловым Seats
// не учитываются и возвращаются вторым значением.
func Aggregate(rows []models.ElectionRow) ([]models.YearlyTally, []models.ElectionRow) {
	years := election.TrackedYears()
	tallies := make([]models.YearlyTally, len(years))
	index := make(map[string]int, len(years))
	for i, year := range years {
		tallies[i] = models.YearlyTally{Year: year}
		index[year] = i
	}

	var skipped []models.ElectionRow
	for _, row := range rows {
		i, ok := index[row.Election]
		if !ok {
			continue
		}

		seats, err := strconv.Atoi(row.Seats)
		if err != nil {
			skipped = append(skipped, row)
			continue
		}

		tallies[i].Add(election.Bucket(row.Party), seats)
	}
	return tallies, skipped
}
