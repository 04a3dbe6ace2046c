package historical

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"election_dashboard/internal/models"
)

var (
	// ErrRead — источник таблицы недоступен.
	ErrRead = errors.New("historical data unavailable")
	// ErrMalformed — структура таблицы не распознана.
	ErrMalformed = errors.New("malformed historical data")
)

// Source отдаёт строки исторической таблицы целиком.
type Source interface {
	Rows(ctx context.Context) ([]models.ElectionRow, error)
}

// CSVSource читает таблицу из CSV-файла при каждом вызове Rows.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Rows открывает файл и разбирает его через ReadRows.
func (s *CSVSource) Rows(ctx context.Context) ([]models.ElectionRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	return ReadRows(ctx, f)
}

// ReadRows разбирает CSV с обязательной строкой заголовка.
// Колонки Election, Party и Seats ищутся по имени без учёта регистра; прочие колонки игнорируются.
// Пустые строки пропускаются.
func ReadRows(ctx context.Context, r io.Reader) ([]models.ElectionRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// число полей проверяется только по нужным колонкам
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrMalformed, err)
	}

	headerMap := make(map[string]int, len(headers))
	for i, header := range headers {
		headerMap[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header, "\ufeff")))] = i
	}

	var idx [3]int
	for i, name := range []string{"election", "party", "seats"} {
		col, ok := headerMap[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing %q column in header %v", ErrMalformed, name, headers)
		}
		idx[i] = col
	}

	var rows []models.ElectionRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}

		row := models.ElectionRow{Line: line}
		if idx[0] < len(record) {
			row.Election = strings.TrimSpace(record[idx[0]])
		}
		if idx[1] < len(record) {
			row.Party = strings.TrimSpace(record[idx[1]])
		}
		if idx[2] < len(record) {
			row.Seats = strings.TrimSpace(record[idx[2]])
		}
		rows = append(rows, row)
	}
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
