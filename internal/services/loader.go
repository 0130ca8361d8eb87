package services

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"insights-dashboard/internal/models"
)

const (
	batchSize  = 10000
	maxWorkers = 10
)

// Expected columns:
// id,date,amount,country_code,country_name,store_id,store_name,product_id,product_name
const csvColumns = 9

// LoadCSV streams a transaction export from disk, parsing rows in batched
// worker pools. Rows that fail to parse are skipped and counted; an
// entirely invalid file is an error.
func LoadCSV(ctx context.Context, filename string, logger *slog.Logger) ([]models.Transaction, error) {
	start := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 10*1024*1024)

	// Skip header
	if !scanner.Scan() {
		return nil, fmt.Errorf("empty file")
	}

	var (
		transactions []models.Transaction
		skipped      int
	)

	batch := make([]string, 0, batchSize)
	flush := func() error {
		parsed, bad, err := parseBatch(ctx, batch)
		if err != nil {
			return err
		}
		transactions = append(transactions, parsed...)
		skipped += bad
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		batch = append(batch, scanner.Text())
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if len(batch) > 0 {
		if err := flush(); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan error: %w", err)
	}

	if len(transactions) == 0 {
		return nil, fmt.Errorf("no valid records found")
	}

	logger.Info("csv load complete",
		"filename", filename,
		"records", len(transactions),
		"skipped", skipped,
		"duration", time.Since(start),
	)

	return transactions, nil
}

func parseBatch(ctx context.Context, batch []string) ([]models.Transaction, int, error) {
	var wg errgroup.Group
	wg.SetLimit(maxWorkers)

	type parsedRow struct {
		tx    models.Transaction
		valid bool
	}

	// Each goroutine writes only its own slot, so no locking is needed
	// and input order is preserved.
	rows := make([]parsedRow, len(batch))

	for i, line := range batch {
		wg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tx, err := parseTransaction(strings.Split(line, ","))
			if err != nil {
				return nil // skip invalid rows
			}
			rows[i] = parsedRow{tx: tx, valid: true}
			return nil
		})
	}

	if err := wg.Wait(); err != nil {
		return nil, 0, err
	}

	out := make([]models.Transaction, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if !row.valid {
			skipped++
			continue
		}
		out = append(out, row.tx)
	}
	return out, skipped, nil
}

func parseTransaction(record []string) (models.Transaction, error) {
	if len(record) < csvColumns {
		return models.Transaction{}, fmt.Errorf("insufficient columns")
	}

	date := strings.TrimSpace(record[1])
	if _, err := time.Parse(dayFormat, date); err != nil {
		return models.Transaction{}, err
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return models.Transaction{}, err
	}
	if amount <= 0 {
		return models.Transaction{}, fmt.Errorf("non-positive amount")
	}

	return models.Transaction{
		ID:          strings.TrimSpace(record[0]),
		Date:        date,
		Amount:      amount,
		CountryCode: strings.TrimSpace(record[3]),
		CountryName: strings.TrimSpace(record[4]),
		StoreID:     strings.TrimSpace(record[5]),
		StoreName:   strings.TrimSpace(record[6]),
		ProductID:   strings.TrimSpace(record[7]),
		ProductName: strings.TrimSpace(record[8]),
	}, nil
}
