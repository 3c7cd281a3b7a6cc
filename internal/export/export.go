// Package export writes tournament and transaction lists as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/abrezinsky/arena/internal/models"
)

// Format is an export file format
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
)

// ParseFormat validates a format name. An empty name means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", CSV:
		return CSV, nil
	case JSON:
		return JSON, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	if f == JSON {
		return "application/json"
	}
	return "text/csv"
}

// Filename builds "<prefix>-<unix millis>.<ext>"
func Filename(prefix string, f Format, now time.Time) string {
	return fmt.Sprintf("%s-%d.%s", prefix, now.UnixMilli(), f)
}

// Missing is written for absent or zero numeric cells
const Missing = "-"

var (
	tournamentHeader  = []string{"ID", "Title", "Status", "Participants", "Prize", "Rank"}
	transactionHeader = []string{"ID", "Type", "Amount", "Date", "Status"}
)

// Tournaments writes entries in the requested format
func Tournaments(w io.Writer, f Format, entries []models.TournamentEntry) error {
	if f == JSON {
		if entries == nil {
			entries = []models.TournamentEntry{}
		}
		return writeJSON(w, entries)
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.Title,
			string(e.Status),
			intOrMissing(e.Participants),
			floatOrMissing(e.Prize),
			intOrMissing(e.Rank),
		})
	}
	return writeCSV(w, tournamentHeader, rows)
}

// Transactions writes wallet transactions in the requested format
func Transactions(w io.Writer, f Format, txs []models.Transaction) error {
	if f == JSON {
		if txs == nil {
			txs = []models.Transaction{}
		}
		return writeJSON(w, txs)
	}
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.ID,
			string(tx.Type),
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
			tx.CreatedAt.UTC().Format(time.RFC3339),
			string(tx.Status),
		})
	}
	return writeCSV(w, transactionHeader, rows)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func intOrMissing(n int) string {
	if n == 0 {
		return Missing
	}
	return strconv.Itoa(n)
}

func floatOrMissing(v float64) string {
	if v == 0 {
		return Missing
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
