// Package reports renders the donation collection as a downloadable report.
//
// The admin UI requests csv, xlsx, or pdf. Only CSV rendering exists: the
// other two formats receive the same CSV bytes under a filename with the
// requested extension and the CSV content type. Known limitation, kept on
// purpose until real xlsx/pdf rendering lands.
package reports

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	donationsdomain "donation-hub-go/internal/domain/donations"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat maps the request parameter onto a known format, defaulting
// to CSV for anything unrecognized.
func ParseFormat(value string) Format {
	switch Format(value) {
	case FormatXLSX, FormatPDF:
		return Format(value)
	default:
		return FormatCSV
	}
}

func (f Format) Filename() string {
	return "donations-report." + string(f)
}

// ContentType is text/csv for every format; see the package comment.
func (f Format) ContentType() string {
	return "text/csv"
}

// donationHeader is the fixed export column set. Order is part of the
// report contract consumed by the admin dashboard.
var donationHeader = []string{
	"id", "amount", "currency", "donorName", "donorEmail",
	"source", "campaignId", "category", "status", "createdAt",
}

// WriteDonationsCSV writes the full, unfiltered donation collection as CSV,
// one row per donation in the order given (newest first from the store).
func WriteDonationsCSV(w io.Writer, donations []donationsdomain.Donation) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(donationHeader); err != nil {
		return err
	}

	for _, d := range donations {
		record := []string{
			d.ID,
			strconv.FormatFloat(d.Amount, 'f', -1, 64),
			d.Currency,
			d.DonorName,
			d.DonorEmail,
			d.Source,
			d.CampaignID,
			d.Category,
			d.Status,
			d.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
