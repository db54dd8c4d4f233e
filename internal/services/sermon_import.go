package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/changil/changilweb-server/internal/models"
)

// ImportResult summarizes a sermon CSV import.
type ImportResult struct {
	TotalRows  int      `json:"totalRows"`
	Created    int      `json:"created"`
	Duplicates int      `json:"duplicates"`
	Errors     []string `json:"errors"`
}

var (
	titleColumns       = []string{"title", "제목"}
	typeColumns        = []string{"type", "타입", "구분"}
	urlColumns         = []string{"youtubeurl", "youtube url", "url", "유튜브"}
	dateColumns        = []string{"date", "날짜"}
	descriptionColumns = []string{"description", "설명"}
	orderColumns       = []string{"order", "순서"}
)

// ImportSermons reads sermons from CSV and registers each row through svc,
// so rows go through the same validation and duplicate check as the admin
// form. Bad rows are recorded in the result and skipped. Dates are read in
// loc.
func ImportSermons(ctx context.Context, svc SermonService, r io.Reader, loc *time.Location) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	titleIdx := findColumnIndex(header, titleColumns)
	typeIdx := findColumnIndex(header, typeColumns)
	urlIdx := findColumnIndex(header, urlColumns)
	if titleIdx == -1 || typeIdx == -1 || urlIdx == -1 {
		return nil, errors.New("title, type and youtubeUrl columns are required")
	}
	dateIdx := findColumnIndex(header, dateColumns)
	descIdx := findColumnIndex(header, descriptionColumns)
	orderIdx := findColumnIndex(header, orderColumns)

	result := &ImportResult{Errors: []string{}}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		result.TotalRows++

		req, err := sermonRow(row, titleIdx, typeIdx, urlIdx, dateIdx, descIdx, orderIdx, loc)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}

		if _, err := svc.Create(ctx, req); err != nil {
			if errors.Is(err, ErrDuplicate) {
				result.Duplicates++
				continue
			}
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		result.Created++
	}
	return result, nil
}

func sermonRow(row []string, titleIdx, typeIdx, urlIdx, dateIdx, descIdx, orderIdx int, loc *time.Location) (*models.SermonRequest, error) {
	title := cell(row, titleIdx)
	sermonType := models.SermonType(cell(row, typeIdx))
	youtubeURL := cell(row, urlIdx)
	req := &models.SermonRequest{
		Title:      &title,
		Type:       &sermonType,
		YoutubeURL: &youtubeURL,
	}

	if desc := cell(row, descIdx); desc != "" {
		req.Description = &desc
	}
	if raw := cell(row, dateIdx); raw != "" {
		date, err := models.ParseDate(raw, loc)
		if err != nil {
			return nil, err
		}
		req.Date = models.DateInput{Set: true, Valid: true, Time: date}
	}
	if raw := cell(row, orderIdx); raw != "" {
		order, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid order %q", raw)
		}
		req.Order = &order
	}
	return req, nil
}

// findColumnIndex returns the index of the first header matching one of
// names, ignoring case and surrounding space, or -1.
func findColumnIndex(header []string, names []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for _, name := range names {
			if h == name {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
