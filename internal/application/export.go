package application

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

// Export metadata written into every structured export.
const (
	ExportGeneratorName = "GenPass Pro"
	ExportVersion       = "1.0"
)

// ExportFormat identifies an export serialization.
type ExportFormat string

const (
	FormatText ExportFormat = "txt"
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
)

// ParseExportFormat maps a case-insensitive name onto an ExportFormat.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "text":
		return FormatText, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType returns the MIME type of the format.
func (f ExportFormat) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// ExportFilename returns the download file name for an export made at now,
// e.g. genpass-export-2026-02-10T12-00-00.csv.
func ExportFilename(f ExportFormat, now time.Time) string {
	return "genpass-export-" + now.UTC().Format("2006-01-02T15-04-05") + "." + string(f)
}

// Export serializes results in the given format.
func Export(f ExportFormat, results []model.CredentialResult, now time.Time) ([]byte, error) {
	switch f {
	case FormatText:
		return []byte(ExportText(results, now)), nil
	case FormatCSV:
		return []byte(ExportCSV(results)), nil
	case FormatJSON:
		return ExportJSON(results, now)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// ExportText renders results as a human-readable report. Result times are
// shown in the location of now so the report uses a single time zone.
func ExportText(results []model.CredentialResult, now time.Time) string {
	var b strings.Builder
	b.WriteString(ExportGeneratorName + " Export\n")
	b.WriteString("Generated: " + now.Format("1/2/2006, 3:04:05 PM") + "\n")
	b.WriteString("Total Results: " + strconv.Itoa(len(results)) + "\n\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for i, r := range results {
		fmt.Fprintf(&b, "#%d - %s\n", i+1, FormatClock(r.CreatedAt.In(now.Location())))
		if r.HasUsername() {
			b.WriteString("Username: " + r.Username + "\n")
		}
		if r.HasPassword() {
			fmt.Fprintf(&b, "Password: %s (%s)\n", r.Password, ScoreStrength(r.Password).Label)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatClock renders a timestamp as a two-digit 12-hour clock, e.g. "03:04 PM".
func FormatClock(t time.Time) string {
	return t.Format("03:04 PM")
}

// ExportCSV renders results as CSV with the header
// Index,Timestamp,Username,Password,Password Strength. Every field but the
// index is quoted and embedded quotes are doubled.
func ExportCSV(results []model.CredentialResult) string {
	var b strings.Builder
	b.WriteString("Index,Timestamp,Username,Password,Password Strength\n")

	for i, r := range results {
		strength := ""
		if r.HasPassword() {
			strength = string(ScoreStrength(r.Password).Label)
		}
		fields := []string{
			strconv.Itoa(i + 1),
			quoteCSV(r.CreatedAt.UTC().Format(time.RFC3339Nano)),
			quoteCSV(r.Username),
			quoteCSV(r.Password),
			quoteCSV(strength),
		}
		b.WriteString(strings.Join(fields, ",") + "\n")
	}

	return b.String()
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportDocument is the structured export representation.
type ExportDocument struct {
	Metadata ExportMetadata   `json:"metadata"`
	Results  []ExportedResult `json:"results"`
}

// ExportMetadata describes an export.
type ExportMetadata struct {
	Generator    string    `json:"generator"`
	Version      string    `json:"version"`
	Exported     time.Time `json:"exported"`
	TotalResults int       `json:"totalResults"`
}

// ExportedResult is one result of a structured export. Absent values encode as null.
type ExportedResult struct {
	Index            int               `json:"index"`
	ID               string            `json:"id"`
	Timestamp        time.Time         `json:"timestamp"`
	Username         *string           `json:"username"`
	Password         *string           `json:"password"`
	PasswordStrength *ExportedStrength `json:"passwordStrength"`
	Favorite         bool              `json:"favorite"`
}

// ExportedStrength is the strength of an exported password.
type ExportedStrength struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// ExportJSON renders results as an indented ExportDocument.
func ExportJSON(results []model.CredentialResult, now time.Time) ([]byte, error) {
	doc := ExportDocument{
		Metadata: ExportMetadata{
			Generator:    ExportGeneratorName,
			Version:      ExportVersion,
			Exported:     now.UTC(),
			TotalResults: len(results),
		},
		Results: make([]ExportedResult, 0, len(results)),
	}

	for i, r := range results {
		er := ExportedResult{
			Index:     i + 1,
			ID:        r.ID,
			Timestamp: r.CreatedAt.UTC(),
			Favorite:  r.Favorite,
		}
		if r.HasUsername() {
			er.Username = &r.Username
		}
		if r.HasPassword() {
			er.Password = &r.Password
			st := ScoreStrength(r.Password)
			er.PasswordStrength = &ExportedStrength{Score: st.Score, Label: string(st.Label)}
		}
		doc.Results = append(doc.Results, er)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// ParseExportJSON decodes a document produced by ExportJSON.
func ParseExportJSON(data []byte) (ExportDocument, error) {
	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return ExportDocument{}, fmt.Errorf("unmarshal export: %w", err)
	}
	return doc, nil
}

// ClipboardText renders results one per line as
// "Username: u | Password: p", omitting absent parts.
func ClipboardText(results []model.CredentialResult) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		var parts []string
		if r.HasUsername() {
			parts = append(parts, "Username: "+r.Username)
		}
		if r.HasPassword() {
			parts = append(parts, "Password: "+r.Password)
		}
		lines = append(lines, strings.Join(parts, " | "))
	}
	return strings.Join(lines, "\n")
}
