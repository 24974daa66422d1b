package application

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/genpass/internal/domain/model"
)

func exportFixture() []model.CredentialResult {
	return []model.CredentialResult{
		{ID: "a1", CreatedAt: testTime, Username: "ShadowHunter", Password: "Abcdefgh1234", Favorite: true},
		{ID: "b2", CreatedAt: testTime.Add(time.Minute), Username: "IceKing77"},
		{ID: "c3", CreatedAt: testTime.Add(2 * time.Minute), Password: `pa"ss`},
	}
}

func TestExportText(t *testing.T) {
	got := ExportText(exportFixture(), testTime)

	assert.True(t, strings.HasPrefix(got, "GenPass Pro Export\nGenerated: 2/10/2026, 12:00:00 PM\nTotal Results: 3\n\n"))
	assert.Contains(t, got, strings.Repeat("=", 50))
	assert.Contains(t, got, "#1 - 12:00 PM\nUsername: ShadowHunter\nPassword: Abcdefgh1234 (Strong)\n")
	assert.Contains(t, got, "#2 - 12:01 PM\nUsername: IceKing77\n\n")
	assert.NotContains(t, got, "Username: \n")
}

func TestExportText_UsesOneTimeZone(t *testing.T) {
	newYork := time.FixedZone("EST", -5*60*60)

	got := ExportText(exportFixture(), testTime.In(newYork))

	assert.Contains(t, got, "Generated: 2/10/2026, 7:00:00 AM\n")
	assert.Contains(t, got, "#1 - 07:00 AM\n")
	assert.Contains(t, got, "#3 - 07:02 AM\n")
}

func TestExportCSV(t *testing.T) {
	got := ExportCSV(exportFixture())
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "Index,Timestamp,Username,Password,Password Strength", lines[0])
	assert.Equal(t, `1,"2026-02-10T12:00:00Z","ShadowHunter","Abcdefgh1234","Strong"`, lines[1])
	assert.Equal(t, `2,"2026-02-10T12:01:00Z","IceKing77","",""`, lines[2])
	assert.Equal(t, `3,"2026-02-10T12:02:00Z","","pa""ss","Weak"`, lines[3])
}

func TestExportJSON_RoundTrip(t *testing.T) {
	results := exportFixture()

	data, err := ExportJSON(results, testTime)
	require.NoError(t, err)

	doc, err := ParseExportJSON(data)
	require.NoError(t, err)

	assert.Equal(t, ExportGeneratorName, doc.Metadata.Generator)
	assert.Equal(t, ExportVersion, doc.Metadata.Version)
	assert.True(t, testTime.Equal(doc.Metadata.Exported))
	assert.Equal(t, len(results), doc.Metadata.TotalResults)
	require.Len(t, doc.Results, len(results))

	for i, r := range results {
		got := doc.Results[i]
		assert.Equal(t, i+1, got.Index)
		assert.Equal(t, r.ID, got.ID)
		assert.True(t, r.CreatedAt.Equal(got.Timestamp))
		assert.Equal(t, r.Favorite, got.Favorite)
		if r.HasUsername() {
			require.NotNil(t, got.Username)
			assert.Equal(t, r.Username, *got.Username)
		} else {
			assert.Nil(t, got.Username)
		}
		if r.HasPassword() {
			require.NotNil(t, got.Password)
			assert.Equal(t, r.Password, *got.Password)
			require.NotNil(t, got.PasswordStrength)
			assert.Equal(t, ScoreStrength(r.Password).Score, got.PasswordStrength.Score)
		} else {
			assert.Nil(t, got.Password)
			assert.Nil(t, got.PasswordStrength)
		}
	}
}

func TestExportJSON_NullsForAbsentValues(t *testing.T) {
	data, err := ExportJSON(exportFixture()[1:2], testTime)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"password": null`)
	assert.Contains(t, string(data), `"passwordStrength": null`)
}

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ExportFormat
		wantErr bool
	}{
		{in: "txt", want: FormatText},
		{in: "TEXT", want: FormatText},
		{in: "csv", want: FormatCSV},
		{in: " json ", want: FormatJSON},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseExportFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExportFilenameAndContentType(t *testing.T) {
	assert.Equal(t, "genpass-export-2026-02-10T12-00-00.csv", ExportFilename(FormatCSV, testTime))
	assert.Equal(t, "text/csv; charset=utf-8", FormatCSV.ContentType())
	assert.Equal(t, "application/json; charset=utf-8", FormatJSON.ContentType())
	assert.Equal(t, "text/plain; charset=utf-8", FormatText.ContentType())
}

func TestExport_Dispatch(t *testing.T) {
	for _, f := range []ExportFormat{FormatText, FormatCSV, FormatJSON} {
		data, err := Export(f, exportFixture(), testTime)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}

	_, err := Export(ExportFormat("pdf"), exportFixture(), testTime)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestClipboardText(t *testing.T) {
	got := ClipboardText(exportFixture())
	assert.Equal(t,
		"Username: ShadowHunter | Password: Abcdefgh1234\nUsername: IceKing77\nPassword: pa\"ss",
		got)
}
