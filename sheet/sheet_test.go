package sheet_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxrxiaoha/checkInRecord/internal/record"
	"github.com/zxrxiaoha/checkInRecord/sheet"
)

func rec(t *testing.T, content string, makeup bool) *record.Record {
	t.Helper()

	start := time.Date(2026, time.August, 20, 9, 30, 0, 0, time.Local)

	r, err := record.New(start, start.Add(8*time.Hour), content, makeup)
	require.NoError(t, err)

	return r
}

func TestExport(t *testing.T) {
	var buf bytes.Buffer

	err := sheet.Export(&buf, []*record.Record{
		rec(t, "reviewed pull requests", false),
		rec(t, "made up a missed day", true),
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "datetime,content,duration,is_makeup", lines[0])
	assert.Equal(
		t,
		"2026-08-20 09:30:00,reviewed pull requests,08:00:00,false",
		lines[1],
	)
	assert.Equal(
		t,
		"2026-08-20 09:30:00,made up a missed day,08:00:00,true",
		lines[2],
	)
}

func TestImportRoundTrip(t *testing.T) {
	original := []*record.Record{
		rec(t, "wrote documentation", false),
		rec(t, "made up a missed day", true),
	}

	var buf bytes.Buffer

	require.NoError(t, sheet.Export(&buf, original))

	imported, err := sheet.Import(&buf)
	require.NoError(t, err)
	require.Len(t, imported, 2)

	for i, r := range imported {
		assert.True(t, r.StartTime.Equal(original[i].StartTime))
		assert.True(t, r.EndTime.Equal(original[i].EndTime))
		assert.Equal(t, original[i].Content, r.Content)
		assert.Equal(t, original[i].Duration, r.Duration)
		assert.Equal(t, original[i].IsMakeup, r.IsMakeup)

		// Imported rows carry fresh identities.
		assert.NotEmpty(t, r.ID)
		assert.NotEqual(t, original[i].ID, r.ID)
	}
}

func TestImportReorderedColumns(t *testing.T) {
	in := strings.NewReader(
		"content,is_makeup,duration,datetime\n" +
			"fixed the build,false,02:30:00,2026-08-20 14:00:00\n",
	)

	records, err := sheet.Import(in)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "fixed the build", records[0].Content)
	assert.Equal(t, "02:30:00", records[0].Duration)
}

func TestImportMissingColumn(t *testing.T) {
	in := strings.NewReader(
		"datetime,content\n2026-08-20 09:00:00,no duration column\n",
	)

	_, err := sheet.Import(in)

	assert.ErrorIs(t, err, sheet.ErrImportFormat)
}

func TestImportBadDatetime(t *testing.T) {
	in := strings.NewReader(
		"datetime,content,duration,is_makeup\n" +
			"yesterday morning,walked in,08:00:00,false\n",
	)

	_, err := sheet.Import(in)

	assert.ErrorIs(t, err, sheet.ErrImportFormat)
}

func TestImportBadDuration(t *testing.T) {
	in := strings.NewReader(
		"datetime,content,duration,is_makeup\n" +
			"2026-08-20 09:00:00,zero length,00:00:00,false\n",
	)

	_, err := sheet.Import(in)

	assert.ErrorIs(t, err, sheet.ErrImportFormat)
}

func TestImportEmptyFile(t *testing.T) {
	_, err := sheet.Import(strings.NewReader(""))

	assert.ErrorIs(t, err, sheet.ErrImportFormat)
}

func TestImportHeaderOnly(t *testing.T) {
	in := strings.NewReader("datetime,content,duration,is_makeup\n")

	records, err := sheet.Import(in)

	require.NoError(t, err)
	assert.Empty(t, records)
}
