package csvio

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/braid/internal/model"
)

func sampleRecords() []model.Record {
	return []model.Record{
		{
			Text:            "Bridge washed out near downtown",
			CreatedAt:       time.Date(2013, 6, 21, 14, 0, 0, 0, time.UTC),
			EventName:       "alberta_floods_2013",
			EventType:       "flood",
			CrisisLabel:     true,
			SourceDataset:   "crisislex",
			Informativeness: model.RelatedInformative,
		},
		{
			Text:          "That really made my day",
			CreatedAt:     time.Date(2018, 6, 30, 23, 53, 8, 0, time.UTC),
			SourceDataset: "goemotions",
			EmotionLabel:  "joy",
			Imputed:       true,
			ImputedMethod: model.MethodFallback,
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	want := sampleRecords()
	require.NoError(t, WriteRecords(path, want))

	got, err := ReadRecords(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestWriteRecordsNewRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master_training_data_v1.csv")
	require.NoError(t, WriteRecordsNew(path, sampleRecords()))

	err := WriteRecordsNew(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to replace")

	// The original content survives the refused write.
	got, err := ReadRecords(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestWriteDatesOnlySchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crisislex_dates_only.csv")
	require.NoError(t, WriteDatesOnly(path, sampleRecords()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, datesOnlyColumns, rows[0])
	assert.Equal(t, []string{"0", "2013-06-21 14:00:00", "false", ""}, rows[1])
	assert.Equal(t, []string{"1", "2018-06-30 23:53:08", "true", "fixed_fallback"}, rows[2])
}

func TestReadRecordsMissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrSourceMissing)
}
