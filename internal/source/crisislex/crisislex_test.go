package crisislex

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/braid/internal/engine/classifier"
	"github.com/crimson-sun/braid/internal/engine/imputer"
	"github.com/crimson-sun/braid/internal/engine/prng"
	"github.com/crimson-sun/braid/internal/model"
)

func newAdapter(t *testing.T) *Adapter {
	t.Helper()
	cls, err := classifier.New(classifier.DefaultRules(), nil, nil)
	require.NoError(t, err)
	imp := imputer.New(prng.New(42, prng.StreamImputer, "crisislex"), 6*time.Hour, time.Date(2018, 6, 30, 23, 53, 8, 0, time.UTC))
	return New(cls, imp)
}

func writeCSV(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crisislex_all_complete.csv")
	data := "Tweet Text,created_at,event_name,Informativeness\n" + rows
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestStandardize(t *testing.T) {
	path := writeCSV(t,
		"Bridge washed out near downtown,2013-06-21 14:00:00,alberta_floods_2013,Related and informative\n"+
			"Thoughts and prayers,2013-06-21 15:00:00,alberta_floods_2013,Related - but not informative\n"+
			"Unrelated chatter,2013-06-22 09:00:00,alberta_floods_2013,Not related\n"+
			"No timestamp on this one,,alberta_floods_2013,\n")

	res, err := newAdapter(t).Standardize(path)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Stats.RowsRead)
	assert.Equal(t, 3, res.Stats.ParsedTimes)
	assert.Equal(t, 1, res.Stats.Missing)
	require.Len(t, res.Records, 4)

	for _, r := range res.Records {
		assert.True(t, r.CrisisLabel)
		assert.Equal(t, "crisislex", r.SourceDataset)
		assert.Equal(t, "flood", r.EventType)
		assert.False(t, r.MissingTimestamp())
	}

	assert.Equal(t, model.RelatedInformative, res.Records[0].Informativeness)
	assert.Equal(t, model.RelatedNotInformative, res.Records[1].Informativeness)
	assert.Equal(t, model.NotRelated, res.Records[2].Informativeness)
	assert.Equal(t, "", res.Records[3].Informativeness)

	imputed := res.Records[3]
	assert.True(t, imputed.Imputed)
	assert.Equal(t, model.MethodSameEvent, imputed.ImputedMethod)
}

func TestStandardizeMissingFile(t *testing.T) {
	_, err := newAdapter(t).Standardize(filepath.Join(t.TempDir(), "absent.csv"))
	assert.True(t, errors.Is(err, model.ErrSourceMissing))
}

func TestCleanInformativeness(t *testing.T) {
	cases := map[string]string{
		"Related and informative":       model.RelatedInformative,
		"related - but not informative": model.RelatedNotInformative,
		"Not related":                   model.NotRelated,
		"Not applicable":                "",
		"":                              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanInformativeness(in), "input %q", in)
	}
}
