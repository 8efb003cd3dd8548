// Package pipeline wires the standardization, sampling, and combination
// stages into one batch run. Each stage fully materializes its output
// before the next starts; later stages need complete per-source
// statistics, so there is no streaming overlap.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crimson-sun/braid/internal/config"
	"github.com/crimson-sun/braid/internal/engine/classifier"
	"github.com/crimson-sun/braid/internal/engine/imputer"
	"github.com/crimson-sun/braid/internal/engine/prng"
	"github.com/crimson-sun/braid/internal/engine/sampler"
	"github.com/crimson-sun/braid/internal/engine/taxonomy"
	"github.com/crimson-sun/braid/internal/model"
	"github.com/crimson-sun/braid/internal/output/csvio"
	"github.com/crimson-sun/braid/internal/source"
	"github.com/crimson-sun/braid/internal/source/crisislex"
	"github.com/crimson-sun/braid/internal/source/goemotions"
	"github.com/crimson-sun/braid/internal/source/humaid"
	"github.com/crimson-sun/braid/internal/source/noncrisis"
)

// Output filenames produced under the configured output directory.
const (
	crisisCombinedFile    = "crisis_combined.csv"
	nonCrisisCombinedFile = "non_crisis_combined.csv"
)

// Pipeline holds the validated components shared by all stages.
type Pipeline struct {
	cfg      config.Config
	log      *zap.Logger
	cls      *classifier.Classifier
	tax      *taxonomy.Taxonomy
	fallback time.Time
}

// New validates all mapping tables and builds the pipeline. Table
// violations surface here, before any row is processed.
func New(cfg config.Config, log *zap.Logger) (*Pipeline, error) {
	rules := classifier.DefaultRules()
	if cfg.RulesPath != "" {
		loaded, err := classifier.LoadRules(cfg.RulesPath)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}
	overrides := make(map[string]string, len(cfg.Sources.NonCrisis))
	for _, t := range cfg.Sources.NonCrisis {
		overrides[t.Name] = t.EventType
	}
	cls, err := classifier.New(rules, overrides, log)
	if err != nil {
		return nil, err
	}
	tax, err := taxonomy.New(taxonomy.DefaultMapping())
	if err != nil {
		return nil, err
	}
	fallback, err := cfg.FallbackTime()
	if err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, log: log, cls: cls, tax: tax, fallback: fallback}, nil
}

// NewReport starts a run report.
func (p *Pipeline) NewReport() *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Seed:      p.cfg.Seed,
		StartedAt: time.Now().UTC(),
		FullWrite: p.cfg.WriteFull,
	}
}

// FinishReport stamps, persists, and logs the run report.
func (p *Pipeline) FinishReport(rep *Report) (string, error) {
	rep.FinishedAt = time.Now().UTC()
	rep.Log(p.log)
	path, err := rep.Write(p.cfg.OutputDir)
	if err != nil {
		return "", err
	}
	p.log.Info("run report written", zap.String("path", path), zap.String("run_id", rep.RunID))
	return path, nil
}

// boundAdapter pairs an adapter with its configured input file.
type boundAdapter struct {
	source.Adapter
	file string
}

// adapters builds every adapter in a fixed order, each with its own
// imputer sub-stream derived from the master seed.
func (p *Pipeline) adapters() []boundAdapter {
	bound := []boundAdapter{
		{humaid.New(p.cls, p.imputerFor("humaid")), p.cfg.Sources.HumAID},
		{crisislex.New(p.cls, p.imputerFor("crisislex")), p.cfg.Sources.CrisisLex},
		{goemotions.New(p.tax, p.imputerFor("goemotions")), p.cfg.Sources.GoEmotions},
	}
	for _, t := range p.cfg.Sources.NonCrisis {
		bound = append(bound, boundAdapter{noncrisis.New(t, p.cls, p.imputerFor(t.Name)), t.Filename})
	}
	return bound
}

func (p *Pipeline) imputerFor(name string) *imputer.Imputer {
	return imputer.New(prng.New(p.cfg.Seed, prng.StreamImputer, name), p.cfg.Jitter(), p.fallback)
}

// Standardize runs every source adapter (or the named subset), writes the
// per-source standardized and dates-only tables, then assembles the
// crisis_combined and stratified non_crisis_combined tables. A failing
// source is recorded and skipped; sibling sources still run.
func (p *Pipeline) Standardize(rep *Report, only []string) error {
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("pipeline: create output dir: %w", err)
	}
	wanted := map[string]bool{}
	for _, n := range only {
		wanted[n] = true
	}

	var crisis, nonCrisis []model.Record
	for _, a := range p.adapters() {
		if len(wanted) > 0 && !wanted[a.Name()] {
			continue
		}
		in := filepath.Join(p.cfg.InputDir, a.file)
		p.log.Info("standardizing source", zap.String("source", a.Name()), zap.String("input", in))
		res, err := a.Standardize(in)
		if err != nil {
			p.log.Error("source standardization failed", zap.String("source", a.Name()), zap.Error(err))
			rep.addFailure(a, err)
			continue
		}
		if err := p.writeSource(a.Name(), res.Records); err != nil {
			return err
		}
		rep.addSource(a, res.Stats, len(res.Records))
		if a.Crisis() {
			crisis = append(crisis, res.Records...)
		} else if a.Name() != "goemotions" {
			nonCrisis = append(nonCrisis, res.Records...)
		}
	}

	if len(crisis) > 0 {
		if err := csvio.WriteRecords(filepath.Join(p.cfg.OutputDir, crisisCombinedFile), crisis); err != nil {
			return err
		}
	}
	if len(nonCrisis) > 0 {
		s := sampler.New(prng.New(p.cfg.Seed, prng.StreamSampler, ""), p.cfg.Cap)
		sampled, kept := s.Sample(nonCrisis)
		rep.Sampled = kept
		p.log.Info("non-crisis pool sampled",
			zap.Int("pool", len(nonCrisis)),
			zap.Int("sampled", len(sampled)),
			zap.Any("by_category", kept))
		if err := csvio.WriteRecords(filepath.Join(p.cfg.OutputDir, nonCrisisCombinedFile), sampled); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) writeSource(name string, records []model.Record) error {
	std := filepath.Join(p.cfg.OutputDir, name+"_standardized.csv")
	if err := csvio.WriteRecords(std, records); err != nil {
		return err
	}
	dates := filepath.Join(p.cfg.OutputDir, name+"_dates_only.csv")
	return csvio.WriteDatesOnly(dates, records)
}

// Combine unions the standardized goemotions, crisis, and sampled
// non-crisis tables into the master table, applies one deterministic
// shuffle, and writes the bounded previews plus (when enabled) the
// versioned full table.
func (p *Pipeline) Combine(rep *Report) error {
	var master []model.Record
	for _, file := range []string{"goemotions_standardized.csv", crisisCombinedFile, nonCrisisCombinedFile} {
		records, err := csvio.ReadRecords(filepath.Join(p.cfg.OutputDir, file))
		if err != nil {
			return err
		}
		p.log.Info("loaded table for combine", zap.String("file", file), zap.Int("rows", len(records)))
		master = append(master, records...)
	}

	shuffle(master, p.cfg.Seed)
	rep.MasterRows = len(master)
	p.log.Info("master table combined and shuffled", zap.Int("rows", len(master)))

	n := p.cfg.SampleSize
	if n > len(master) {
		n = len(master)
	}
	sample := make([]model.Record, n)
	copy(sample, master[:n])
	rep.SampleRows = n

	samplePath := filepath.Join(p.cfg.OutputDir, fmt.Sprintf("master_training_sample_%d.csv", p.cfg.SampleSize))
	if err := csvio.WriteRecords(samplePath, sample); err != nil {
		return err
	}

	if err := p.writeImputedSample(rep, master, sample); err != nil {
		return err
	}

	if p.cfg.WriteFull {
		fullPath := filepath.Join(p.cfg.OutputDir, fmt.Sprintf("master_training_data_%s.csv", p.cfg.MasterVersion))
		if err := csvio.WriteRecordsNew(fullPath, master); err != nil {
			return err
		}
		p.log.Info("full master table written", zap.String("path", fullPath), zap.Int("rows", len(master)))
	} else {
		p.log.Info("full master write disabled; previews only")
	}
	return nil
}

// writeImputedSample re-imputes preview rows whose timestamp is the fixed
// fallback sentinel, drawing from the pool of observed timestamps across
// the whole master table.
func (p *Pipeline) writeImputedSample(rep *Report, master, sample []model.Record) error {
	var pool []time.Time
	for i := range master {
		if !master[i].Imputed {
			pool = append(pool, master[i].CreatedAt)
		}
	}

	imputed := make([]model.Record, len(sample))
	copy(imputed, sample)
	for i := range imputed {
		if imputed[i].ImputedMethod == model.MethodFallback {
			imputed[i].CreatedAt = time.Time{}
		}
	}
	imp := imputer.New(prng.New(p.cfg.Seed, prng.StreamMasterImpute, ""), p.cfg.Jitter(), p.fallback)
	rep.Imputed = methodCounts(imp.ImputeFromPool(imputed, pool))

	path := filepath.Join(p.cfg.OutputDir, fmt.Sprintf("master_training_sample_%d_imputed.csv", p.cfg.SampleSize))
	return csvio.WriteRecords(path, imputed)
}

// shuffle applies one Fisher-Yates permutation from a derived seed, so
// consecutive training batches are not dominated by a single source.
func shuffle(records []model.Record, seed int64) {
	rng := prng.New(seed, prng.StreamShuffle, "")
	for i := len(records) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		records[i], records[j] = records[j], records[i]
	}
}
