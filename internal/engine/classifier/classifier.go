// Package classifier maps (event_name, source_dataset) pairs to one of a
// closed set of general event types via an ordered keyword rule table.
package classifier

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/braid/internal/model"
)

// Other is the catch-all category for event names no rule matches.
const Other = "other"

// Categories is the closed event-type set. Rules and overrides may only
// target these.
var Categories = []string{
	"hurricane", "flood", "tornado", "wildfire", "haze",
	"earthquake", "tsunami", "landslide", "avalanche",
	"shooting", "bombing", "attack", "protest", "accident",
	"disease_outbreak", "drought", "heatwave", "sinkhole",
	"sports", "entertainment", "politics", Other,
}

// Rule maps any event name containing one of its keywords to Type.
// Rules evaluate in ascending Priority; equal priorities break ties by
// Type name so incidental list order never decides a match.
type Rule struct {
	Type     string   `yaml:"type"`
	Priority int      `yaml:"priority"`
	Keywords []string `yaml:"keywords"`
}

// Classifier applies source-level overrides first, then the rule table.
type Classifier struct {
	rules     []Rule
	overrides map[string]string
	log       *zap.Logger
}

// New validates the rule table and builds a classifier. Overrides map a
// source_dataset tag to a fixed category for datasets that are entirely
// one type. Table errors are configuration errors and fail fast.
func New(rules []Rule, overrides map[string]string, log *zap.Logger) (*Classifier, error) {
	if log == nil {
		log = zap.NewNop()
	}
	valid := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		valid[c] = true
	}
	for _, r := range rules {
		if !valid[r.Type] {
			return nil, fmt.Errorf("classifier: rule targets unknown category %q: %w", r.Type, model.ErrConfiguration)
		}
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("classifier: rule for %q has no keywords: %w", r.Type, model.ErrConfiguration)
		}
		for _, k := range r.Keywords {
			if strings.TrimSpace(k) == "" {
				return nil, fmt.Errorf("classifier: rule for %q has an empty keyword: %w", r.Type, model.ErrConfiguration)
			}
		}
	}
	for src, cat := range overrides {
		if !valid[cat] {
			return nil, fmt.Errorf("classifier: override for source %q targets unknown category %q: %w", src, cat, model.ErrConfiguration)
		}
	}

	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].Type < sorted[j].Type
	})

	return &Classifier{rules: sorted, overrides: overrides, log: log}, nil
}

// Classify returns the event type for an event name from the given source.
// Unmatched names map to Other and are logged for manual review; new
// events appear as datasets evolve, so this is never an error.
func (c *Classifier) Classify(eventName, sourceDataset string) string {
	if cat, ok := c.overrides[sourceDataset]; ok {
		return cat
	}
	name := strings.ToLower(eventName)
	for _, r := range c.rules {
		for _, k := range r.Keywords {
			if strings.Contains(name, k) {
				return r.Type
			}
		}
	}
	c.log.Warn("event name matched no rule, mapped to other",
		zap.String("event_name", eventName),
		zap.String("source_dataset", sourceDataset))
	return Other
}

// LoadRules reads a yaml rule table from disk.
func LoadRules(path string) ([]Rule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: read rules %s: %w", path, err)
	}
	var rules []Rule
	if err := yaml.Unmarshal(b, &rules); err != nil {
		return nil, fmt.Errorf("classifier: parse rules %s: %v: %w", path, err, model.ErrConfiguration)
	}
	return rules, nil
}
