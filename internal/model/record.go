package model

import "time"

// TimeLayout is the uniform created_at format used in every output table.
const TimeLayout = "2006-01-02 15:04:05"

// ImputeMethod records which imputation strategy produced a synthetic created_at.
type ImputeMethod string

const (
	// MethodSameEvent samples from known timestamps within the record's event group.
	MethodSameEvent ImputeMethod = "same_event_sample"
	// MethodGlobal samples from all known timestamps in the current table.
	MethodGlobal ImputeMethod = "global_sample"
	// MethodFallback assigns the fixed fallback constant (no jitter).
	MethodFallback ImputeMethod = "fixed_fallback"
)

// Informativeness labels carried by the one source that provides them.
const (
	RelatedInformative    = "related_informative"
	RelatedNotInformative = "related_not_informative"
	NotRelated            = "not_related"
)

// Record is the canonical schema every source is standardized into.
// String fields use "" as null; CreatedAt uses the zero time as missing
// until the imputer runs, after which it is never zero.
type Record struct {
	Text            string
	CreatedAt       time.Time
	EventName       string
	EventType       string
	CrisisLabel     bool
	SourceDataset   string
	Informativeness string
	EmotionLabel    string
	Imputed         bool
	ImputedMethod   ImputeMethod
}

// MissingTimestamp reports whether the record still lacks a created_at value.
func (r *Record) MissingTimestamp() bool {
	return r.CreatedAt.IsZero()
}

// Columns is the canonical column order of standardized and master tables.
var Columns = []string{
	"text",
	"created_at",
	"event_name",
	"event_type",
	"crisis_label",
	"source_dataset",
	"informativeness",
	"emotion_label",
	"created_at_imputed",
	"created_at_imputed_method",
}

// Row renders the record in canonical column order.
func (r *Record) Row() []string {
	created := ""
	if !r.CreatedAt.IsZero() {
		created = r.CreatedAt.UTC().Format(TimeLayout)
	}
	crisis := "0"
	if r.CrisisLabel {
		crisis = "1"
	}
	imputed := "false"
	if r.Imputed {
		imputed = "true"
	}
	return []string{
		r.Text,
		created,
		r.EventName,
		r.EventType,
		crisis,
		r.SourceDataset,
		r.Informativeness,
		r.EmotionLabel,
		imputed,
		string(r.ImputedMethod),
	}
}
