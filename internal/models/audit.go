package models

import "time"

// Choice is an inspection verdict. The zero value means unanswered.
type Choice string

const (
	ChoiceYes        Choice = "Yes"
	ChoiceNo         Choice = "No"
	ChoiceNA         Choice = "N/A"
	ChoiceUnanswered Choice = ""
)

// AnswerRecord holds the mutable state for one checklist item. A record
// with no choice, empty notes and no photos is equivalent to absent.
type AnswerRecord struct {
	Ans    Choice   `json:"ans"`
	Notes  string   `json:"notes"`
	Photos []string `json:"photos"`
}

// Empty reports whether the record carries no information.
func (r *AnswerRecord) Empty() bool {
	return r == nil || (r.Ans == ChoiceUnanswered && r.Notes == "" && len(r.Photos) == 0)
}

// CoverField is one labelled cover-sheet value.
type CoverField struct {
	Label string `json:"field"`
	Value string `json:"value"`
}

// AuditState is the full application state: cover-sheet metadata, the
// access gate fields and the per-item answers. Its JSON form is the
// persisted snapshot and the import/export interchange document; field
// names are fixed so snapshots from the original mobile app import
// cleanly. Answer keys are catalog indices (encoded as strings in JSON).
type AuditState struct {
	Project    string                `json:"project"`
	Location   string                `json:"location"`
	GA3        string                `json:"ga3"`
	Inspector  string                `json:"inspector"`
	Date       string                `json:"date"`
	Weather    string                `json:"weather"`
	ScaffoldID string                `json:"scaffoldId"`
	PIN        string                `json:"pin"`
	Unlocked   bool                  `json:"unlocked"`
	Answers    map[int]*AnswerRecord `json:"answers"`
}

// DefaultState builds the state used when no snapshot exists: empty
// answers, today's date, the factory PIN, locked.
func DefaultState(defaultPIN string) *AuditState {
	return &AuditState{
		Date:    time.Now().Format("2006-01-02"),
		PIN:     defaultPIN,
		Answers: make(map[int]*AnswerRecord),
	}
}

// EnsureRecord returns the record at idx, creating it on first touch.
func (s *AuditState) EnsureRecord(idx int) *AnswerRecord {
	if s.Answers == nil {
		s.Answers = make(map[int]*AnswerRecord)
	}
	rec, ok := s.Answers[idx]
	if !ok {
		rec = &AnswerRecord{Photos: []string{}}
		s.Answers[idx] = rec
	}
	return rec
}

// AnsweredCount recomputes the number of answered items. Always derived
// from the map, never cached.
func (s *AuditState) AnsweredCount() int {
	count := 0
	for _, rec := range s.Answers {
		if rec != nil && rec.Ans != ChoiceUnanswered {
			count++
		}
	}
	return count
}

// NoCount recomputes the number of items marked "No".
func (s *AuditState) NoCount() int {
	count := 0
	for _, rec := range s.Answers {
		if rec != nil && rec.Ans == ChoiceNo {
			count++
		}
	}
	return count
}

// CoverFields returns the cover sheet in display order.
func (s *AuditState) CoverFields() []CoverField {
	return []CoverField{
		{Label: "Project / Site", Value: s.Project},
		{Label: "Location", Value: s.Location},
		{Label: "GA3 Reference", Value: s.GA3},
		{Label: "Inspector", Value: s.Inspector},
		{Label: "Date", Value: s.Date},
		{Label: "Weather / Wind", Value: s.Weather},
		{Label: "Scaffold ID / Area", Value: s.ScaffoldID},
	}
}

// Clone returns a deep copy. Callers receive copies so the single-writer
// state is never aliased outside the owning service.
func (s *AuditState) Clone() *AuditState {
	clone := *s
	clone.Answers = make(map[int]*AnswerRecord, len(s.Answers))
	for idx, rec := range s.Answers {
		if rec == nil {
			continue
		}
		recCopy := *rec
		recCopy.Photos = append([]string{}, rec.Photos...)
		clone.Answers[idx] = &recCopy
	}
	return &clone
}

// Normalize repairs shape quirks after decoding: nil answer maps and
// nil photo slices from hand-edited or older snapshots.
func (s *AuditState) Normalize() {
	if s.Answers == nil {
		s.Answers = make(map[int]*AnswerRecord)
	}
	for _, rec := range s.Answers {
		if rec != nil && rec.Photos == nil {
			rec.Photos = []string{}
		}
	}
}
