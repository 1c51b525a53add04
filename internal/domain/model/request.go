package model

// SummaryLength hints how verbose server-side summaries should be.
type SummaryLength string

const (
	SummaryShort  SummaryLength = "short"
	SummaryMedium SummaryLength = "medium"
	SummaryLong   SummaryLength = "long"
)

const (
	DefaultCategory         = "technology"
	DefaultQuickArticles    = 5
	DefaultAnalysisArticles = 10
	DefaultSummaryLength    = SummaryMedium
)

// DefaultFocusAreas returns the focus areas sent when the caller omits them.
func DefaultFocusAreas() []string {
	return []string{"AI", "startups"}
}

// NewsQuery holds the query parameters of the quick news endpoint.
type NewsQuery struct {
	Category    string
	MaxArticles int
}

// WithDefaults fills zero-valued fields.
func (q NewsQuery) WithDefaults() NewsQuery {
	if q.Category == "" {
		q.Category = DefaultCategory
	}
	if q.MaxArticles == 0 {
		q.MaxArticles = DefaultQuickArticles
	}
	return q
}

// AnalysisRequest is the JSON body of the detailed summarization endpoint.
// Values are not validated client-side.
type AnalysisRequest struct {
	Category      string        `json:"category"`
	MaxArticles   int           `json:"maxArticles"`
	SummaryLength SummaryLength `json:"summaryLength"`
	FocusAreas    []string      `json:"focusAreas"`
}

// WithDefaults fills zero-valued fields. Only a nil FocusAreas is replaced;
// an explicitly empty slice is kept.
func (r AnalysisRequest) WithDefaults() AnalysisRequest {
	if r.Category == "" {
		r.Category = DefaultCategory
	}
	if r.MaxArticles == 0 {
		r.MaxArticles = DefaultAnalysisArticles
	}
	if r.SummaryLength == "" {
		r.SummaryLength = DefaultSummaryLength
	}
	if r.FocusAreas == nil {
		r.FocusAreas = DefaultFocusAreas()
	}
	return r
}
