package types

// ScanBreakdown splits an ATS readiness score into its four categories.
// Contact is capped at 20, Sections at 40, Keywords at 30, Formatting at 10;
// the category sum equals the total score.
type ScanBreakdown struct {
	Contact    int `json:"contact"`
	Sections   int `json:"sections"`
	Keywords   int `json:"keywords"`
	Formatting int `json:"formatting"`
}

// ScanSignals holds informational detectors that back the score and the
// suggestion list. KeywordCoverage is the raw matched/total keyword fraction,
// 0 when no job description was supplied.
type ScanSignals struct {
	Email                 bool    `json:"email"`
	Phone                 bool    `json:"phone"`
	LinkedIn              bool    `json:"linkedin"`
	HasSummary            bool    `json:"hasSummary"`
	HasExperience         bool    `json:"hasExperience"`
	HasEducation          bool    `json:"hasEducation"`
	HasSkills             bool    `json:"hasSkills"`
	HasCerts              bool    `json:"hasCerts"`
	HasBullets            bool    `json:"hasBullets"`
	QuantifiedBulletCount int     `json:"quantifiedBulletCount"`
	KeywordCoverage       float64 `json:"keywordCoverage"`
}

// ScanResult is the output of one ATS scan. It is computed fresh on every
// call and never mutated afterwards.
type ScanResult struct {
	Score           int           `json:"score"`
	Breakdown       ScanBreakdown `json:"breakdown"`
	Signals         ScanSignals   `json:"signals"`
	WordCount       int           `json:"wordCount"`
	MatchedKeywords []string      `json:"matchedKeywords"`
	MissingKeywords []string      `json:"missingKeywords"`
	Suggestions     []string      `json:"suggestions"`
}
