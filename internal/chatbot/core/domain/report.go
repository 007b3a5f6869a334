package domain

// ReportRow is one aggregated (option, label) bucket of the usage report.
type ReportRow struct {
	Label       string
	TotalCount  int
	UniqueUsers int
	Users       []string
	LastSeen    string
}

// UsageReport is the full payload produced for one report view.
type UsageReport struct {
	TotalInteractions int
	TotalRows         int
	TotalUniqueUsers  int
	AveragePerUser    float64
	TopTen            []ReportRow

	Page        int
	TotalPages  int
	Rows        []ReportRow // rows of the requested page
	GeneratedAt string
}

// MenuAnswers is the editable answer set of one menu, as shown in the editor.
type MenuAnswers struct {
	MenuID  string
	Submenu string
	Entries []AnswerEntry
}

// AnswerEntry is one editable answer. Option is empty for direct menus.
type AnswerEntry struct {
	ID          string
	Option      string
	Description string
	Text        string
}
