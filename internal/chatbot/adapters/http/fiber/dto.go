package fiber

type ReportRowResponse struct {
	Label       string   `json:"label"`
	TotalCount  int      `json:"total_count"`
	UniqueUsers int      `json:"unique_users"`
	Users       []string `json:"users"`
	LastSeen    string   `json:"last_seen"`
}

type UsageReportResponse struct {
	TotalInteractions int                 `json:"total_interactions"`
	TotalRows         int                 `json:"total_rows"`
	TotalUniqueUsers  int                 `json:"total_unique_users"`
	AveragePerUser    float64             `json:"average_per_user"`
	TopTen            []ReportRowResponse `json:"top_ten"`
	Page              int                 `json:"page"`
	TotalPages        int                 `json:"total_pages"`
	Rows              []ReportRowResponse `json:"rows"`
	GeneratedAt       string              `json:"generated_at"`
}

type AnswerEntryResponse struct {
	ID          string `json:"id"`
	Option      string `json:"option,omitempty"`
	Description string `json:"description,omitempty"`
	Text        string `json:"text"`
}

type MenuAnswersResponse struct {
	MenuID  string                `json:"menu_id"`
	Submenu string                `json:"submenu"`
	Entries []AnswerEntryResponse `json:"entries"`
}

type SaveAnswerRequest struct {
	Text string `json:"text"`
}

type SaveAnswerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"store_unavailable"`
	Message string `json:"message" example:"could not reach the chatbot data store"`
}
