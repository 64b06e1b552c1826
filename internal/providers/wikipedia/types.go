package wikipedia

type summaryResponse struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}
