package fiber

// CompletionPointResponse is one point of the completion chart
// @Description Completions in one period
type CompletionPointResponse struct {
	Period      string `json:"period" example:"2024-W02"`
	Key         string `json:"key" example:"2024-W02"`
	Completions int    `json:"completions" example:"3"`
}

// BeliefPointResponse is one point of the belief score chart
// @Description Average belief score in one period
type BeliefPointResponse struct {
	Period             string  `json:"period" example:"Jan 2024"`
	Key                string  `json:"key" example:"2024-01"`
	AverageBeliefScore float64 `json:"average_belief_score" example:"7.5"`
}

type TrendsResponse struct {
	Granularity      string                    `json:"granularity" example:"week"`
	CompletionSeries []CompletionPointResponse `json:"completion_series"`
	BeliefSeries     []BeliefPointResponse     `json:"belief_series"`
	Excluded         int                       `json:"excluded"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid time zone"`
}
