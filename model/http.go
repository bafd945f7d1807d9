package model

type AnalyzeRequestBody struct {
	Progression string `json:"progression"`
}

type AnalyzeResponse struct {
	Key      *string         `json:"key"`
	Analysis []AnalysisEntry `json:"analysis"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
