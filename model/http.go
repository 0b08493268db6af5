package model

type AnalyzeRequestBody struct {
	Chords   []Notes `json:"chords"`
	UseFlats bool    `json:"use_flats"`
	UseSlash bool    `json:"use_slash"`
}

type AnalyzeResponse struct {
	Results []DetailedAnalysis `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
