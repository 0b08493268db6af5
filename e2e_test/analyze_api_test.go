package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/chordex/cmd"
	"github.com/jsphweid/chordex/model"
	"github.com/stretchr/testify/assert"
)

func createAnalyzeReqBody(body model.AnalyzeRequestBody) io.Reader {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestAnalyzeEndpoint(t *testing.T) {
	body := createAnalyzeReqBody(model.AnalyzeRequestBody{
		Chords:   []model.Notes{{60, 64, 67}, {64, 67, 72}},
		UseSlash: true,
	})
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	w := httptest.NewRecorder()
	cmd.HandleAnalyze(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var analyzeResponse model.AnalyzeResponse
	err := json.Unmarshal(respBody, &analyzeResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal(model.AnalyzeResponse{
		Results: []model.DetailedAnalysis{
			{
				Chord: model.ChordResult{
					FullName:       "C",
					ChordName:      "C",
					BassNote:       "C",
					IsSlash:        false,
					RootPitchClass: 0,
					BassPitchClass: 0,
				},
				InversionType:     "root",
				NoteNames:         []string{"C", "E", "G"},
				IntervalsFromRoot: []int{0, 4, 7},
			},
			{
				Chord: model.ChordResult{
					FullName:       "C/E",
					ChordName:      "C",
					BassNote:       "E",
					IsSlash:        true,
					RootPitchClass: 0,
					BassPitchClass: 4,
				},
				InversionType:     "1st",
				NoteNames:         []string{"C", "E", "G"},
				IntervalsFromRoot: []int{0, 4, 7},
			},
		},
	}, analyzeResponse)
}

func TestAnalyzeEndpointRejectsEmptyBody(t *testing.T) {
	body := createAnalyzeReqBody(model.AnalyzeRequestBody{})
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	w := httptest.NewRecorder()
	cmd.HandleAnalyze(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var errResponse model.ErrorResponse
	err := json.Unmarshal(respBody, &errResponse)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal("Need at least one chord...", errResponse.Error)
}

func TestAnalyzeEndpointRejectsGarbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	cmd.HandleAnalyze(w, req)

	assert := assert.New(t)
	assert.Equal(400, w.Result().StatusCode)
}
