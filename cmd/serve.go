package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analyzer over http",
	Long:  `Serves the analyzer over http`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, detail string, code int) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "Could not read request body: "+err.Error(), 400)
		return
	}

	var input model.AnalyzeRequestBody
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		writeError(w, "Could not unmarshal request body: "+err.Error(), 400)
		return
	}

	if len(input.Chords) == 0 {
		writeError(w, "Need at least one chord...", 400)
		return
	}

	var res model.AnalyzeResponse
	for _, notes := range input.Chords {
		da := chord.GetDetailedAnalysis(chord.IntNotes(notes), input.UseFlats, input.UseSlash)
		res.Results = append(res.Results, da)
	}
	json.NewEncoder(w).Encode(res)
}

func withRequestId(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		log.Printf("%v %v %v", id, r.Method, r.URL.Path)
		next(w, r)
	}
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", withRequestId(HandleAnalyze)).Methods("POST")
	handler := cors.Default().Handler(router)
	addr := ":" + constants.GetPort()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
