package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordkey/analysis"
	"github.com/jsphweid/chordkey/constants"
	"github.com/jsphweid/chordkey/examples"
	"github.com/jsphweid/chordkey/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis API",
	Long:  `Serves the analysis API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "Could not read request body", 400)
		return
	}

	var input model.AnalyzeRequestBody
	if err = json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, "Could not unmarshal request body: "+err.Error(), 400)
		return
	}

	res := analysis.Run(input.Progression)

	var key *string
	if res.Key != "" {
		key = &res.Key
	}
	json.NewEncoder(w).Encode(model.AnalyzeResponse{
		Key:      key,
		Analysis: res.Analysis,
	})
}

func HandleExamples(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(examples.All)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	router.HandleFunc("/examples", HandleExamples).Methods("GET")

	addr := ":" + constants.GetPort()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, cors.Default().Handler(router)))
}
