package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/adaptune/temper/constants"
	"github.com/adaptune/temper/db"
	"github.com/adaptune/temper/model"
	"github.com/adaptune/temper/solver"
	"github.com/adaptune/temper/tuning"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the solver over HTTP",
	Long:  `Serves the solver over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func readSolveBody(r *http.Request) (model.SolverInput, error) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return model.SolverInput{}, err
	}
	var input model.SolveRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		return model.SolverInput{}, err
	}
	return applyDefaults(input.Input), nil
}

func handleSolve(w http.ResponseWriter, r *http.Request) {
	input, err := readSolveBody(r)
	if err != nil {
		writeError(w, 400, "Could not parse request body: "+err.Error())
		return
	}
	res, err := solver.Run(input)
	if err != nil {
		writeError(w, 422, err.Error())
		return
	}
	json.NewEncoder(w).Encode(res)
}

func handleFrequencies(w http.ResponseWriter, r *http.Request) {
	input, err := readSolveBody(r)
	if err != nil {
		writeError(w, 400, "Could not parse request body: "+err.Error())
		return
	}
	res, err := solver.Run(input)
	if err != nil {
		writeError(w, 422, err.Error())
		return
	}
	freqs := tuning.NotesToFrequencies(res.NotesCents, input.BaseFrequencyHz)
	json.NewEncoder(w).Encode(model.FrequenciesResponse{Frequencies: freqs})
}

func handlePreset(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	presets, err := db.GetPresets([]string{name})
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	p, ok := presets[name]
	if !ok {
		writeError(w, 404, fmt.Sprintf("No preset named %v", name))
		return
	}
	json.NewEncoder(w).Encode(p)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/solve", handleSolve).Methods("POST")
	router.HandleFunc("/frequencies", handleFrequencies).Methods("POST")
	router.HandleFunc("/presets/{name}", handlePreset).Methods("GET")
	router.HandleFunc("/rpc", handleRpc).Methods("POST")

	handler := cors.Default().Handler(router)
	addr := constants.GetListenAddr()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
