package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"techlympics-stats/storage"
	"techlympics-stats/store"
	"techlympics-stats/utils"
)

// NewRouter wires the statistics endpoints. archiver may be nil.
func NewRouter(sc StatsController, src store.ParticipationSource, archiver storage.Archiver) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, map[string]string{"status": "ok"})
	}).Methods("GET")
	router.HandleFunc("/stats", sc.ListKinds()).Methods("GET")
	router.HandleFunc("/stats/{kind}", sc.GetReport(src)).Methods("GET")
	router.HandleFunc("/stats/{kind}/archive", sc.ArchiveReport(src, archiver)).Methods("POST")
	if sc.Metrics != nil {
		router.Handle("/metrics", sc.Metrics.Handler()).Methods("GET")
	}
	return router
}
