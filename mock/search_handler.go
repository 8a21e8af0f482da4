package main

import (
	"encoding/json"
	"net/http"
	"os"
	"sort"
	"strings"
)

// fixturePath is relative to the repository root, where the mock is started from.
var fixturePath = "mock/files/search_response.json"

type SearchResponse struct {
	Results  int      `json:"_results"`
	Currency string   `json:"currency"`
	Data     []Flight `json:"data"`
}

type Flight struct {
	BookingToken string   `json:"booking_token"`
	FlyFrom      string   `json:"flyFrom"`
	FlyTo        string   `json:"flyTo"`
	Price        float64  `json:"price"`
	Duration     Duration `json:"duration"`
	Route        []Leg    `json:"route"`
}

type Duration struct {
	Total int64 `json:"total"`
}

type Leg struct {
	CityFrom string `json:"cityFrom"`
	FlyFrom  string `json:"flyFrom"`
	CityTo   string `json:"cityTo"`
	FlyTo    string `json:"flyTo"`
}

func SearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	if q.Get("flyFrom") == "" || q.Get("dateFrom") == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "flyFrom and dateFrom are required"})
		return
	}

	data, err := os.ReadFile(fixturePath)
	if err != nil {
		http.Error(w, "Failed to read flight data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var fileResponse SearchResponse
	if err := json.Unmarshal(data, &fileResponse); err != nil {
		http.Error(w, "Failed to parse flight data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filtered := make([]Flight, 0)
	for _, f := range fileResponse.Data {
		if !strings.EqualFold(f.FlyFrom, q.Get("flyFrom")) {
			continue
		}
		if to := q.Get("to"); to != "" && !strings.EqualFold(f.FlyTo, to) {
			continue
		}
		filtered = append(filtered, f)
	}

	switch q.Get("sort") {
	case "duration":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Duration.Total < filtered[j].Duration.Total
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SearchResponse{
		Results:  len(filtered),
		Currency: fileResponse.Currency,
		Data:     filtered,
	})
}
