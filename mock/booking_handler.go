package main

import (
	"encoding/json"
	"math/rand"
	"net/http"
)

type BookingRequest struct {
	Passengers   []json.RawMessage `json:"passengers"`
	Currency     string            `json:"currency"`
	BookingToken string            `json:"booking_token"`
}

const pnrAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func BookingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.BookingToken == "" || len(req.Passengers) == 0 {
		http.Error(w, "booking_token and passengers are required", http.StatusBadRequest)
		return
	}

	pnr := make([]byte, 7)
	for i := range pnr {
		pnr[i] = pnrAlphabet[rand.Intn(len(pnrAlphabet))]
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"pnr": string(pnr)})
}
