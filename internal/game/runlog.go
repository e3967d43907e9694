package game

import (
	"encoding/json"
	"io"
)

// BoutRecord summarises one finished bout.
type BoutRecord struct {
	ID        string `json:"id"`
	Arena     string `json:"arena"`
	Seed      int64  `json:"seed"`
	First     string `json:"first"`
	Second    string `json:"second"`
	Winner    string `json:"winner,omitempty"`
	Turns     int    `json:"turns"`
	Looted    int    `json:"looted"`
	Ducats    uint64 `json:"ducats"`
	Dropped   int    `json:"dropped"`
	Destroyed int    `json:"destroyed"`
	Stalemate bool   `json:"stalemate,omitempty"`
}

// writeRecord appends rec to w as a single JSON line.
func writeRecord(w io.Writer, rec BoutRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
