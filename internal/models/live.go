package models

import "time"

// LiveResults — снимок текущих объявленных мест, который опрашивает дашборд.
type LiveResults struct {
	Seats       map[string]int `json:"seats"`
	LastUpdated time.Time      `json:"lastUpdated"`
}
