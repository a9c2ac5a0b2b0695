package model

import "time"

type Workout struct {
	ID              string `db:"ID" json:"id"`
	Title           string `db:"Title" json:"title"`
	Description     string `db:"Description" json:"description"`
	Category        string `db:"Category" json:"category"`
	Difficulty      string `db:"Difficulty" json:"difficulty"`
	DurationMinutes int    `db:"DurationMinutes" json:"durationMinutes"`
	VideoURL        string `db:"VideoURL" json:"videoUrl"`
}

type BlogPost struct {
	ID          string    `db:"ID" json:"id"`
	Title       string    `db:"Title" json:"title"`
	Summary     string    `db:"Summary" json:"summary"`
	Body        string    `db:"Body" json:"body,omitempty"`
	Author      string    `db:"Author" json:"author"`
	PublishedAt time.Time `db:"PublishedAt" json:"publishedAt"`
	Premium     bool      `db:"Premium" json:"premium"`
}

// FoodNutrition is the analyzer's answer for a food description.
type FoodNutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Activity is the analyzer's answer for an activity description. DistanceKM
// is zero for activities without a meaningful distance.
type Activity struct {
	Type       string  `json:"type"`
	DurationM  int     `json:"duration"`
	DistanceKM float64 `json:"distance,omitempty"`
	Calories   int     `json:"calories"`
}
