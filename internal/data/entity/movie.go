package entity

import (
	"time"
)

type Movie struct {
	Base
	Title       string    `db:"title"` // max 150 chars
	ReleaseDate time.Time `db:"release_date"`
	Genre       string    `db:"genre"` // max 50 chars
}
