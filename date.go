package main

import (
	"path/filepath"
	"strconv"
	"time"
)

// Puzzle days run from 1 to 25 each December.
const (
	firstPuzzleDay = 1
	lastPuzzleDay  = 25
)

// puzzleDate is the year/day pair used for both the request URL and the
// output directory.
type puzzleDate struct {
	Year int
	Day  int
}

// defaultPuzzleDate returns the calendar year and day-of-month of now in UTC.
// The day is not mapped onto the puzzle calendar, so outside of December 1-25
// it may not name an existing puzzle.
func defaultPuzzleDate(now time.Time) puzzleDate {
	u := now.UTC()
	return puzzleDate{Year: u.Year(), Day: u.Day()}
}

// resolveDate picks the configured year and day, falling back to
// defaultPuzzleDate for whichever is unset.
func resolveDate(cfg appConfig, now time.Time) puzzleDate {
	d := defaultPuzzleDate(now)
	if cfg.Year != nil {
		d.Year = *cfg.Year
	}
	if cfg.Day != nil {
		d.Day = *cfg.Day
	}
	return d
}

// inRange reports whether the day is a valid puzzle day.
func (d puzzleDate) inRange() bool {
	return d.Day >= firstPuzzleDay && d.Day <= lastPuzzleDay
}

// dir returns the relative {year}/{day} directory.
func (d puzzleDate) dir() string {
	return filepath.Join(strconv.Itoa(d.Year), strconv.Itoa(d.Day))
}

// urlPath returns the input path on the puzzle site.
func (d puzzleDate) urlPath() string {
	return "/" + strconv.Itoa(d.Year) + "/day/" + strconv.Itoa(d.Day) + "/input"
}
