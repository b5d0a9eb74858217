package model

import "testing"

func TestMovieFormat(t *testing.T) {
	date := "2020-01-04"
	m := &Movie{ID: 1, Title: "Treadstone", Description: "agents awaken", ReleaseDate: &date}
	got := m.Format()
	if got["release_date"] != "Sat Jan 04 2020" {
		t.Errorf("release_date = %v, want %q", got["release_date"], "Sat Jan 04 2020")
	}
	if got["title"] != "Treadstone" || got["id"] != uint64(1) {
		t.Errorf("unexpected format: %v", got)
	}
}

func TestMovieFormatNilDate(t *testing.T) {
	m := &Movie{ID: 2, Title: "Untitled", Description: "tbd"}
	if got := m.Format()["release_date"]; got != nil {
		t.Errorf("release_date = %v, want nil", got)
	}
}
