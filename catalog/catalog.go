// Package catalog holds the fixed table of tanpura recordings the fetcher
// downloads, keyed by shruti category and chromatic note.
package catalog

import "tanpura-fetch/config"

const baseURL = "https://api.artiumacademy.com/tanpura-files/tanpura-new-files/"

// Categories lists the shruti groupings in download order
var Categories = []string{"pa", "ma", "ni"}

// Notes lists the twelve chromatic notes in download order
var Notes = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Entry is a single (category, note) recording and where to fetch it
type Entry struct {
	Category string
	Note     string
	URL      string
}

// Filename returns the name the recording is saved under, e.g. C-pa.wav
func (e Entry) Filename() string {
	return e.Note + "-" + e.Category + config.FileExtension
}

var entries = []Entry{
	// pa
	{Category: "pa", Note: "C", URL: baseURL + "pa-tanpura-c3-60-bpm_1.wav"},
	{Category: "pa", Note: "C#", URL: baseURL + "pa-tanpura-c-hash-3-60-bpm_1.wav"},
	{Category: "pa", Note: "D", URL: baseURL + "pa-tanpura-d3-60-bpm_1.wav"},
	{Category: "pa", Note: "D#", URL: baseURL + "pa-tanpura-d-hash-3-60-bpm_1.wav"},
	{Category: "pa", Note: "E", URL: baseURL + "pa-tanpura-e3-60-bpm_1.wav"},
	{Category: "pa", Note: "F", URL: baseURL + "pa-tanpura-f3-60-bpm_1.wav"},
	{Category: "pa", Note: "F#", URL: baseURL + "pa-tanpura-f-hash-3-60-bpm_1.wav"},
	{Category: "pa", Note: "G", URL: baseURL + "pa-tanpura-g3-60-bpm_1.wav"},
	{Category: "pa", Note: "G#", URL: baseURL + "pa-tanpura-g-hash-3-60-bpm_1.wav"},
	{Category: "pa", Note: "A", URL: baseURL + "pa-tanpura-a3-60-bpm_1.wav"},
	{Category: "pa", Note: "A#", URL: baseURL + "pa-tanpura-a-hash-3-60%20bpm_1.wav"},
	{Category: "pa", Note: "B", URL: baseURL + "pa-tanpura-b3-60-bpm_1.wav"},

	// ma
	{Category: "ma", Note: "C", URL: baseURL + "ma-tanpura-c3-60-bpm_1.wav"},
	{Category: "ma", Note: "C#", URL: baseURL + "ma-tanpura-c-hash-3-60-bpm_1.wav"},
	{Category: "ma", Note: "D", URL: baseURL + "ma-tanpura-d3-60-bpm_1.wav"},
	{Category: "ma", Note: "D#", URL: baseURL + "ma-tanpura-d-hash-3-60-bpm_1.wav"},
	{Category: "ma", Note: "E", URL: baseURL + "ma-tanpura-e3-60-bpm_1.wav"},
	{Category: "ma", Note: "F", URL: baseURL + "ma-tanpura-f3-60-bpm_1.wav"},
	{Category: "ma", Note: "F#", URL: baseURL + "ma-tanpura-f-hash-3-60-bpm_1.wav"},
	{Category: "ma", Note: "G", URL: baseURL + "ma-tanpura-g3-60-bpm_1.wav"},
	{Category: "ma", Note: "G#", URL: baseURL + "ma-tanpura-g-hash-3-60-bpm_1.wav"},
	{Category: "ma", Note: "A", URL: baseURL + "ma-tanpura-a3-60-bpm_1.wav"},
	{Category: "ma", Note: "A#", URL: baseURL + "ma-tanpura-a-hash-3-60-bpm_1.wav"},
	{Category: "ma", Note: "B", URL: baseURL + "ma-tanpura-b3-60-bpm_1.wav"},

	// ni
	{Category: "ni", Note: "C", URL: baseURL + "ni-tanpura-c3-60-bpm_1.wav"},
	{Category: "ni", Note: "C#", URL: baseURL + "ni-tanpura-c-hash-3-60-bpm_1.wav"},
	{Category: "ni", Note: "D", URL: baseURL + "ni-tanpura-d3-60-bpm_1.wav"},
	{Category: "ni", Note: "D#", URL: baseURL + "ni-tanpura-d-hash-3-60-bpm_1.wav"},
	{Category: "ni", Note: "E", URL: baseURL + "ni-tanpura-e3-60-bpm_1.wav"},
	{Category: "ni", Note: "F", URL: baseURL + "ni-tanpura-f3-60-bpm_1.wav"},
	{Category: "ni", Note: "F#", URL: baseURL + "ni-tanpura-f-hash-3-60-bpm_1.wav"},
	{Category: "ni", Note: "G", URL: baseURL + "ni-tanpura-g3-60-bpm_1.wav"},
	{Category: "ni", Note: "G#", URL: baseURL + "ni-tanpura-g-hash-3-60-bpm_1.wav"},
	{Category: "ni", Note: "A", URL: baseURL + "ni-tanpura-a3-60-bpm_1.wav"},
	{Category: "ni", Note: "A#", URL: baseURL + "ni-tanpura-a-hash-3-60-bpm_1.wav"},
	{Category: "ni", Note: "B", URL: baseURL + "ni-tanpura-b3-60-bpm_1.wav"},
}

// Entries returns every recording, grouped by category and ordered by note.
// The returned slice is a copy.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup finds the entry for a category and note
func Lookup(category, note string) (Entry, bool) {
	for _, e := range entries {
		if e.Category == category && e.Note == note {
			return e, true
		}
	}
	return Entry{}, false
}
