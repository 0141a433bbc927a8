package main

import "fmt"

// ListError describes an invalid entry in a mutex list file.
//
// Example output:
//
//	mutexes.yaml:7: font_map: declared twice (first on line 3)
//
//	Suggestion: Remove one of the entries; every name maps to a single handle
type ListError struct {
	File       string // List file path
	Line       int    // Line number (1-indexed, 0 if unknown)
	Name       string // Mutex name (empty if the entry has none)
	Message    string // Error message
	Suggestion string // Optional suggestion for fixing (empty if none)
}

// Error implements the error interface.
//
// Format: file:line: name: message, with parts left out when unknown.
func (e *ListError) Error() string {
	result := e.File
	if e.Line > 0 {
		result += fmt.Sprintf(":%d", e.Line)
	}
	if e.Name != "" {
		result += ": " + e.Name
	}
	result += ": " + e.Message
	if e.Suggestion != "" {
		result += fmt.Sprintf("\n\nSuggestion: %s", e.Suggestion)
	}
	return result
}
