package main

import "testing"

// TestListError_Error tests error formatting with and without optional parts.
func TestListError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ListError
		want string
	}{
		{
			name: "full",
			err: &ListError{
				File:       "mutexes.yaml",
				Line:       7,
				Name:       "font_map",
				Message:    "declared twice (first on line 3)",
				Suggestion: "Remove one of the entries",
			},
			want: "mutexes.yaml:7: font_map: declared twice (first on line 3)\n\nSuggestion: Remove one of the entries",
		},
		{
			name: "no_line",
			err:  &ListError{File: "mutexes.yaml", Message: "list declares no mutexes"},
			want: "mutexes.yaml: list declares no mutexes",
		},
		{
			name: "no_name",
			err:  &ListError{File: "mutexes.yaml", Line: 4, Message: "mutex has no name"},
			want: "mutexes.yaml:4: mutex has no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
