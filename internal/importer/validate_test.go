package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func validSchema() *SemesterImport {
	return &SemesterImport{
		Classes: []ClassImport{
			{Ref: "calc", Name: "Calculus", Code: "MATH201"},
			{Ref: "bio", Name: "Biology"},
		},
		Tasks: []TaskImport{
			{ClassRef: "calc", Title: "Problem set 3", Type: "assignment", DueDate: strPtr("2026-03-10")},
			{ClassRef: "bio", Title: "Reading ch. 4", Type: "reading"},
			{Title: "Flashcards"},
		},
		Profile: &ProfileImport{
			FocusSessionMin: intPtr(45),
			Windows: []WindowImport{
				{Day: "Monday", Start: "18:00", End: "21:00", Productivity: intPtr(7)},
			},
		},
	}
}

func TestValidateSemesterImport_Valid(t *testing.T) {
	assert.Empty(t, ValidateSemesterImport(validSchema()))
}

func TestValidateSemesterImport_CollectsAllErrors(t *testing.T) {
	schema := &SemesterImport{
		Classes: []ClassImport{
			{Ref: "", Name: ""},
			{Ref: "calc", Name: "Calculus"},
			{Ref: "calc", Name: "Calculus Again"},
		},
		Tasks: []TaskImport{
			{ClassRef: "ghost", Title: "", Type: "karaoke", DueDate: strPtr("March 10")},
		},
	}
	errs := ValidateSemesterImport(schema)
	assert.GreaterOrEqual(t, len(errs), 6)
}

func TestValidateSemesterImport_ProfileWindows(t *testing.T) {
	tests := []struct {
		name   string
		window WindowImport
	}{
		{"bad day", WindowImport{Day: "Funday", Start: "18:00", End: "21:00"}},
		{"bad start", WindowImport{Day: "Monday", Start: "6pm", End: "21:00"}},
		{"bad end", WindowImport{Day: "Monday", Start: "18:00", End: "25:00"}},
		{"inverted", WindowImport{Day: "Monday", Start: "21:00", End: "18:00"}},
		{"bad productivity", WindowImport{Day: "Monday", Start: "18:00", End: "21:00", Productivity: intPtr(11)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			schema := &SemesterImport{Profile: &ProfileImport{Windows: []WindowImport{tc.window}}}
			assert.NotEmpty(t, ValidateSemesterImport(schema))
		})
	}
}

func TestValidateSemesterImport_ProfileBounds(t *testing.T) {
	schema := &SemesterImport{Profile: &ProfileImport{
		FocusSessionMin:  intPtr(0),
		BreakDurationMin: intPtr(-1),
	}}
	errs := ValidateSemesterImport(schema)
	assert.Len(t, errs, 2)
}
