package roommate_test

import (
	"fmt"

	"github.com/javdevA/SmartDormCapstonePro/roommate"
	"github.com/javdevA/SmartDormCapstonePro/types"
)

func ExampleSuggest() {
	students := []types.Student{
		{ID: "101", Name: "Ana", Year: 2, Tags: "quiet,studious"},
		{ID: "112", Name: "Ben", Year: 3, Priority: 4},
		{ID: "123", Name: "Ada", Year: 2, Tags: "Studious"},
	}

	for _, p := range roommate.Suggest(students, 5) {
		fmt.Printf("%s+%s %d %s\n", p.First.Name, p.Second.Name, p.Score, p.Reason)
	}
	// Output: Ana+Ada 100 Same year, Shared tags
}
