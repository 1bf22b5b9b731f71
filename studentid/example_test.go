package studentid_test

import (
	"fmt"

	"github.com/javdevA/SmartDormCapstonePro/studentid"
)

func ExampleComputeChecksum() {
	id := studentid.ComputeChecksum("1004")
	fmt.Println(id, studentid.IsValid(id))
	// Output: 10045 true
}
