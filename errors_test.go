package buildlog

import (
	"errors"
	"fmt"
)

func ExampleError() {
	fmt.Println(&Error{
		Inner:   nil,
		Kind:    ErrInternal,
		Message: "test",
		Op:      "ExampleError",
	})

	fmt.Println(&Error{
		Inner:   errors.New("unexpected shape"),
		Kind:    ErrInvalid,
		Message: "malformed dose3 report",
		Op:      "apt.parseDose3",
	})
	fmt.Println(fmt.Errorf("somepackage: oops: %w", &Error{
		Inner:   errors.New("unexpected shape"),
		Kind:    ErrInvalid,
		Message: "malformed dose3 report",
		Op:      "apt.parseDose3",
	}))

	// Output:
	// ExampleError [internal]: test
	// apt.parseDose3 [invalid]: malformed dose3 report: unexpected shape
	// somepackage: oops: apt.parseDose3 [invalid]: malformed dose3 report: unexpected shape
}
