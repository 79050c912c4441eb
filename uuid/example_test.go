package uuid_test

import (
	"fmt"

	"uuidgen/uuid"
)

func ExampleNewV5() {
	u := uuid.NewV5(uuid.NamespaceOID, []byte("hello"))
	fmt.Println(u)
	fmt.Println(u.Upper())
	// Output:
	// 4d71d03f-f19b-5d9e-8523-9628ba18063c
	// 4D71D03F-F19B-5D9E-8523-9628BA18063C
}

func ExampleParse() {
	u, err := uuid.Parse("6BA7B812-9DAD-11D1-80B4-00C04FD430C8")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(u == uuid.NamespaceOID)
	// Output: true
}
