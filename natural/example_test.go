package natural_test

import (
	"fmt"

	"github.com/amp-labs/natural-sort/natural"
)

func ExampleCompare() {
	fmt.Println(natural.Compare("file2.txt", "file11.txt"))
	fmt.Println(natural.Compare("file11.txt", "file2.txt"))
	fmt.Println(natural.Compare("file2.txt", "file2.txt"))
	// Output:
	// -1
	// 1
	// 0
}

func ExampleSort() {
	names := []string{"img12.png", "img10.png", "img2.png", "img1.png"}

	natural.Sort(names)

	fmt.Println(names)
	// Output:
	// [img1.png img2.png img10.png img12.png]
}

func ExampleSortFold() {
	hosts := []string{"NODE-11", "node-2", "Node-1"}

	natural.SortFold(hosts)

	fmt.Println(hosts)
	// Output:
	// [Node-1 node-2 NODE-11]
}

func ExampleSortBy() {
	type backup struct {
		File string
		Size int
	}

	backups := []backup{
		{File: "db-10.dump", Size: 10},
		{File: "db-9.dump", Size: 9},
		{File: "db-100.dump", Size: 100},
	}

	natural.SortBy(backups, func(b backup) string { return b.File })

	for _, b := range backups {
		fmt.Println(b.File)
	}
	// Output:
	// db-9.dump
	// db-10.dump
	// db-100.dump
}

func ExampleEqualFold() {
	fmt.Println(natural.EqualFold("Host2", "host2"))
	fmt.Println(natural.EqualFold("Host2", "host02"))
	// Output:
	// true
	// false
}
