package frame_test

import (
	"fmt"

	"github.com/katalvlaran/vifprune/frame"
)

// ExampleTable_Drop shows that dropping a column leaves the source snapshot intact.
func ExampleTable_Drop() {
	tbl, err := frame.New([]string{"height", "weight", "age"}, [][]float64{
		{170, 180, 165},
		{65, 80, 58},
		{30, 41, 25},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	next, _ := tbl.Drop("weight")
	fmt.Println(tbl.Names())
	fmt.Println(next.Names())
	fmt.Println(next.WithConstant().Names())
	// Output:
	// [height weight age]
	// [height age]
	// [const height age]
}
