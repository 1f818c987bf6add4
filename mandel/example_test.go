package mandel_test

import (
	"fmt"

	"github.com/katalvlaran/mandelcalc/mandel"
)

// ExampleNew computes the 5×5 grid over [-2, 0.5] × [-1.25, 1.25].
// Entries equal to the limit (50) never escaped.
func ExampleNew() {
	g, err := mandel.NewGeometry(5, 5, mandel.DefaultRegion)
	if err != nil {
		fmt.Println(err)
		return
	}
	calc, err := mandel.New(mandel.KindLine, g, 50)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(calc.Compute())

	// Output:
	// [0, 1, 2, 2, 1]
	// [0, 2, 4, 50, 3]
	// [50, 50, 50, 50, 4]
	// [0, 2, 4, 50, 3]
	// [0, 1, 2, 2, 1]
}

// ExampleNewBatch shows that the chunk width does not change the result.
func ExampleNewBatch() {
	g, _ := mandel.NewGeometry(9, 5, mandel.DefaultRegion)
	ref, _ := mandel.NewReference(g, 20)
	batch, _ := mandel.NewBatch(g, 20, mandel.WithChunkSize(4))

	m := batch.Compute()
	fmt.Println(m.Equal(ref.Compute()))
	row, _ := m.RowView(1)
	fmt.Println(row)

	// Output:
	// true
	// [0 2 2 3 4 11 20 9 3]
}

func ExampleParseKind() {
	k, err := mandel.ParseKind("row")
	fmt.Println(k, err)

	// Output:
	// line <nil>
}
