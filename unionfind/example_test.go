package unionfind_test

import (
	"fmt"

	"github.com/paulrodriguez/percolation/unionfind"
)

// ExampleForest_Union joins a chain of elements and queries connectivity.
//
//	0───1───2    3
//
// After two unions, 0 and 2 share a component while 3 stays alone.
func ExampleForest_Union() {
	f, _ := unionfind.New(4)
	_ = f.Union(0, 1)
	_ = f.Union(1, 2)

	a, _ := f.Connected(0, 2)
	b, _ := f.Connected(0, 3)
	fmt.Println("0~2:", a)
	fmt.Println("0~3:", b)
	fmt.Println("components:", f.Count())
	// Output:
	// 0~2: true
	// 0~3: false
	// components: 2
}
