// SPDX-License-Identifier: MIT
package catalog_test

import (
	"fmt"

	"github.com/katalvlaran/nlcatalog/catalog"
	"github.com/katalvlaran/nlcatalog/problem"
)

func ExampleNew() {
	reg, err := catalog.New()
	if err != nil {
		panic(err)
	}
	for _, name := range reg.Names()[:3] {
		fmt.Println(name)
	}
	p, _ := reg.Lookup("dennis-schnabel")
	f, _ := problem.Residual(p, []float64{1, 5})
	fmt.Println(p.Name(), f)
	// Output:
	// dennis-schnabel
	// powell-badly-scaled
	// freudenstein-roth
	// Dennis and Schnabel 2x2 example neq = 2 [3 17]
}
