package inplaceit_test

import (
	"fmt"

	inplaceit "github.com/NotIntMan/inplace-it"
	"github.com/NotIntMan/inplace-it/guards"
)

func ExampleInplaceOrAlloc() {
	sum := inplaceit.InplaceOrAlloc(150, func(g *guards.UninitializedSlice[int]) int {
		items := g.Init(func(index int) int {
			return index
		}).Items()

		total := 0
		for _, item := range items {
			total += item
		}
		return total
	})
	fmt.Println(sum)
	// Output: 11175
}

func ExampleInplace() {
	area := inplaceit.Inplace(func(g *guards.UninitializedSlot[[2]int]) int {
		sides := g.Init([2]int{3, 4}).Get()
		return sides[0] * sides[1]
	})
	fmt.Println(area)
	// Output: 12
}
