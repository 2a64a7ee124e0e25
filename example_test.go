package tbptt_test

import (
	"errors"
	"fmt"

	"github.com/streamlane/tbptt"
)

func ExampleIterator() {
	docA, _ := tbptt.NewDocument("A", map[string]tbptt.Stream[int64]{
		"tokens": {1, 2, 3, 4, 5, 6, 7},
	})
	docB, _ := tbptt.NewDocument("B", map[string]tbptt.Stream[int64]{
		"tokens": {10, 20, 30, 40, 50},
	})

	it, err := tbptt.New(tbptt.NewCorpus(docA, docB), tbptt.Config[int64]{
		BatchSize:     2,
		SplitSize:     3,
		SplittingKeys: []string{"tokens"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	step := 0
	for {
		b, err := it.Next()
		if errors.Is(err, tbptt.ErrEpochDone) {
			break
		}
		step++
		fmt.Printf("step %d:\n", step)
		for lane := 0; lane < b.Lanes(); lane++ {
			fmt.Printf("  lane %d: %v active=%v reset=%v\n",
				lane, b.Keys["tokens"][lane], b.LaneActive[lane], b.LaneReset[lane])
		}
	}
	// Output:
	// step 1:
	//   lane 0: [1 2 3] active=true reset=true
	//   lane 1: [10 20 30] active=true reset=true
	// step 2:
	//   lane 0: [4 5 6] active=true reset=false
	//   lane 1: [40 50 0] active=true reset=false
	// step 3:
	//   lane 0: [7] active=true reset=false
	//   lane 1: [0] active=false reset=false
}
