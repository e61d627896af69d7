package pool_test

import (
	"fmt"
	"sync/atomic"

	"github.com/utkarsh5026/threadpool/pool"
)

func ExampleRun() {
	p := pool.New(2)
	defer p.Close()

	n, err := pool.Run(p, func(workerID int) (int, error) {
		return 6 * 7, nil
	})
	fmt.Println(n, err)
	// Output: 42 <nil>
}

func ExampleThreadPool_Assist() {
	p := pool.New(0)
	defer p.Close()

	var sum atomic.Int64
	for i := 1; i <= 5; i++ {
		p.Go(func(workerID int) error {
			sum.Add(int64(i))
			return nil
		})
	}

	p.Assist()
	p.WaitCompletion()
	fmt.Println(sum.Load())
	// Output: 15
}

func ExampleSplitFor() {
	p := pool.New(3)
	defer p.Close()

	squares := make([]int, 17)
	err := pool.SplitFor(p, len(squares), 1, 4, 1, func(workerID, i int) {
		squares[i] = i * i
	})

	fmt.Println(squares[16], err, pool.Batches(len(squares), 4, 1))
	// Output: 256 <nil> 4
}

func ExampleTrySubmit() {
	p := pool.New(1)
	defer p.Close()

	f, err := pool.TrySubmit(p, func(workerID int) (string, error) {
		return "accepted", nil
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	v, _ := f.Get()
	fmt.Println(v)
	// Output: accepted
}
