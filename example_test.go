package region

import "fmt"

// Example demonstrates basic region usage
func Example() {
	// Reserve one region up front
	r, err := Reserve(1 << 16)
	if err != nil {
		panic(err)
	}
	defer r.Release() // Always return the reservation

	// Push allocations; the cursor tracks the total
	buf, _ := r.Push(10)
	fmt.Printf("Pushed block of size: %d\n", len(buf))
	r.Push(20)
	fmt.Printf("Position: %d\n", r.Pos())

	// Pop in reverse order
	r.Pop(20)
	r.Pop(10)
	fmt.Printf("Position after pops: %d\n", r.Pos())

	// Output:
	// Pushed block of size: 10
	// Position: 30
	// Position after pops: 0
}

// ExampleScratch demonstrates bracketing temporary allocations
func ExampleScratch() {
	r, err := Reserve(1 << 16)
	if err != nil {
		panic(err)
	}
	defer r.Release()

	r.Push(100)

	// Everything pushed inside the scope vanishes at End
	scratch := r.ScratchBegin()
	r.Push(500)
	r.Push(300)
	fmt.Printf("Inside scratch: %d\n", r.Pos())
	scratch.End()

	fmt.Printf("After scratch: %d\n", r.Pos())

	// Output:
	// Inside scratch: 900
	// After scratch: 100
}

// ExampleRegion_PushStr demonstrates the length-prefixed string buffer
func ExampleRegion_PushStr() {
	r, err := Reserve(1 << 16)
	if err != nil {
		panic(err)
	}
	defer r.Release()

	s, _ := r.PushStr("hello")
	fmt.Printf("Stored %d bytes\n", s.Len())

	// A nil sink flushes the payload to standard output
	s.Flush(nil)
	fmt.Println()

	r.PopStr(s)
	fmt.Printf("Position after pop: %d\n", r.Pos())

	// Output:
	// Stored 5 bytes
	// hello
	// Position after pop: 0
}

// ExamplePushSlice demonstrates typed allocations
func ExamplePushSlice() {
	r, err := Reserve(1 << 16)
	if err != nil {
		panic(err)
	}
	defer r.Release()

	nums, _ := PushSlice[int64](r, 5)
	for i := range nums {
		nums[i] = int64(i * 2)
	}
	fmt.Printf("Slice: %v\n", nums)

	PopSlice[int64](r, 5)
	fmt.Printf("Position: %d\n", r.Pos())

	// Output:
	// Slice: [0 2 4 6 8]
	// Position: 0
}

// ExampleRegion_SetPos demonstrates O(1) bulk release
func ExampleRegion_SetPos() {
	r, err := Reserve(1 << 16)
	if err != nil {
		panic(err)
	}
	defer r.Release()

	r.Push(50)
	mark := r.Pos()

	// Many allocations, released in one step
	for i := 0; i < 10; i++ {
		r.Push(100)
	}
	fmt.Printf("Before rollback: %d\n", r.Pos())

	r.SetPos(mark)
	fmt.Printf("After rollback: %d\n", r.Pos())

	// Output:
	// Before rollback: 1050
	// After rollback: 50
}
