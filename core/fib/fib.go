// core/fib/fib.go
package fib

// Iter returns the n-th Fibonacci number with uint64 wraparound
// (fib(94) and beyond wrap modulo 2^64).
func Iter(n uint64) uint64 {
	var a, b uint64 = 0, 1
	for i := uint64(0); i < n; i++ {
		a, b = b, a+b
	}
	return a
}

// Rec is the exponential-time recursive definition, kept as a call-overhead
// benchmark.
func Rec(n int) uint64 {
	if n <= 1 {
		if n < 0 {
			return 0
		}
		return uint64(n)
	}
	return Rec(n-1) + Rec(n-2)
}

// XorFold evaluates Iter(n) reps times and XOR-folds the results. An even rep
// count folds to zero; callers that need the plain value pass reps=1.
func XorFold(n uint64, reps uint64) uint64 {
	var sink uint64
	for r := uint64(0); r < reps; r++ {
		sink ^= Iter(n)
	}
	return sink
}
