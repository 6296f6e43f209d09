package a

func fib(n int) int { // want `fib calls itself 2 times per invocation`
	if n <= 1 {
		return n
	}
	return fib(n-1) + fib(n-2)
}

func tribonacci(n int) int { // want `tribonacci calls itself 3 times per invocation`
	if n < 3 {
		return n
	}
	return tribonacci(n-1) + tribonacci(n-2) + tribonacci(n-3)
}

func factorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * factorial(n-1)
}

func iterative(n int) int {
	a, b := 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}

// calls fib twice, but never itself
func pair(n int) (int, int) {
	return fib(n), fib(n + 1)
}

type tree struct {
	left, right *tree
}

func (t *tree) walk() int { // want `walk calls itself 2 times per invocation`
	if t == nil {
		return 0
	}
	return 1 + t.left.walk() + t.right.walk()
}
