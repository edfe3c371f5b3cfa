package delegate

// Void is the result type of delegates whose callable returns nothing.
type Void = struct{}

// ============================================================================
// Func
// ============================================================================

// Func is a functional binding for the call signature func(A) R.
// It can be bound directly and provides decorators that wrap the call.
//
// Example:
//
//	double := Func[int, int](func(x int) int { return x * 2 }).
//	    Tap(func(in, out int) { log.Printf("%d -> %d", in, out) }).
//	    Recover(func(any) int { return -1 })
//
//	d := New(double)
type Func[A, R any] func(A) R

// Invoke calls the function.
func (f Func[A, R]) Invoke(arg A) R {
	return f(arg)
}

// Before runs a function with the argument before f.
func (f Func[A, R]) Before(before func(A)) Func[A, R] {
	return func(arg A) R {
		before(arg)
		return f(arg)
	}
}

// Then transforms the result of f.
func (f Func[A, R]) Then(transform func(R) R) Func[A, R] {
	return func(arg A) R {
		return transform(f(arg))
	}
}

// Tap observes each argument and result without changing them.
func (f Func[A, R]) Tap(fn func(A, R)) Func[A, R] {
	return func(arg A) R {
		r := f(arg)
		fn(arg, r)
		return r
	}
}

// Recover turns a panic inside f into the result returned by fallback.
func (f Func[A, R]) Recover(fallback func(any) R) Func[A, R] {
	return func(arg A) (r R) {
		defer func() {
			if p := recover(); p != nil {
				r = fallback(p)
			}
		}()
		return f(arg)
	}
}

// ============================================================================
// Action
// ============================================================================

// Action is a functional binding for callables that return nothing.
type Action[A any] func(A)

// Invoke calls the action.
func (f Action[A]) Invoke(arg A) {
	f(arg)
}

// Func adapts the action to a Func returning Void so it can be bound.
func (f Action[A]) Func() Func[A, Void] {
	if f == nil {
		return nil
	}
	return func(arg A) Void {
		f(arg)
		return Void{}
	}
}
