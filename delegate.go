package delegate

import (
	"errors"
)

// ============================================================================
// Errors
// ============================================================================

// ErrNotBound is returned when a Delegate holding no callable is invoked.
var ErrNotBound = errors.New("delegate not bound to a function")

// ============================================================================
// Erased Callables
// ============================================================================

// callable is the erased form of anything a Delegate can hold.
type callable[A, R any] interface {
	invoke(arg A) R
	kind() Kind
}

// funcCallable holds a free function or closure, including its captured state.
type funcCallable[A, R any] struct {
	fn func(A) R
}

func (c *funcCallable[A, R]) invoke(arg A) R {
	return c.fn(arg)
}

func (c *funcCallable[A, R]) kind() Kind {
	return KindFunc
}

// methodCallable pairs a borrowed instance with a method expression of its type.
// The instance is never owned; keeping it valid is up to the caller.
type methodCallable[T, A, R any] struct {
	instance *T
	method   func(*T, A) R
}

func (c *methodCallable[T, A, R]) invoke(arg A) R {
	return c.method(c.instance, arg)
}

func (c *methodCallable[T, A, R]) kind() Kind {
	return KindMethod
}

// ============================================================================
// Kind
// ============================================================================

// Kind describes what a Delegate is currently bound to.
type Kind int

const (
	// KindNone means the delegate is unbound.
	KindNone Kind = iota
	// KindFunc means the delegate holds a function or closure.
	KindFunc
	// KindMethod means the delegate holds an instance and one of its methods.
	KindMethod
)

func (k Kind) String() string {
	switch k {
	case KindFunc:
		return "func"
	case KindMethod:
		return "method"
	default:
		return "none"
	}
}

// ============================================================================
// Delegate
// ============================================================================

// noCopy lets go vet's copylocks check flag a Delegate passed by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Delegate is a move-only holder for one callable with the signature func(A) R.
//
// The zero value is an unbound delegate ready to use. A Delegate exclusively
// owns its callable: it must not be copied after first use. Ownership is
// handed over with Move or MoveFrom instead. Delegates provide no internal
// synchronization.
//
// Example:
//
//	var d Delegate[int, Void]
//	d.Bind(Action[int](func(x int) { fmt.Println("F:", x) }).Func())
//	d.Invoke(10)
//
//	c := &Counter{}
//	BindMethod(&d, c, (*Counter).Add)
//	d.Invoke(5) // c.total += 5
type Delegate[A, R any] struct {
	_        noCopy
	addr     *Delegate[A, R]
	callable callable[A, R]
}

// New returns a delegate bound to fn.
func New[A, R any](fn func(A) R) *Delegate[A, R] {
	d := &Delegate[A, R]{}
	d.Bind(fn)
	return d
}

// NewMethod returns a delegate bound to method on instance.
func NewMethod[T, A, R any](instance *T, method func(*T, A) R) *Delegate[A, R] {
	d := &Delegate[A, R]{}
	BindMethod(d, instance, method)
	return d
}

// copyCheck panics if d is a by-value copy of a delegate that was already in use.
func (d *Delegate[A, R]) copyCheck() {
	if d.addr == nil {
		d.addr = d
	} else if d.addr != d {
		panic("delegate: illegal use of Delegate copied by value")
	}
}

// Bind replaces the current callable with fn. Binding a nil fn unbinds.
func (d *Delegate[A, R]) Bind(fn func(A) R) {
	d.copyCheck()
	if fn == nil {
		d.callable = nil
		return
	}
	d.callable = &funcCallable[A, R]{fn: fn}
}

// BindMethod binds d to method invoked on instance, replacing the current
// callable. The method is given as a method expression such as (*T).Name.
// The delegate does not own instance. A nil method unbinds.
func BindMethod[T, A, R any](d *Delegate[A, R], instance *T, method func(*T, A) R) {
	d.copyCheck()
	if method == nil {
		d.callable = nil
		return
	}
	d.callable = &methodCallable[T, A, R]{instance: instance, method: method}
}

// Unbind releases the current callable. It is a no-op on an unbound delegate.
func (d *Delegate[A, R]) Unbind() {
	d.copyCheck()
	d.callable = nil
}

// Invoke calls the bound callable with arg and returns its result.
// It returns the zero R and ErrNotBound if nothing is bound.
func (d *Delegate[A, R]) Invoke(arg A) (R, error) {
	d.copyCheck()
	if d.callable == nil {
		var zero R
		return zero, ErrNotBound
	}
	return d.callable.invoke(arg), nil
}

// Call is an alias for Invoke.
func (d *Delegate[A, R]) Call(arg A) (R, error) {
	return d.Invoke(arg)
}

// MustInvoke is like Invoke but panics with ErrNotBound if nothing is bound.
func (d *Delegate[A, R]) MustInvoke(arg A) R {
	r, err := d.Invoke(arg)
	if err != nil {
		panic(err)
	}
	return r
}

// Bound reports whether a callable is bound.
func (d *Delegate[A, R]) Bound() bool {
	return d.callable != nil
}

// Kind reports what the delegate is bound to.
func (d *Delegate[A, R]) Kind() Kind {
	if d.callable == nil {
		return KindNone
	}
	return d.callable.kind()
}

func (d *Delegate[A, R]) String() string {
	return "delegate(" + d.Kind().String() + ")"
}

// Move transfers the callable into a new delegate and leaves d unbound.
func (d *Delegate[A, R]) Move() *Delegate[A, R] {
	d.copyCheck()
	dst := &Delegate[A, R]{callable: d.callable}
	dst.addr = dst
	d.callable = nil
	return dst
}

// MoveFrom releases the callable held by d and takes ownership of the one
// held by src, leaving src unbound. Moving a delegate into itself is a no-op.
func (d *Delegate[A, R]) MoveFrom(src *Delegate[A, R]) {
	d.copyCheck()
	if src == d {
		return
	}
	src.copyCheck()
	d.callable = src.callable
	src.callable = nil
}
