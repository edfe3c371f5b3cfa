/*
Package delegate provides a type-erased, bindable callable wrapper.

# Overview

A Delegate holds exactly one callable with the signature func(A) R and invokes
it uniformly, whatever the callable actually is:

  - a free function
  - a closure with captured state
  - a method bound to a borrowed instance

Multiple arguments are passed as a struct. Callables without a result use
Void as R, and Action adapts a func(A) to that shape.

# Binding

	var d delegate.Delegate[int, delegate.Void]

	// Free function or closure
	d.Bind(delegate.Action[int](func(x int) {
	    fmt.Println("F:", x)
	}).Func())

	// Instance method, given as a method expression
	c := &Counter{}
	delegate.BindMethod(&d, c, (*Counter).Add)

Each bind releases the previous callable. The instance in a method binding is
not owned: the caller keeps it alive for as long as the delegate may call it.

# Invocation

Invoke and its alias Call forward the argument and return the result. An
unbound delegate returns ErrNotBound:

	if _, err := d.Invoke(5); errors.Is(err, delegate.ErrNotBound) {
	    // nothing bound
	}

MustInvoke panics with ErrNotBound instead.

# Ownership

A Delegate exclusively owns its callable and must not be copied. go vet
reports copies, and a copied delegate panics once it is used. Move and
MoveFrom transfer the callable and leave the source unbound:

	moved := d.Move()      // d is now unbound
	other.MoveFrom(moved)  // moved is now unbound

Delegates are not safe for concurrent use.

# Package Import

	import "github.com/Pure-Company/delegate"
*/
package delegate
