package exectimer

import (
	"fmt"
	"reflect"
)

// Object times single method calls made on an object it does not own. The object must outlive every
// proxy taken from the wrapper. Wrapping a nil pointer is a caller error: nothing checks for it and the
// forwarded call fails the same way a call on the nil pointer would.
type Object[T any] struct {
	obj *T
	em  *emitter
}

func NewObject[T any](obj *T) *Object[T] {
	return &Object[T]{obj: obj, em: defaultEmitter()}
}

// Proxy starts timing a single access to the wrapped object. Use Target once and then Close the proxy
// to write the report. Every call returns an independent proxy, so reports never accumulate time spent
// between accesses.
func (o *Object[T]) Proxy() *Proxy[T] {
	return &Proxy[T]{span: span{em: o.em, iv: o.em.start()}, obj: o.obj}
}

// Do times fn, which receives the wrapped object. If fn panics the panic propagates and nothing is reported.
func (o *Object[T]) Do(fn func(*T)) {
	p := o.Proxy()
	fn(p.Target())
	p.closeOrLog()
}

// Call times fn, which receives the wrapped object, and returns its result.
// If fn panics the panic propagates and nothing is reported.
func Call[T, R any](o *Object[T], fn func(*T) R) R {
	p := o.Proxy()
	res := fn(p.Target())
	p.closeOrLog()
	return res
}

// ConstObject times single calls made through a read-only view of an object. The view is normally an
// interface listing only the methods that do not modify the object, so nothing else is reachable
// through the proxies without a type assertion back to the concrete type. The proxies hand out the
// view itself and copy nothing.
type ConstObject[V any] struct {
	view V
	em   *emitter
}

func NewConstObject[V any](view V) *ConstObject[V] {
	return &ConstObject[V]{view: view, em: defaultEmitter()}
}

// ReadOnly returns a read-only wrapper over the object of o, seen through the view V.
// It panics if *T does not implement V.
func ReadOnly[V, T any](o *Object[T]) *ConstObject[V] {
	view, ok := any(o.obj).(V)
	if !ok {
		panic(fmt.Sprintf("exectimer: %T does not implement %v", o.obj, reflect.TypeOf((*V)(nil)).Elem()))
	}
	return &ConstObject[V]{view: view, em: o.em}
}

func (o *ConstObject[V]) Proxy() *ConstProxy[V] {
	return &ConstProxy[V]{span: span{em: o.em, iv: o.em.start()}, view: o.view}
}

func (o *ConstObject[V]) Do(fn func(V)) {
	p := o.Proxy()
	fn(p.Target())
	p.closeOrLog()
}

// CallConst is the read-only form of Call.
func CallConst[V, R any](o *ConstObject[V], fn func(V) R) R {
	p := o.Proxy()
	res := fn(p.Target())
	p.closeOrLog()
	return res
}

// span is the timed lifetime of one proxy: started when the proxy is created, reported on Close.
type span struct {
	em     *emitter
	iv     *interval
	closed bool
}

// Close ends the timed interval and writes its report. Only the first call has any effect.
// Deferring Close also reports accesses that panic.
func (s *span) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.iv.Stop()
	return s.em.emit(s.iv.Duration())
}

func (s *span) closeOrLog() {
	if err := s.Close(); err != nil {
		s.em.logLost(err)
	}
}

type Proxy[T any] struct {
	span
	obj *T
}

func (p *Proxy[T]) Target() *T {
	return p.obj
}

type ConstProxy[V any] struct {
	span
	view V
}

func (p *ConstProxy[V]) Target() V {
	return p.view
}
