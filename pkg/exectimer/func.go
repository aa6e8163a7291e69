package exectimer

// The Func* and Proc* wrappers time every call of a stored func. Func* forward the func's result,
// Proc* wrap funcs without one. Each Call invokes the func exactly once and writes one report line
// after it returns. A panic in the func propagates to the caller and no report is written for that call.

// Func0 times calls of a func() R.
type Func0[R any] struct {
	fn func() R
	em *emitter
}

func NewFunc0[R any](fn func() R) *Func0[R] {
	return &Func0[R]{fn: fn, em: defaultEmitter()}
}

func (f *Func0[R]) Call() R {
	iv := f.em.start()
	res := f.fn()
	f.em.finish(iv)
	return res
}

// Func1 times calls of a func(A) R.
type Func1[A, R any] struct {
	fn func(A) R
	em *emitter
}

func NewFunc1[A, R any](fn func(A) R) *Func1[A, R] {
	return &Func1[A, R]{fn: fn, em: defaultEmitter()}
}

func (f *Func1[A, R]) Call(a A) R {
	iv := f.em.start()
	res := f.fn(a)
	f.em.finish(iv)
	return res
}

type Func2[A, B, R any] struct {
	fn func(A, B) R
	em *emitter
}

func NewFunc2[A, B, R any](fn func(A, B) R) *Func2[A, B, R] {
	return &Func2[A, B, R]{fn: fn, em: defaultEmitter()}
}

func (f *Func2[A, B, R]) Call(a A, b B) R {
	iv := f.em.start()
	res := f.fn(a, b)
	f.em.finish(iv)
	return res
}

type Func3[A, B, C, R any] struct {
	fn func(A, B, C) R
	em *emitter
}

func NewFunc3[A, B, C, R any](fn func(A, B, C) R) *Func3[A, B, C, R] {
	return &Func3[A, B, C, R]{fn: fn, em: defaultEmitter()}
}

func (f *Func3[A, B, C, R]) Call(a A, b B, c C) R {
	iv := f.em.start()
	res := f.fn(a, b, c)
	f.em.finish(iv)
	return res
}

// FuncE1 times calls of a func(A) (R, error). A returned error is an ordinary result:
// it is forwarded untouched and the call is still reported.
type FuncE1[A, R any] struct {
	fn func(A) (R, error)
	em *emitter
}

func NewFuncE1[A, R any](fn func(A) (R, error)) *FuncE1[A, R] {
	return &FuncE1[A, R]{fn: fn, em: defaultEmitter()}
}

func (f *FuncE1[A, R]) Call(a A) (R, error) {
	iv := f.em.start()
	res, err := f.fn(a)
	f.em.finish(iv)
	return res, err
}

// Proc0 times calls of a func().
type Proc0 struct {
	fn func()
	em *emitter
}

func NewProc0(fn func()) *Proc0 {
	return &Proc0{fn: fn, em: defaultEmitter()}
}

func (p *Proc0) Call() {
	iv := p.em.start()
	p.fn()
	p.em.finish(iv)
}

type Proc1[A any] struct {
	fn func(A)
	em *emitter
}

func NewProc1[A any](fn func(A)) *Proc1[A] {
	return &Proc1[A]{fn: fn, em: defaultEmitter()}
}

func (p *Proc1[A]) Call(a A) {
	iv := p.em.start()
	p.fn(a)
	p.em.finish(iv)
}

type Proc2[A, B any] struct {
	fn func(A, B)
	em *emitter
}

func NewProc2[A, B any](fn func(A, B)) *Proc2[A, B] {
	return &Proc2[A, B]{fn: fn, em: defaultEmitter()}
}

func (p *Proc2[A, B]) Call(a A, b B) {
	iv := p.em.start()
	p.fn(a, b)
	p.em.finish(iv)
}

type Proc3[A, B, C any] struct {
	fn func(A, B, C)
	em *emitter
}

func NewProc3[A, B, C any](fn func(A, B, C)) *Proc3[A, B, C] {
	return &Proc3[A, B, C]{fn: fn, em: defaultEmitter()}
}

func (p *Proc3[A, B, C]) Call(a A, b B, c C) {
	iv := p.em.start()
	p.fn(a, b, c)
	p.em.finish(iv)
}
