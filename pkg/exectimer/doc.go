// Package exectimer measures how long a call takes and prints it to standard output as a single line:
//
//	Time: 0.0502341s
//
// There are two entry points. Func*/Proc* wrappers time every call of a stored func:
//
//	triple := exectimer.NewFunc1(func(x int) int { return x * 3 })
//	v := triple.Call(7) // prints one line, v == 21
//
// Object wraps a pointer and times one method call per proxy:
//
//	o := exectimer.NewObject(&svc)
//	p := o.Proxy()
//	n := p.Target().Count()
//	err := p.Close() // prints one line
//
// or, in callback form, exectimer.Call(o, func(s *Service) int { return s.Count() }).
// ConstObject gives read-only access through an interface view V that lists only the
// non-mutating methods. ReadOnly[V](o) builds one from a mutable wrapper. The view shares the
// object, nothing is copied.
//
// A call that panics is not reported by the wrappers and callback helpers; the panic reaches the
// caller exactly as if the func had been called directly. With the explicit proxy API a deferred
// Close reports panicking accesses too.
//
// Nothing here starts goroutines or takes locks. Report lines written from several goroutines are
// separate Write calls on os.Stdout with no ordering between them.
//
// Set EXECTIMER_DISABLED=true to suppress report lines and EXECTIMER_LOG_LEVEL to control the
// package's own logrus diagnostics.
package exectimer
