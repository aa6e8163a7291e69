package exectimer

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/samber/lo"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/clock"

	mock_exectimer "exectimer/pkg/exectimer/mock"
)

func tripleSlowly(x int) int {
	time.Sleep(40 * time.Millisecond)
	return x * 3
}

func pause() {
	time.Sleep(20 * time.Millisecond)
}

type multiplier struct {
	factor int
}

func (m multiplier) Apply(x int) int {
	time.Sleep(35 * time.Millisecond)
	return x * m.factor
}

func TestFunc1_FunctionTiming(t *testing.T) {
	out := captureReports(t)

	res := NewFunc1(tripleSlowly).Call(7)

	require.Equal(t, 21, res)
	requireSingleReport(t, out.String(), 40*time.Millisecond)
}

func TestProc0_VoidFunctionTiming(t *testing.T) {
	out := captureReports(t)

	NewProc0(pause).Call()

	requireSingleReport(t, out.String(), 20*time.Millisecond)
}

func TestFunc1_FunctorTiming(t *testing.T) {
	out := captureReports(t)

	res := NewFunc1(multiplier{factor: 5}.Apply).Call(10)

	require.Equal(t, 50, res)
	requireSingleReport(t, out.String(), 35*time.Millisecond)
}

func TestFunc1_ClosureTiming(t *testing.T) {
	out := captureReports(t)

	res := NewFunc1(func(x int) int {
		time.Sleep(25 * time.Millisecond)
		return x * 4
	}).Call(10)

	require.Equal(t, 40, res)
	requireSingleReport(t, out.String(), 25*time.Millisecond)
}

func TestCallableForms(t *testing.T) {
	cases := map[string]struct {
		call       func(step func(time.Duration)) any
		want       any
		wantReport string
	}{
		"Func0": {
			call: func(step func(time.Duration)) any {
				return NewFunc0(func() string {
					step(10 * time.Millisecond)
					return "ok"
				}).Call()
			},
			want:       "ok",
			wantReport: "Time: 0.01s\n",
		},
		"Func2": {
			call: func(step func(time.Duration)) any {
				return NewFunc2(func(a, b int) int {
					step(20 * time.Millisecond)
					return a * b
				}).Call(6, 7)
			},
			want:       42,
			wantReport: "Time: 0.02s\n",
		},
		"Func3": {
			call: func(step func(time.Duration)) any {
				return NewFunc3(func(s string, n int, sep string) string {
					step(time.Second)
					return fmt.Sprintf("%s%s%d", s, sep, n)
				}).Call("x", 3, "-")
			},
			want:       "x-3",
			wantReport: "Time: 1s\n",
		},
		"Func1 returning a struct": {
			call: func(step func(time.Duration)) any {
				type pair struct{ a, b int }
				return NewFunc1(func(x int) pair {
					step(5 * time.Millisecond)
					return pair{x, -x}
				}).Call(4)
			},
			want:       struct{ a, b int }{4, -4},
			wantReport: "Time: 0.005s\n",
		},
		"Proc1": {
			call: func(step func(time.Duration)) any {
				var got []string
				NewProc1(func(s string) {
					step(15 * time.Millisecond)
					got = append(got, s)
				}).Call("a")
				return got
			},
			want:       []string{"a"},
			wantReport: "Time: 0.015s\n",
		},
		"Proc2": {
			call: func(step func(time.Duration)) any {
				var got int
				NewProc2(func(a, b int) {
					step(2 * time.Second)
					got = a + b
				}).Call(2, 3)
				return got
			},
			want:       5,
			wantReport: "Time: 2s\n",
		},
		"Proc3": {
			call: func(step func(time.Duration)) any {
				got := map[string]int{}
				NewProc3(func(m map[string]int, k string, v int) {
					step(250 * time.Millisecond)
					m[k] = v
				}).Call(got, "k", 9)
				return got
			},
			want:       map[string]int{"k": 9},
			wantReport: "Time: 0.25s\n",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, fc := captureWithFakeClock(t)

			got := tc.call(func(d time.Duration) { advance(fc, d) })

			require.Equal(t, fmt.Sprint(tc.want), fmt.Sprint(got))
			require.Equal(t, tc.wantReport, out.String())
		})
	}
}

func TestFuncE1_ForwardsError(t *testing.T) {
	out, fc := captureWithFakeClock(t)
	errNotFound := errors.New("not found")

	lookup := NewFuncE1(func(key string) (int, error) {
		advance(fc, 30*time.Millisecond)
		if key == "" {
			return 0, errNotFound
		}
		return len(key), nil
	})

	n, err := lookup.Call("abc")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = lookup.Call("")
	require.ErrorIs(t, err, errNotFound)

	require.Equal(t, "Time: 0.03s\nTime: 0.03s\n", out.String())
}

func TestFunc_Reusable(t *testing.T) {
	out, fc := captureWithFakeClock(t)
	delays := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 40 * time.Millisecond, 80 * time.Millisecond}

	sleepy := NewFunc1(func(d time.Duration) time.Duration {
		advance(fc, d)
		return d
	})

	for _, d := range delays {
		require.Equal(t, d, sleepy.Call(d))
		// Time spent between calls belongs to no report.
		advance(fc, time.Minute)
	}

	want := lo.Map(delays, func(d time.Duration, _ int) float64 { return d.Seconds() })
	require.Equal(t, want, reportedSeconds(t, out.String()))
}

func TestFunc_ReportsGrowWithDelay(t *testing.T) {
	out := captureReports(t)
	delays := []time.Duration{5 * time.Millisecond, 30 * time.Millisecond, 60 * time.Millisecond}

	sleepy := NewProc1(time.Sleep)
	lo.ForEach(delays, func(d time.Duration, _ int) { sleepy.Call(d) })

	secs := reportedSeconds(t, out.String())
	require.Len(t, secs, len(delays))
	for i, d := range delays {
		require.GreaterOrEqual(t, secs[i], d.Seconds())
	}
}

func TestFunc_PanicPropagatesWithoutReport(t *testing.T) {
	out := captureReports(t)

	boom := NewFunc1(func(x int) int {
		if x > 0 {
			panic("boom")
		}
		return x
	})

	require.PanicsWithValue(t, "boom", func() { boom.Call(1) })
	require.Empty(t, out.String())

	require.Equal(t, 0, boom.Call(0))
	require.Len(t, reportedSeconds(t, out.String()), 1)
}

func TestFunc_Disabled(t *testing.T) {
	out := captureReports(t)
	std.Load().enabled = false

	require.Equal(t, 21, NewFunc1(func(x int) int { return x * 3 }).Call(7))
	NewProc0(func() {}).Call()

	require.Empty(t, out.String())
}

func TestFunc_WriteErrorIsLogged(t *testing.T) {
	mockctrl := gomock.NewController(t)
	w := mock_exectimer.NewMockWriter(mockctrl)
	w.EXPECT().Write(gomock.Any()).Return(0, errors.New("broken pipe"))

	log, hook := logtest.NewNullLogger()
	useEmitter(t, &emitter{out: w, clock: clock.RealClock{}, log: log.WithField("component", "exectimer"), enabled: true})

	res := NewFunc1(func(x int) int { return x * 2 }).Call(5)

	require.Equal(t, 10, res)
	requireLogged(t, hook, "broken pipe")
}
