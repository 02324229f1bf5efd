package progress

import "github.com/schollz/progressbar/v3"

// Observer receives one Step call per completed unit of a batch computation.
// Implementations must be cheap; they run inside the builder's loop.
type Observer interface {
	// Step records that one more unit of work has finished.
	Step()
}

// Func adapts a plain function to the Observer interface.
type Func func()

// Step implements Observer.
func (f Func) Step() { f() }

// Nop returns an Observer that ignores every Step call.
func Nop() Observer { return nopObserver{} }

type nopObserver struct{}

func (nopObserver) Step() {}

// Bar is a terminal progress bar Observer backed by schollz/progressbar.
// It renders to stderr and finishes automatically once total steps arrive.
type Bar struct {
	bar *progressbar.ProgressBar
}

// NewBar returns a Bar expecting total Step calls.
func NewBar(total int) *Bar {
	return &Bar{bar: progressbar.Default(int64(total))}
}

// Step implements Observer by advancing the terminal bar one unit.
// Rendering errors are ignored; progress display never fails a computation.
func (b *Bar) Step() {
	_ = b.bar.Add(1)
}
