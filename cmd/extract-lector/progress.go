// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// progress draws the lag search on a terminal. On anything else, or when
// disabled, every method is a no-op.
type progress struct {
	out     io.Writer
	enabled bool
	bar     *progressbar.ProgressBar
}

func newProgress(out io.Writer, disabled bool) *progress {
	return &progress{out: out, enabled: !disabled && isTerminal(out)}
}

// update matches lag.Correlator.Progress. The bar is created on the first
// call, once the total is known.
func (p *progress) update(done, total int) {
	if !p.enabled {
		return
	}
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.out),
			progressbar.OptionSetDescription("lag search"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = p.bar.Set(done)
}

func (p *progress) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
