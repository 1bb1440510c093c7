// Package profile starts either a pkg/profile runtime profile or the Gio
// frame timing recorder behind one api.
package profile

import (
	"fmt"
	"log"
	"strings"

	"gioui.org/layout"
	"gioui.org/x/profiling"
	"github.com/pkg/profile"
)

// Opt names a kind of profile.
type Opt string

const (
	None      Opt = "none"
	CPU       Opt = "cpu"
	Memory    Opt = "mem"
	Block     Opt = "block"
	Goroutine Opt = "goroutine"
	Mutex     Opt = "mutex"
	Trace     Opt = "trace"
	Gio       Opt = "gio"
)

// Opts lists every kind of profile in the order they are documented.
var Opts = []Opt{None, CPU, Memory, Block, Goroutine, Mutex, Trace, Gio}

// runtimeProfiles maps options to their pkg/profile mode.
var runtimeProfiles = map[Opt]func(*profile.Profile){
	CPU:       profile.CPUProfile,
	Memory:    profile.MemProfile,
	Block:     profile.BlockProfile,
	Goroutine: profile.GoroutineProfile,
	Mutex:     profile.MutexProfile,
	Trace:     profile.TraceProfile,
}

// ParseOpt parses the name of a profile. The empty string means None.
func ParseOpt(s string) (Opt, error) {
	if s == "" {
		return None, nil
	}
	for _, opt := range Opts {
		if Opt(s) == opt {
			return opt, nil
		}
	}
	return None, fmt.Errorf("unknown profile %q: use one of %v", s, Opts)
}

// String implements flag.Value.
func (o *Opt) String() string {
	if o == nil || *o == "" {
		return string(None)
	}
	return string(*o)
}

// Set implements flag.Value.
func (o *Opt) Set(s string) error {
	opt, err := ParseOpt(strings.ToLower(s))
	if err != nil {
		return err
	}
	*o = opt
	return nil
}

// Profiler records the profile selected by its Opt between Start and Stop.
// The zero value profiles nothing.
type Profiler struct {
	Opt  Opt
	stop func()
	// recorder is only set while profiling Gio frames.
	recorder *profiling.CSVTimingRecorder
}

// NewProfiler creates a profiler for the option.
func (o Opt) NewProfiler() *Profiler {
	return &Profiler{Opt: o}
}

// Start profiling.
func (p *Profiler) Start() {
	if mode, ok := runtimeProfiles[p.Opt]; ok {
		p.stop = profile.Start(mode, profile.NoShutdownHook).Stop
		return
	}
	if p.Opt != Gio {
		return
	}
	recorder, err := profiling.NewRecorder(nil)
	if err != nil {
		log.Printf("starting frame profiler: %v", err)
		return
	}
	p.recorder = recorder
	p.stop = func() {
		if err := recorder.Stop(); err != nil {
			log.Printf("stopping frame profiler: %v", err)
		}
	}
}

// Stop profiling and write the profile out. Stop is a no-op when profiling
// never started.
func (p *Profiler) Stop() {
	if p.stop != nil {
		p.stop()
		p.stop = nil
	}
	p.recorder = nil
}

// Record the timings of a frame when profiling Gio.
func (p *Profiler) Record(gtx layout.Context) {
	if p.recorder != nil {
		p.recorder.Profile(gtx)
	}
}
