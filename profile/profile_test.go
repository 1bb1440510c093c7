package profile

import (
	"flag"
	"testing"
)

func TestParseOpt(t *testing.T) {
	type testcase struct {
		in       string
		expected Opt
		err      bool
	}
	for _, tc := range []testcase{
		{in: "", expected: None},
		{in: "cpu", expected: CPU},
		{in: "gio", expected: Gio},
		{in: "heap", expected: None, err: true},
	} {
		got, err := ParseOpt(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("%q: unexpected error %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("%q: expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestOptFlag(t *testing.T) {
	var opt Opt
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&opt, "profile", "")
	if err := fs.Parse([]string{"-profile", "MEM"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	if opt != Memory {
		t.Errorf("expected %q, got %q", Memory, opt)
	}
}

func TestZeroProfiler(t *testing.T) {
	p := None.NewProfiler()
	p.Start()
	p.Stop()
	p.Stop()
}
