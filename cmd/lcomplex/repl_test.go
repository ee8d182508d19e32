package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jjvbsag/lcomplex"
)

func TestEval(t *testing.T) {
	L := lcomplex.Init()
	defer L.Close()

	tdt := []struct{ line, want string }{
		{"c = COMPLEX.new(1.2, 3.4)", ""},
		{"c", "{1.2,3.4}"},
		{"c * COMPLEX.new(5.6, 7.8)", "{-19.8,28.4}"},
		{"c, 1", "{1.2,3.4}\t1"},
		{"COMPLEX.new(5.6, 7.8):abs()", "92.2"},
	}
	for _, v := range tdt {
		got, err := eval(L, v.line)
		if err != nil {
			t.Errorf("%q: %v", v.line, err)
			continue
		}
		if got != v.want {
			t.Errorf("%q: got %q, want %q", v.line, got, v.want)
		}
	}
	if top := L.GetTop(); top != 0 {
		t.Errorf("stack not balanced: %d", top)
	}

	if _, err := eval(L, "c + 1"); err == nil || !strings.Contains(err.Error(), "__add") {
		t.Errorf("expected type error, got %v", err)
	}
	if _, err := eval(L, "c +"); err == nil {
		t.Error("expected syntax error")
	}
}

func TestReplLines(t *testing.T) {
	L := lcomplex.Init()
	defer L.Close()

	in := strings.NewReader("a = COMPLEX.new(1, 2)\n\na + a\nnope(\n")
	var out bytes.Buffer
	if err := replLines(L, in, &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || lines[0] != "{2,4}" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRun(t *testing.T) {
	opts := lcomplex.DefaultOptions()
	err := run(opts, []string{`assert(tostring(COMPLEX.new(0.5, 0) - COMPLEX.new(0, 0.5)) == '{0.5,-0.5}')`}, nil, false)
	if err != nil {
		t.Error(err)
	}
	if err := run(opts, []string{`error('x')`}, nil, false); err == nil {
		t.Error("expected error from failing chunk")
	}
}
