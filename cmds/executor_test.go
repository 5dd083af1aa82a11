package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestExecuteLeading(t *testing.T) {
	executor := NewExecutor()

	var verbose bool
	executor.Define("-verbose", Func(func() {
		verbose = true
	}))

	rest, err := executor.ExecuteLeading([]string{
		"-verbose", "script.lox", "extra",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !verbose {
		t.Fatal()
	}
	if str := strings.Join(rest, " "); str != "script.lox extra" {
		t.Fatalf("got %q", str)
	}

	rest, err = executor.ExecuteLeading(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 0 {
		t.Fatalf("got %v", rest)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "42", "bar"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "bar" {
		t.Fatal()
	}
}

func TestErrorReturningCommand(t *testing.T) {
	executor := NewExecutor()

	executor.Define("ok", Func(func() error {
		return nil
	}))
	executor.Define("bad", Func(func() error {
		return errors.New("no good")
	}))

	// nil error must not be treated as a failure
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}

	err := executor.Execute([]string{"bad"})
	if err == nil || !strings.Contains(err.Error(), "no good") {
		t.Fatalf("got %v", err)
	}
}

func TestBadArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	executor.Define("n", Func(func(i int) {
		n = i
	}))
	err := executor.Execute([]string{"n", "notanumber"})
	if err == nil || !strings.Contains(err.Error(), "convert") {
		t.Fatalf("got %v", err)
	}
	if n != 0 {
		t.Fatal()
	}
}
