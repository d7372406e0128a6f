// Command dynarray exercises the list and stack containers and prints their
// contents as they grow and shrink.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/emirpasic/gods/v2/containers"
	"github.com/obolnetwork/charon/app/log"
	"github.com/obolnetwork/charon/app/z"
	"github.com/xenowits/dynarray/capacity"
	"github.com/xenowits/dynarray/list"
	"github.com/xenowits/dynarray/stack"
	"io"
	"os"
)

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdout, os.Stderr))
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dynarray", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", 9, "number of elements to add to each container")
	initial := fs.Int("capacity", capacity.DefaultInitial, "initial list capacity")
	level := fs.String("log-level", "info", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := log.InitLogger(log.Config{Level: *level, Format: "console"}); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	ctx := context.Background()
	if err := demoList(ctx, stdout, *n, *initial); err != nil {
		log.Error(ctx, "List demo failed", err)
		return 1
	}

	if err := demoStack(ctx, stdout, *n); err != nil {
		log.Error(ctx, "Stack demo failed", err)
		return 1
	}

	return 0
}

func demoList(ctx context.Context, w io.Writer, n, initial int) error {
	l, err := list.New[int](capacity.WithInitial(initial))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Is a new list empty? %v\n", l.IsEmpty())
	for i := 0; i < n; i++ {
		resized, err := l.Append(i * 7 % 13)
		if err != nil {
			return err
		}
		if resized {
			log.Info(ctx, "List grew", z.Int("size", l.Size()), z.Int("capacity", l.Capacity()))
		}
		fmt.Fprintf(w, "Capacity = %d %s\n", l.Capacity(), l)
	}

	if l.IsEmpty() {
		return describe[int](w, "list", l)
	}

	if _, err := l.RemoveAt(l.Size() - 1); err != nil {
		return err
	}
	fmt.Fprintf(w, "Removed last element %s\n", l)

	if _, err := l.Insert(l.Size(), 42); err != nil {
		return err
	}

	first, err := l.Get(0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Contains %d? %v\n", first, l.Contains(first))
	fmt.Fprintf(w, "Contains -1? %v\n", l.Contains(-1))

	it := l.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, e)
	}

	return describe[int](w, "list", l)
}

func demoStack(ctx context.Context, w io.Writer, n int) error {
	s, err := stack.New[string]()
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		s.Push(fmt.Sprintf("Hello%d", i))
	}
	log.Info(ctx, "Stack filled", z.Int("size", s.Size()), z.Int("capacity", s.Capacity()))

	it := s.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, e)
	}

	for {
		e, ok := s.Pop()
		if !ok {
			break
		}
		fmt.Fprintf(w, "Popped %s\n", e)
	}

	return describe[string](w, "stack", s)
}

// describe prints a summary line for any gods container.
func describe[T any](w io.Writer, name string, c containers.Container[T]) error {
	_, err := fmt.Fprintf(w, "%s: size=%d empty=%v %s\n", name, c.Size(), c.Empty(), c.String())
	return err
}
