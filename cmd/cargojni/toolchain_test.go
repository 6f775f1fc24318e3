package main

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// invocationFile is where fakeCargo records how it was called, relative to its
// working directory.
const invocationFile = "cargo-invocation.txt"

// fakeCargo stands in for cargo in scripts. It records its arguments and sorted
// environment, then produces the library cargo would have built.
func fakeCargo() {
	env := os.Environ()
	slices.Sort(env)

	record := "args: " + strings.Join(os.Args[1:], " ") + "\n" + strings.Join(env, "\n") + "\n"
	if err := os.WriteFile(invocationFile, []byte(record), 0o600); err != nil {
		fail(err)
	}

	profile := "debug"
	if slices.Contains(os.Args[1:], "--release") {
		profile = "release"
	}
	out := filepath.Join(cmp.Or(os.Getenv("CARGO_TARGET_DIR"), "target"), profile)
	for _, arg := range os.Args[1:] {
		if triple, ok := strings.CutPrefix(arg, "--target="); ok {
			out = filepath.Join(filepath.Dir(out), triple, profile)
		}
	}

	fmt.Fprintln(os.Stderr, "   Compiling example v0.1.0")
	if err := os.MkdirAll(out, 0o750); err != nil {
		fail(err)
	}
	if err := os.WriteFile(filepath.Join(out, "libexample.so"), []byte("lib"), 0o600); err != nil {
		fail(err)
	}
}

// fakeRustc answers the host triple query.
func fakeRustc() {
	fmt.Println("rustc 1.80.0 (051478957 2024-07-21)")
	fmt.Println("host: x86_64-unknown-linux-gnu")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
