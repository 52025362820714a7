package main

import "testing"

func TestMainRunsCLI(t *testing.T) {
	var called bool
	orig := execute
	execute = func() { called = true }
	t.Cleanup(func() { execute = orig })

	main()

	if !called {
		t.Fatalf("expected execute to be called")
	}
}
