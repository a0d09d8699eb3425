package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gops/agent"
)

func main() {
	startGops()
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if err == errUsage {
			usage(os.Stderr)
			os.Exit(2)
		}
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wordvec <command> [options] [words]")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  vector     Print the vector of a word (zero vector when unknown)")
	fmt.Fprintln(w, "  members    List vocabulary tokens containing a substring")
	fmt.Fprintln(w, "  neighbors  List neighbors of a word above a similarity threshold")
	fmt.Fprintln(w, "  pair       Print the most similar pair among words")
	fmt.Fprintln(w, "  nearest    Print the nearest neighbor of a word outside --exclude")
	fmt.Fprintln(w, "  chain      Follow nearest neighbors from a word without repeats")
	fmt.Fprintln(w, "  docvec     Print the mean vector of words")
	fmt.Fprintln(w, "  top        Rank words by similarity to their centroid")
	fmt.Fprintln(w, "  origin     Print the word closest to the origin")
	fmt.Fprintln(w, "  position   Print the running mean of one coordinate over words")
	fmt.Fprintln(w, "  document   Find the corpus document most similar to another")
	fmt.Fprintln(w, "  import     Copy an embedding file into a SQLite database")
}

// startGops exposes runtime diagnostics for long table loads.
func startGops() {
	if os.Getenv("WORDVEC_GOPS") == "" {
		return
	}
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		log.Printf("gops: %v", err)
	}
}
