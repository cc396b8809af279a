// Command bst builds a binary search tree from integers and prints one of its
// traversals.
//
//	bst -order level -remove 7,10 10 5 15 3 7 1 17 12 19
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/e11jah/bst"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	var (
		orderName string
		removes   string
		inputFile string
		iterative bool
	)
	fs := flag.NewFlagSet("bst", flag.ContinueOnError)
	fs.StringVar(&orderName, "order", "in", "Traversal order: level, dfs, pre, in or post")
	fs.StringVar(&removes, "remove", "", "Comma separated values to remove after building the tree")
	fs.StringVar(&inputFile, "input", "", "Read whitespace separated values from this file instead of the arguments")
	fs.BoolVar(&iterative, "iterative", false, "Use loop based insert, search and remove")
	if err := fs.Parse(args); err != nil {
		return err
	}

	order, err := bst.ParseOrder(orderName)
	if err != nil {
		return fmt.Errorf("invalid -order: %w", err)
	}

	fields := fs.Args()
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		fields = strings.Fields(string(data))
	}

	values, err := convertToIntSlice(fields)
	if err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}

	var opts []bst.Option
	if iterative {
		opts = append(opts, bst.WithIterative())
	}
	tree := bst.New[int](opts...)
	for _, v := range values {
		if _, err := tree.Insert(v); err != nil {
			if errors.Is(err, bst.ErrDuplicateValue) {
				log.Printf("Skipping: %v", err)
				continue
			}
			return fmt.Errorf("insert %d: %w", v, err)
		}
	}

	if removes != "" {
		toRemove, err := convertToIntSlice(strings.Split(removes, ","))
		if err != nil {
			return fmt.Errorf("invalid -remove: %w", err)
		}
		for _, v := range toRemove {
			tree.Remove(v)
		}
	}

	out := make([]string, 0, tree.Len())
	for v := range bst.Traverse(tree.Root(), order) {
		out = append(out, strconv.Itoa(v))
	}
	fmt.Fprintf(w, "size: %d height: %d\n", tree.Len(), tree.Height())
	fmt.Fprintf(w, "%s: %s\n", order, strings.Join(out, " "))
	return nil
}

func convertToIntSlice(fields []string) ([]int, error) {
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
