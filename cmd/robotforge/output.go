package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/robot-forge/internal/errors"
)

// printStructured writes v as json or yaml and reports whether it did.
// Text output is left to each command.
func printStructured(w io.Writer, v any) (bool, error) {
	switch outputFmt {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, errors.Wrap(err, "failed to encode json")
		}
		_, err = fmt.Fprintln(w, string(data))
		return true, err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, errors.Wrap(err, "failed to encode yaml")
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}
