package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// listedIndex is the subset of the index document that list reads.
type listedIndex struct {
	Name       string        `json:"name"`
	Version    string        `json:"version"`
	Extensions []listedEntry `json:"extensions"`
	Tags       []string      `json:"tags"`
}

type listedEntry struct {
	Identifier string `json:"identifier"`
	Meta       struct {
		Tags []string `json:"tags"`
	} `json:"meta"`
}

func newListCmd() *cobra.Command {
	var (
		tagFilter string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the extensions in a built index",
		Long:  `Read the index written by build (--out) and print its extensions.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, wd, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			path := absPath(wd, cfg.OutputPath)
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading index %s: %w", path, err)
			}
			var idx listedIndex
			if err := json.Unmarshal(data, &idx); err != nil {
				return fmt.Errorf("parsing index %s: %w", path, err)
			}

			entries := filterByTag(idx.Extensions, tagFilter)

			if asJSON {
				out, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling list: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No extensions found.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s@%s\n\n", idx.Name, idx.Version)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "IDENTIFIER\tTAGS")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\n", e.Identifier, strings.Join(e.Meta.Tags, ", "))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&tagFilter, "tag", "", "Only list extensions carrying this tag")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func filterByTag(entries []listedEntry, tag string) []listedEntry {
	if tag == "" {
		return entries
	}
	var out []listedEntry
	for _, e := range entries {
		for _, t := range e.Meta.Tags {
			if t == tag {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
