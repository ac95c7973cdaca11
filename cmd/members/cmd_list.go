package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aidar/stellar-team/internal/domain"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var listFlags struct {
	format string
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List team members in display order",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().StringVarP(&listFlags.format, "format", "f", formatTable, "Output format: table, json or yaml")
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	all := members.All()
	out := cmd.OutOrStdout()

	switch listFlags.format {
	case formatTable:
		writeTable(out, all)
		return nil
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(map[string][]domain.Member{"members": all}); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", listFlags.format, formatTable, formatJSON, formatYAML)
	}
}

func writeTable(w io.Writer, all []domain.Member) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Name", "Affiliation", "Link", "Photo"})
	for i, m := range all {
		t.AppendRow(table.Row{strconv.Itoa(i + 1), m.Name, m.Affiliation, m.Link, m.Photo})
	}
	t.Render()
}
