package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/taxseed/pkg/errcode"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Report formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func formatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(
		format, "format", "f", formatText,
		"report format: text, json or yaml",
	)
}

func checkFormat(format string) error {
	switch strings.ToLower(format) {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return &gn.Error{
		Code: errcode.ReportFormatError,
		Msg:  "Unknown report format <em>%s</em>, use text, json or yaml",
		Vars: []any{format},
		Err:  fmt.Errorf("unknown report format %q", format),
	}
}

// printReport writes a machine-readable report. Text format prints
// nothing, progress messages already describe the run.
func printReport(w io.Writer, format string, report any) error {
	var res []byte
	var err error

	switch strings.ToLower(format) {
	case formatJSON:
		enc := gnfmt.GNjson{Pretty: true}
		res, err = enc.Encode(report)
	case formatYAML:
		res, err = yaml.Marshal(report)
	default:
		return nil
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, strings.TrimRight(string(res), "\n"))
	return err
}
