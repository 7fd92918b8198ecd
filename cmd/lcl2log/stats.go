package main

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/philipp01105/lcl2log/core"
	"github.com/philipp01105/lcl2log/logger"
)

var levelPattern = regexp.MustCompile(`^\[[^\]]*\] \[([A-Z]+)\] `)

// levelCounts counts log lines per level name. Lines that do not carry a
// level tag are counted under "OTHER".
func levelCounts(content string) map[string]int {
	counts := make(map[string]int)
	sc := bufio.NewScanner(strings.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if m := levelPattern.FindStringSubmatch(sc.Text()); m != nil {
			counts[m[1]]++
			continue
		}
		counts["OTHER"]++
	}
	return counts
}

func renderLevelTable(w io.Writer, counts map[string]int) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Level", "Lines"})

	var rows [][]string
	total := 0
	for _, lvl := range []core.Level{core.DebugLevel, core.InfoLevel, core.WarnLevel, core.ErrorLevel} {
		n := counts[lvl.String()]
		total += n
		rows = append(rows, []string{lvl.String(), strconv.Itoa(n)})
	}
	if n := counts["OTHER"]; n > 0 {
		total += n
		rows = append(rows, []string{"OTHER", strconv.Itoa(n)})
	}
	rows = append(rows, []string{"TOTAL", strconv.Itoa(total)})

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("build level table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render level table: %w", err)
	}
	return nil
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the log file by level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withLogger(cmd, func(l *logger.Logger) error {
				out := cmd.OutOrStdout()
				if _, err := fmt.Fprintln(out, l.LogFilePath()); err != nil {
					return err
				}
				return renderLevelTable(out, levelCounts(l.GetLogs()))
			})
		},
	}
}
