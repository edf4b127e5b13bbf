package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/postindex"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	result, err := deps.Indexer.Run(deps.Ctx)
	if err != nil {
		if code := postindex.ErrorCode(err); code != postindex.EINTERNAL {
			fmt.Fprintf(deps.Stderr, "error: %s\n", postindex.ErrorMessage(err))
		}
		return err
	}

	count := len(result.Snapshot.Index.Posts)
	deps.Logger.Debug("index updated",
		"root", c.Root,
		"posts", count,
		"tags", result.Snapshot.Index.Tags.Len(),
		"series", result.Snapshot.Index.Series.Len(),
		"written", result.Written,
	)

	r := lipgloss.NewRenderer(deps.Stdout)
	if deps.Indexer.DryRun {
		style := r.NewStyle().Foreground(lipgloss.Color("240"))
		fmt.Fprintln(deps.Stdout, style.Render(c.dryRunMessage(count)))
		return nil
	}

	style := r.NewStyle().Foreground(lipgloss.Color("42"))
	fmt.Fprintln(deps.Stdout, style.Render(c.doneMessage(count)))
	return nil
}

func (c *BuildCmd) doneMessage(count int) string {
	if c.Locale == "ko" {
		return fmt.Sprintf("✅ 인덱스 갱신 완료: %d개 포스트", count)
	}
	return fmt.Sprintf("✅ Index updated: %d posts", count)
}

func (c *BuildCmd) dryRunMessage(count int) string {
	if c.Locale == "ko" {
		return fmt.Sprintf("드라이 런: %d개 포스트, 파일 변경 없음", count)
	}
	return fmt.Sprintf("Dry run: %d posts, nothing written", count)
}
