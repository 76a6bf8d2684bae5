package cli

import (
	"flag"
	"fmt"

	"yt-study-copilot/internal/history"
)

func runHistory(args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	packID := fs.Int("pack", 0, "study pack id")
	clear := fs.Bool("clear", false, "delete the pack's local ask history")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := requirePackID(*packID)
	if err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()
	store := history.NewStore(e.cfg.StateDir)

	if *clear {
		if err := store.Clear(id); err != nil {
			return err
		}
		fmt.Printf("cleared ask history for pack %d\n", id)
		return nil
	}

	entries, err := store.Load(id)
	if err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		fmt.Printf("no ask history for pack %d\n", id)
		return nil
	}
	for _, entry := range entries {
		marker := ""
		if entry.Refused {
			marker = " (refused)"
		}
		fmt.Printf("%s%s\n", entry.AskedAt, marker)
		fmt.Printf("  Q: %s\n", entry.Question)
		fmt.Printf("  A: %s\n", truncate(entry.Answer, 200))
	}
	return nil
}
