package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"yt-study-copilot/internal/content"
	"yt-study-copilot/internal/history"
	"yt-study-copilot/internal/model"
)

func runAsk(args []string) error {
	fs := flag.NewFlagSet("ask", flag.ContinueOnError)
	packID := fs.Int("pack", 0, "study pack id")
	question := fs.String("q", "", "question to ask over the pack's transcript")
	modelName := fs.String("model", "", "answer model override")
	embedModel := fs.String("embed-model", "", "retrieval embedding model override")
	limit := fs.Int("limit", 0, "max retrieved chunks (0 = server default)")
	hybrid := fs.Bool("hybrid", true, "hybrid keyword+vector retrieval")
	minScore := fs.Float64("min-score", 0, "minimum best retrieval score (0 = server default)")
	noHistory := fs.Bool("no-history", false, "do not record this exchange in local history")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := requirePackID(*packID)
	if err != nil {
		return err
	}

	q := strings.TrimSpace(*question)
	if q == "" {
		q, err = promptRequired("question")
		if err != nil {
			return err
		}
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	req := model.AskRequest{
		Question:   q,
		Model:      strings.TrimSpace(*modelName),
		EmbedModel: strings.TrimSpace(*embedModel),
		Hybrid:     hybrid,
	}
	if *limit > 0 {
		req.Limit = limit
	}
	if *minScore > 0 {
		req.MinBestScore = minScore
	}

	resp, err := e.client.Ask(context.Background(), id, req)
	if err != nil {
		return err
	}

	if !*noHistory {
		store := history.NewStore(e.cfg.StateDir)
		if _, histErr := store.Append(id, history.Entry{
			Question:  q,
			Answer:    resp.Answer,
			Refused:   resp.Refused,
			Model:     resp.Model,
			Citations: len(resp.Citations),
		}); histErr != nil {
			// History is best-effort; the answer still prints.
			fmt.Fprintf(flag.CommandLine.Output(), "warning: could not save ask history: %v\n", histErr)
		}
	}

	if *jsonOut {
		return printJSON(resp)
	}

	if resp.Refused {
		fmt.Println("refused: the transcript does not ground an answer to that question")
		if resp.Answer != "" {
			fmt.Println(resp.Answer)
		}
		return nil
	}
	fmt.Println(resp.Answer)
	if len(resp.Citations) > 0 {
		fmt.Println()
		fmt.Println("citations:")
		for _, c := range resp.Citations {
			line := fmt.Sprintf("  [%s-%s] #%d score=%.2f %s",
				content.FormatTime(c.StartSec), content.FormatTime(c.EndSec), c.Idx, c.Score, truncate(c.Text, 100))
			fmt.Println(line)
			if c.URL != "" {
				fmt.Printf("      %s\n", c.URL)
			}
		}
	}
	if resp.Model != "" {
		fmt.Printf("model: %s\n", resp.Model)
	}
	return nil
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
