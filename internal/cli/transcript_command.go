package cli

import (
	"context"
	"flag"
	"fmt"

	"yt-study-copilot/internal/api"
	"yt-study-copilot/internal/content"
)

func runTranscript(args []string) error {
	fs := flag.NewFlagSet("transcript", flag.ContinueOnError)
	packID := fs.Int("pack", 0, "study pack id")
	search := fs.String("search", "", "keyword search over transcript chunks")
	limit := fs.Int("limit", 50, "chunk page size")
	offset := fs.Int("offset", 0, "chunk page offset")
	chunks := fs.Bool("chunks", false, "list chunks even without a search term")
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
	ctx := context.Background()

	if *search != "" || *chunks {
		resp, err := e.client.ListTranscriptChunks(ctx, id, api.ChunkQuery{
			Query:  *search,
			Limit:  *limit,
			Offset: *offset,
		})
		if err != nil {
			return err
		}
		if *jsonOut {
			return printJSON(resp)
		}
		if len(resp.Items) == 0 {
			fmt.Println("no transcript chunks matched")
			return nil
		}
		for _, ch := range resp.Items {
			fmt.Printf("[%s-%s] #%d %s\n",
				content.FormatTime(ch.StartSec), content.FormatTime(ch.EndSec), ch.Idx, ch.Text)
		}
		shown := resp.Offset + len(resp.Items)
		fmt.Printf("showing %d-%d of %d\n", resp.Offset+1, shown, resp.Total)
		return nil
	}

	t, err := e.client.GetTranscript(ctx, id)
	if err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(t)
	}
	if t.TranscriptText == "" {
		fmt.Println("no transcript available for this pack")
		return nil
	}
	fmt.Println(t.TranscriptText)
	return nil
}
