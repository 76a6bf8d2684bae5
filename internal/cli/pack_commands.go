package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"yt-study-copilot/internal/api"
	"yt-study-copilot/internal/content"
	"yt-study-copilot/internal/model"
)

// generatePollTimeout is wider than the create wait: generation runs one
// LLM pass per material kind.
const generatePollTimeout = 300 * time.Second

func runPacks(args []string) error {
	fs := flag.NewFlagSet("packs", flag.ContinueOnError)
	query := fs.String("q", "", "search in title / URL / video id")
	status := fs.String("status", "", "filter by pack status")
	sourceType := fs.String("source-type", "", "filter by source type: video|playlist")
	playlistID := fs.String("playlist", "", "filter by playlist id")
	limit := fs.Int("limit", 20, "page size")
	offset := fs.Int("offset", 0, "page offset")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	list, err := e.client.ListStudyPacks(context.Background(), api.ListPacksOptions{
		Query:      *query,
		Status:     *status,
		SourceType: *sourceType,
		PlaylistID: *playlistID,
		Limit:      *limit,
		Offset:     *offset,
	})
	if err != nil {
		return err
	}

	if *jsonOut {
		return printJSON(list)
	}

	if len(list.Packs) == 0 {
		fmt.Println("no study packs found")
		return nil
	}
	for _, p := range list.Packs {
		line := fmt.Sprintf("%4d  [%s]  %s", p.ID, p.Status, orDash(p.Title))
		if p.PlaylistID != "" {
			line += fmt.Sprintf("  (playlist: %s", orDash(p.PlaylistTitle))
			if p.PlaylistIndex != nil {
				line += fmt.Sprintf(" #%d", *p.PlaylistIndex)
			}
			line += ")"
		}
		fmt.Println(line)
	}
	shown := list.Offset + len(list.Packs)
	fmt.Printf("showing %d-%d of %d\n", list.Offset+1, shown, list.Total)
	if shown < list.Total {
		fmt.Printf("next page: yt-study-copilot packs --limit %d --offset %d\n", list.Limit, shown)
	}
	return nil
}

func runPack(args []string) error {
	fs := flag.NewFlagSet("pack", flag.ContinueOnError)
	packID := fs.Int("pack", 0, "study pack id")
	withMaterials := fs.Bool("materials", true, "render generated materials")
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

	pack, err := e.client.GetStudyPack(ctx, id)
	if err != nil {
		return err
	}

	var materials []model.StudyMaterial
	if *withMaterials {
		materials, err = e.client.GetMaterials(ctx, id)
		if err != nil {
			return err
		}
	}

	if *jsonOut {
		return printJSON(struct {
			Pack      model.StudyPack       `json:"study_pack"`
			Materials []model.StudyMaterial `json:"materials,omitempty"`
		}{pack, materials})
	}

	fmt.Printf("pack %d: %s\n", pack.ID, orDash(pack.Title))
	fmt.Printf("status: %s\n", pack.Status)
	fmt.Printf("source: %s (%s)\n", pack.SourceURL, pack.SourceType)
	if pack.Language != "" {
		fmt.Printf("language: %s\n", pack.Language)
	}
	if pack.PlaylistID != "" {
		fmt.Printf("playlist: %s", orDash(pack.PlaylistTitle))
		if pack.PlaylistIndex != nil {
			fmt.Printf(" (entry %d)", *pack.PlaylistIndex)
		}
		fmt.Println()
	}
	if pack.Error != "" {
		fmt.Printf("error: %s\n", pack.Error)
	}

	if !*withMaterials {
		return nil
	}
	if len(materials) == 0 {
		fmt.Println()
		fmt.Printf("no materials yet; run: yt-study-copilot generate --pack %d\n", id)
		return nil
	}
	for _, m := range materials {
		fmt.Println()
		fmt.Printf("== %s (%s) ==\n", strings.ReplaceAll(m.Kind, "_", " "), m.Status)
		if m.Error != "" {
			fmt.Printf("error: %s\n", m.Error)
			continue
		}
		fmt.Println(content.Render(m))
	}
	return nil
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	packID := fs.Int("pack", 0, "study pack id")
	noWait := fs.Bool("no-wait", false, "enqueue only; do not poll the generation job")
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

	started, err := e.client.GenerateMaterials(ctx, id)
	if err != nil {
		return err
	}
	if !*jsonOut {
		fmt.Printf("generation job %d queued for pack %d\n", started.JobID, id)
	}
	if *noWait {
		if *jsonOut {
			return printJSON(started)
		}
		return nil
	}

	if !*jsonOut {
		fmt.Println("generating...")
	}
	job, err := e.client.PollJobUntilDone(ctx, started.JobID, api.PollOptions{
		Interval: e.cfg.PollInterval,
		Timeout:  generatePollTimeout,
	})
	if err != nil {
		return err
	}
	if job.Status == model.JobFailed {
		msg := job.Error
		if msg == "" {
			msg = "job failed"
		}
		return fmt.Errorf("generation failed: %s", msg)
	}

	materials, err := e.client.GetMaterials(ctx, id)
	if err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(struct {
			Job       model.Job             `json:"job"`
			Materials []model.StudyMaterial `json:"materials"`
		}{job, materials})
	}
	fmt.Printf("generation done: %d material rows\n", len(materials))
	for _, m := range materials {
		fmt.Printf("  %s: %s\n", m.Kind, m.Status)
	}
	fmt.Printf("next: yt-study-copilot study --pack %d\n", id)
	return nil
}
