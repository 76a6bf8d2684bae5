package cli

import (
	"fmt"

	"yt-study-copilot/internal/version"
)

func Run(args []string) error {
	if len(args) == 0 {
		printRootUsage()
		return nil
	}

	switch args[0] {
	case "create":
		return runCreate(args[1:])
	case "job":
		return runJob(args[1:])
	case "packs":
		return runPacks(args[1:])
	case "pack":
		return runPack(args[1:])
	case "generate":
		return runGenerate(args[1:])
	case "transcript":
		return runTranscript(args[1:])
	case "ask":
		return runAsk(args[1:])
	case "history":
		return runHistory(args[1:])
	case "study":
		return runStudy(args[1:])
	case "doctor":
		return runDoctor(args[1:])
	case "version", "--version":
		fmt.Println(version.Value)
		return nil
	case "help", "-h", "--help":
		printRootUsage()
		return nil
	default:
		printRootUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printRootUsage() {
	fmt.Println("yt-study-copilot: terminal client for the YouTube Learning Copilot API")
	fmt.Println()
	fmt.Println("Quick Start:")
	fmt.Println("  yt-study-copilot create --url https://www.youtube.com/watch?v=...")
	fmt.Println("  yt-study-copilot generate --pack <id>")
	fmt.Println("  yt-study-copilot study --pack <id>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  create      ingest a YouTube video or playlist into a study pack")
	fmt.Println("  job         show (or watch) an ingestion/generation job")
	fmt.Println("  packs       list study packs with search and filters")
	fmt.Println("  pack        show one pack with its generated materials")
	fmt.Println("  generate    generate study materials for a pack")
	fmt.Println("  transcript  show the transcript or search its chunks")
	fmt.Println("  ask         ask a grounded question over a pack's transcript")
	fmt.Println("  history     show or clear the local ask history for a pack")
	fmt.Println("  study       interactive study session (flashcards, quiz, chapters)")
	fmt.Println("  doctor      check configuration and API reachability")
	fmt.Println("  version     print the client version")
	fmt.Println()
	fmt.Println("Notes:")
	fmt.Println("  - Use --json on commands for machine-readable output")
	fmt.Println("  - Configure via YTSC_API_BASE_URL, YTSC_STATE_DIR, YTSC_DEBUG (or a .env file)")
}
