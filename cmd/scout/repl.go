package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ChamsBouzaiene/scout/internal/engine"
	"github.com/ChamsBouzaiene/scout/internal/history"
)

// runREPL reads questions from stdin until EOF or :quit.
func runREPL(ctx context.Context, agent *engine.Agent, store *history.Store) error {
	fmt.Println("scout agent. Ask a question, :history for recent runs, :quit to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":q" || line == "exit":
			return nil
		case line == ":history":
			printHistory(ctx, store)
			continue
		}

		start := time.Now()
		resp := agent.Run(ctx, line)
		saveRun(ctx, store, agent, line, resp, time.Since(start))

		if resp.Success {
			fmt.Printf("scout> %s\n", resp.Answer)
		} else {
			fmt.Printf("scout> (error) %s\n", resp.Error)
		}
	}
}

func printHistory(ctx context.Context, store *history.Store) {
	if store == nil {
		fmt.Println("history is disabled")
		return
	}

	records, err := store.List(ctx, 10)
	if err != nil {
		fmt.Printf("could not read history: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Println("no runs recorded yet")
		return
	}

	for _, r := range records {
		status := "ok"
		if !r.Success {
			status = "error"
		}
		fmt.Printf("[%s] %s  %s (%d steps, %d tokens, %dms)\n",
			r.CreatedAt.Format("2006-01-02 15:04"), status, r.Question,
			r.Steps, r.TotalTokens, r.DurationMS)
	}
}
