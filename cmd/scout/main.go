package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"

	"github.com/ChamsBouzaiene/scout/internal/config"
	"github.com/ChamsBouzaiene/scout/internal/engine"
	"github.com/ChamsBouzaiene/scout/internal/history"
	"github.com/ChamsBouzaiene/scout/internal/providers"
	"github.com/ChamsBouzaiene/scout/internal/telemetry"
	"github.com/ChamsBouzaiene/scout/internal/tools"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("scout", flag.ExitOnError)
	query := fs.String("q", "", "Run a single query and exit (default: interactive REPL)")
	maxSteps := fs.Int("max-steps", 0, "Maximum agent steps per query (default: 5)")
	stdoutTrace := fs.Bool("stdout-trace", false, "Print spans to stdout instead of exporting via OTLP")
	asJSON := fs.Bool("json", false, "Print the result as JSON (single-query mode only)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Saved config fills in anything the environment doesn't set.
	if mgr, err := config.NewManager(); err == nil {
		if cfg, err := mgr.Load(); err == nil {
			cfg.ApplyToEnv()
		}
	}

	tcfg := telemetry.ConfigFromEnv()
	if *stdoutTrace {
		tcfg.Exporter = "stdout"
	}
	tracer, shutdown := telemetry.Init(ctx, tcfg)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("⚠️  trace shutdown: %v", err)
		}
	}()

	agent, err := buildAgent(tracer, *maxSteps)
	if err != nil {
		return err
	}

	store := openHistory(ctx)
	if store != nil {
		defer store.Close()
	}

	if *query != "" {
		return runOnce(ctx, agent, store, *query, *asJSON)
	}
	return runREPL(ctx, agent, store)
}

// buildAgent wires the provider, tools and tracer into an Agent. A missing
// credential leaves the LLM nil: the agent still runs, answering every query
// with a not-configured error.
func buildAgent(tracer trace.Tracer, maxSteps int) (*engine.Agent, error) {
	llm, model, err := providers.NewLLMClientFromEnv()
	if err != nil {
		return nil, err
	}
	if llm == nil {
		log.Printf("⚠️  no LLM credentials found, agent disabled")
	}

	if maxSteps <= 0 {
		if v := os.Getenv("AGENT_MAX_STEPS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				maxSteps = n
			}
		}
	}

	return engine.NewAgentBuilder().
		WithLLM(llm).
		WithModel(model).
		WithMaxSteps(maxSteps).
		WithTools(tools.DefaultRegistry()).
		WithTracer(tracer).
		Build()
}

// openHistory opens the run history database. History is best-effort: any
// failure logs a warning and returns nil.
func openHistory(ctx context.Context) *history.Store {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("⚠️  history disabled: %v", err)
		return nil
	}
	dir := filepath.Join(configDir, "scout")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("⚠️  history disabled: %v", err)
		return nil
	}

	store, err := history.NewStore(ctx, filepath.Join(dir, "history.db"))
	if err != nil {
		log.Printf("⚠️  history disabled: %v", err)
		return nil
	}
	return store
}

func runOnce(ctx context.Context, agent *engine.Agent, store *history.Store, query string, asJSON bool) error {
	start := time.Now()
	resp := agent.Run(ctx, query)
	saveRun(ctx, store, agent, query, resp, time.Since(start))

	if asJSON {
		data, err := json.Marshal(resp)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else if resp.Success {
		fmt.Println(resp.Answer)
	} else {
		fmt.Fprintln(os.Stderr, resp.Error)
	}

	if !resp.Success {
		os.Exit(1)
	}
	return nil
}

func saveRun(ctx context.Context, store *history.Store, agent *engine.Agent, query string, resp engine.Response, elapsed time.Duration) {
	if store == nil {
		return
	}
	st := agent.LastState()
	if st == nil {
		return
	}

	rec := history.Record{
		RunID:       st.RunID,
		Question:    query,
		Answer:      resp.Answer,
		ErrorMsg:    resp.Error,
		Success:     resp.Success,
		Steps:       st.Step,
		TotalTokens: st.Totals.Total,
		DurationMS:  elapsed.Milliseconds(),
		Transcript:  st.Scratchpad,
	}
	if err := store.Save(ctx, rec); err != nil {
		log.Printf("⚠️  could not save run to history: %v", err)
	}
}
