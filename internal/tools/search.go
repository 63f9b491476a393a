package tools

import (
	"context"
	"fmt"
	"strings"
)

const searchDescription = "Search the web for information. Returns relevant search results."

// WebSearch returns three canned results mentioning the query. No network
// calls are made.
func WebSearch(ctx context.Context, query string) (string, error) {
	results := []string{
		fmt.Sprintf("Result 1: Information about '%s' from Wikipedia - A comprehensive overview of the topic.", query),
		fmt.Sprintf("Result 2: Latest news about '%s' - Recent developments and updates.", query),
		fmt.Sprintf("Result 3: Expert analysis on '%s' - In-depth research and findings.", query),
	}
	return strings.Join(results, "\n"), nil
}
