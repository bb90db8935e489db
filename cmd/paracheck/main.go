// Command paracheck spell-corrects a paragraph and prints the corrections,
// the corrected text and its category.
//
// Usage:
//
//	paracheck -d paragraphs.txt -t "Helo wrold"
//	echo "The goverment passed a law" | paracheck -d paragraphs.txt -json
package main

import (
	"context"
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"

	"paracheck/internal/runner"
)

func main() {
	opts := runner.ParseFlags()

	var stdin io.Reader
	if fileutil.HasStdin() {
		stdin = os.Stdin
	}
	if err := runner.Run(context.Background(), opts, stdin, os.Stdout); err != nil {
		gologger.Fatal().Msgf("paracheck: %v", err)
	}
}
