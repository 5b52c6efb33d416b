package terminal

import (
	"fmt"
	"io"

	"github.com/TwiN/go-color"
	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

// PrintRejections prints the form message followed by every rejected file
func PrintRejections(out io.Writer, message string, rejections []domain.Rejection) {
	if len(rejections) == 0 {
		return
	}
	fmt.Fprintln(out, color.Ize(color.Yellow, message))
	for _, r := range rejections {
		fmt.Fprintf(out, color.InRed("  x %s")+" %v\n", r.Name, r.Reasons)
	}
}

// PrintResults prints one line per candidate with its final status
func PrintResults(out io.Writer, candidates []domain.UploadCandidate) {
	fmt.Fprintln(out, color.InBold("Results:"))
	for _, c := range candidates {
		switch c.Status {
		case domain.CandidateStatusSuccess:
			fmt.Fprintf(out, "  %s %s -> %s\n", StatusLabel(c.Status), c.DisplayName, c.Key)
		case domain.CandidateStatusError:
			fmt.Fprintf(out, "  %s %s: %v\n", StatusLabel(c.Status), c.DisplayName, c.Err)
		default:
			fmt.Fprintf(out, "  %s %s\n", StatusLabel(c.Status), c.DisplayName)
		}
	}
}
