package release

import (
	"fmt"
	"io"
	"strings"
)

// PrintSummary writes a short, scannable description of the release about to run.
func PrintSummary(w io.Writer, plan Plan, dryRun bool) {
	fmt.Fprintln(w, "Release Summary")
	fmt.Fprintln(w, "---------------")
	fmt.Fprintf(w, "  Environment           : %s\n", formatOrNone(plan.Environment.String()))
	fmt.Fprintf(w, "  Version               : %s\n", formatOrNone(plan.Version))
	fmt.Fprintf(w, "  Dry Run Mode          : %s\n", yesNo(dryRun))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Images")
	for _, img := range plan.Images {
		fmt.Fprintf(w, "  %-22s: %s\n", title(img.Component), img.Ref)
		fmt.Fprintf(w, "  %-22s: %s\n", "  context", formatOrNone(img.Build.Dir))
		for _, kv := range img.Build.BuildArgs {
			fmt.Fprintf(w, "  %-22s: %s=%s\n", "  build-arg", kv[0], kv[1])
		}
	}
	fmt.Fprintln(w)
}

func formatOrNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "<none>"
	}
	return s
}

func title(s string) string {
	if s == "" {
		return "<unnamed>"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
