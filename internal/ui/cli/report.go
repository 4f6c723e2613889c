package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"incstate/internal/core/ports"
	"incstate/internal/data/schema"
	"incstate/internal/data/store"
)

func printAnalysis(w io.Writer, loaded *ports.LoadedAnalysis) {
	a := loaded.Analysis
	fmt.Fprintf(w, "%s: version=%s sources=%d binaries=%d products=%d problems=%d compilations=%d",
		loaded.Path,
		loaded.Version,
		len(a.Stamps.Source),
		len(a.Stamps.Binary),
		len(a.Stamps.Product),
		a.SourceInfos.ProblemCount(),
		len(a.Compilations),
	)
	if s := loaded.Setup; s != nil {
		fmt.Fprintf(w, " compiler=%s order=%s", s.CompilerVersion, s.Order)
	}
	fmt.Fprintln(w)
}

func printAPIs(w io.Writer, loaded *ports.LoadedAPIs) {
	fmt.Fprintf(w, "%s: version=%s internal=%d external=%d\n",
		loaded.Path,
		loaded.Version,
		len(loaded.APIs.Internal),
		len(loaded.APIs.External),
	)
}

func printNames(w io.Writer, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintln(w, strings.Join(names, "\n"))
}

func printUpdate(w io.Writer, u ports.WatchUpdate) {
	switch {
	case u.Err != nil:
		fmt.Fprintf(w, "%s: error: %v\n", u.Path, u.Err)
	case u.Analysis != nil:
		printAnalysis(w, u.Analysis)
	case u.APIs != nil:
		printAPIs(w, u.APIs)
	}
}

func printSnapshot(w io.Writer, snap store.Snapshot) {
	fmt.Fprintf(w, "%s: digest=%s version=%s decoded_at=%s sources=%d binaries=%d products=%d problems=%d compilations=%d\n",
		snap.File,
		snap.Digest,
		schema.Version(snap.FormatVersion),
		snap.DecodedAt.Format(time.RFC3339),
		snap.SourceCount,
		snap.BinaryCount,
		snap.ProductCount,
		snap.ProblemCount,
		snap.CompilationCount,
	)
	for _, row := range snap.Stamps {
		fmt.Fprintf(w, "  %s %s %s", row.Category, row.Path, row.Kind)
		if row.Value != "" {
			fmt.Fprintf(w, "=%s", row.Value)
		}
		fmt.Fprintln(w)
	}
}
