package docker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"
)

// ---- FS helpers ----

func absOr(p, fallback string) string {
	if a, err := filepath.Abs(p); err == nil {
		return a
	}
	return fallback
}

func checkDir(p string) error {
	if st, err := os.Stat(p); err != nil || !st.IsDir() {
		return fmt.Errorf("context %q not found or not a directory", p)
	}
	return nil
}

// ---- Ref validation ----

// parseRef accepts repo:tag references the way docker does (Docker Hub default registry).
func parseRef(ref string) (name.Tag, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return name.Tag{}, fmt.Errorf("empty image ref")
	}
	tag, err := name.NewTag(ref, name.WeakValidation)
	if err != nil {
		return name.Tag{}, fmt.Errorf("invalid image ref %q: %w", ref, err)
	}
	return tag, nil
}

// dedupRefs preserves insertion order.
func dedupRefs(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
