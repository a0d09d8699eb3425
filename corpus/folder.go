package corpus

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
)

// Load reads every file directly under baseURL (any afs URL: local path,
// file://, mem://, cloud storage) and tokenizes it. The document id is the
// file name. Files with an extension listed in skipExt (for example ".gz")
// are ignored.
func Load(ctx context.Context, baseURL string, skipExt ...string) (*Memory, error) {
	fs := afs.New()
	objects, err := fs.List(ctx, baseURL)
	if err != nil {
		return nil, fmt.Errorf("corpus: list %s: %w", baseURL, err)
	}
	documents := map[string][]string{}
	for _, object := range objects {
		if object.IsDir() || hasExt(object.Name(), skipExt) {
			continue
		}
		data, err := fs.Download(ctx, object)
		if err != nil {
			return nil, fmt.Errorf("corpus: download %s: %w", object.URL(), err)
		}
		documents[object.Name()] = Tokenize(string(data))
	}
	return NewMemory(documents), nil
}

func hasExt(name string, exts []string) bool {
	for _, ext := range exts {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
