package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	logutil "github.com/jmoreau/formadvisor/internal/logger"
)

// Load reads every *.json course record from dir into a Courses corpus.
// A missing or unreadable directory yields an empty corpus with a
// warning, never an error: the service must keep answering with the
// fallback result when no corpus is available. Malformed records are
// skipped the same way.
func Load(dir string, logger *zap.Logger) *Courses {
	if logger == nil {
		logger = zap.NewNop()
	}

	courses := &Courses{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("course corpus unavailable, starting with an empty corpus",
			zap.String("dir", dir),
			zap.Error(err),
		)
		return courses
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		files = append(files, entry.Name())
	}
	// ReadDir already sorts, but the corpus order is load-bearing for
	// stable ranking ties, so make it explicit.
	sort.Strings(files)

	skipped := 0
	for _, name := range files {
		path := filepath.Join(dir, name)
		course, err := loadRecord(path)
		if err != nil {
			skipped++
			logger.Warn("skipping malformed course record",
				zap.String("file", name),
				zap.Error(err),
			)
			continue
		}
		courses.Items = append(courses.Items, course)
	}

	logger.Info("course corpus loaded",
		zap.String("dir", dir),
		zap.Int("files", len(files)),
		zap.Int("loaded", courses.Len()),
		zap.Int("skipped", skipped),
	)

	if courses.Len() > 0 {
		first := courses.Items[0]
		logger.Debug("corpus sample",
			zap.String("titre", first.Title),
			zap.String("corpus", logutil.TruncateForLog(first.SearchText(), 200)),
		)
	}

	return courses
}

// loadRecord parses one course file. Decoding goes through mapstructure
// in weakly-typed mode so that a scalar where a list is expected becomes
// a single-element list and missing keys stay empty.
func loadRecord(path string) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	course := &Course{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           course,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	return course, nil
}
