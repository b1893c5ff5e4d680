package progress

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/lesson-audit/internal/lessonrepo"
	"github.com/jonathan/lesson-audit/internal/logger"
	"github.com/jonathan/lesson-audit/internal/types"
)

// ScanCodeQuality aggregates line and marker statistics over every C source
// file under every present level. Files that cannot be read or are not valid
// UTF-8 are left out of every total.
func ScanCodeQuality(tree *lessonrepo.Tree, log *logger.Logger) types.CodeQuality {
	log = logger.OrNop(log)

	var (
		files        int
		lines        int
		withComments int
		withHeaders  int
	)

	for _, lvl := range tree.Levels {
		for _, path := range lessonrepo.SourceFiles(lvl.Path) {
			data, err := os.ReadFile(path)
			if err != nil {
				log.Debug("skipping unreadable source", "path", path, "error", err)
				continue
			}
			if !utf8.Valid(data) {
				log.Debug("skipping non-UTF-8 source", "path", path)
				continue
			}

			content := string(data)
			files++
			lines += strings.Count(content, "\n") + 1
			if strings.Contains(content, "//") || strings.Contains(content, "/*") {
				withComments++
			}
			if strings.Contains(content, "#include") {
				withHeaders++
			}
		}
	}

	cq := types.CodeQuality{
		TotalCFiles: files,
		TotalLines:  lines,
		CommentRate: percent(withComments, files),
		HeaderRate:  percent(withHeaders, files),
	}
	if files > 0 {
		cq.AvgLinesPerFile = float64(lines) / float64(files)
	}
	return cq
}
