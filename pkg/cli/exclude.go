package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/utils/safe"
)

// loadExcludeFile reads repository full names, one per line. Blank lines and lines starting
// with '#' are ignored.
func loadExcludeFile(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open exclude file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	var repos []string
	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		repos = append(repos, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read exclude file", goerr.V("path", path))
	}

	return repos, nil
}
