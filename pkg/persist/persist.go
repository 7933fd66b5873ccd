/*
Package persist implements the engine's crash-safe dictionary file format:
plain UTF-8 text, one canonical word per line, written with the atomic
rename protocol spec.md §4.5 specifies so that a crash at any point leaves
the target path holding either the pre-save or the post-save content,
never a partial write.
*/
package persist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"unicode/utf8"

	charmlog "github.com/charmbracelet/log"

	"github.com/kavanhollis/lexarbor/internal/logger"
	"github.com/kavanhollis/lexarbor/internal/utils"
	"github.com/kavanhollis/lexarbor/pkg/wlerr"
)

// log is re-created per call rather than cached in a package var, so it
// always reflects the level in effect when Load/Save actually run, not
// whatever the level was at package-init time.
func log() *charmlog.Logger { return logger.New("persist") }

var tmpCounter int64

// LoadResult reports what Load found.
type LoadResult struct {
	Words        []string
	SkippedLines int
}

// Load reads every valid line from path. A missing file is success with an
// empty result (spec.md §4.5: "Missing file is success with an empty
// engine"). Lines that are not valid UTF-8 are skipped and counted rather
// than aborting the load, unless every non-blank line in the file turns
// out to be malformed, in which case Load fails with wlerr.ErrFormat
// rather than silently reporting an empty dictionary (spec.md §7).
func Load(path string) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadResult{}, nil
		}
		if os.IsPermission(err) {
			return LoadResult{}, fmt.Errorf("persist: open %s: %w", path, wlerr.ErrPermissionDenied)
		}
		return LoadResult{}, fmt.Errorf("persist: open %s: %w", path, wlerr.ErrIO)
	}
	defer f.Close()

	var res LoadResult
	nonBlank := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		nonBlank++
		if !utf8.ValidString(line) {
			res.SkippedLines++
			log().Warnf("persist: skipping malformed UTF-8 line in %s", path)
			continue
		}
		res.Words = append(res.Words, line)
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("persist: read %s: %w", path, wlerr.ErrIO)
	}
	if nonBlank > 0 && len(res.Words) == 0 {
		return res, fmt.Errorf("persist: all %d line(s) in %s are malformed: %w", nonBlank, path, wlerr.ErrFormat)
	}
	return res, nil
}

// Save writes words to path using the six-step atomic rename protocol:
// write a sibling temp file, fsync it, back up any existing file to
// <path>.bak, rename the temp file into place, then fsync the containing
// directory. Words are sorted byte-lexicographically before writing so
// repeated saves of the same dictionary produce stable diffs.
func Save(path string, words []string) error {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	dir := filepath.Dir(path)
	if err := utils.EnsureDir(dir); err != nil {
		return classifyErr("create directory", dir, err)
	}
	tmpPath := filepath.Join(dir, fmt.Sprintf("%s.tmp.%d.%d",
		filepath.Base(path), os.Getpid(), atomic.AddInt64(&tmpCounter, 1)))

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return classifyErr("create temp file", tmpPath, err)
	}
	if err := writeLines(tmp, sorted); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("persist: write temp file: %w", wlerr.ErrIO)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("persist: fsync temp file: %w", wlerr.ErrIO)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("persist: close temp file: %w", wlerr.ErrIO)
	}

	if utils.FileExists(path) {
		bakPath := path + ".bak"
		if err := os.Rename(path, bakPath); err != nil {
			os.Remove(tmpPath)
			return classifyErr("backup", path, err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return classifyErr("rename into place", path, err)
	}

	if err := fsyncDir(dir); err != nil {
		log().Warnf("persist: directory fsync failed for %s: %v", dir, err)
	}
	return nil
}

// classifyErr wraps err as wlerr.ErrPermissionDenied when the OS reports a
// permission failure, wlerr.ErrIO otherwise, matching the classification
// Load already applies on open.
func classifyErr(op, path string, err error) error {
	if os.IsPermission(err) {
		return fmt.Errorf("persist: %s %s: %w", op, path, wlerr.ErrPermissionDenied)
	}
	return fmt.Errorf("persist: %s %s: %w", op, path, wlerr.ErrIO)
}

func writeLines(w io.Writer, lines []string) error {
	buf := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := buf.WriteString(l); err != nil {
			return err
		}
		if _, err := buf.WriteString("\n"); err != nil {
			return err
		}
	}
	return buf.Flush()
}

func fsyncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
