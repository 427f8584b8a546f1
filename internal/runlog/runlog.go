// Package runlog keeps a plain-text journal of one plotting run next to
// the figures it produced.
package runlog

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Dir is the output folder of a run started at now: root/<date>/<time>,
// with ": note" appended to the time when note is set.
func Dir(root, note string, now time.Time) string {
	name := now.Format("15:04:05")
	if note != "" {
		name += ": " + note
	}
	return filepath.Join(root, now.Format("2006-Jan-02"), name)
}

// Journal collects the lines of log.txt. Each line is also sent to the
// logger, if any.
type Journal struct {
	logger *log.Logger
	lines  []string
}

func New(logger *log.Logger) *Journal {
	return &Journal{logger: logger}
}

// Printf adds one line.
func (j *Journal) Printf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	j.lines = append(j.lines, line)
	if j.logger != nil {
		j.logger.Print(line)
	}
}

func (j *Journal) Lines() []string {
	return append([]string(nil), j.lines...)
}

// Write creates dir and writes the journal to dir/log.txt.
func (j *Journal) Write(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	txt, err := os.Create(filepath.Join(dir, "log.txt"))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(txt)
	for _, line := range j.lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			txt.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		txt.Close()
		return err
	}
	return txt.Close()
}
