// Package testutil provides testing utilities for the Ago runtime.
package testutil

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Case represents a parsed cast case file.
//
// The format is a block of "key: value" header lines, a "---" separator
// and the expected output:
//
//	input: !IntList [1, 2, 3]
//	target: String
//	---
//	"1\n2\n3"
//
// When the header carries an error key the body is ignored and the case
// expects a failure of that kind.
type Case struct {
	Name     string            // file name without extension
	Input    string            // YAML source of the input value
	Target   string            // target kind name
	Error    string            // expected error kind, if any
	Expected string            // expected Repr of the result
	RawMeta  map[string]string // all header fields
}

// ParseCaseFile reads and parses a case file.
func ParseCaseFile(path string) (*Case, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseCase(string(content))
	if err != nil {
		return nil, err
	}
	c.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return c, nil
}

// ParseCase parses the content of a case file.
func ParseCase(content string) (*Case, error) {
	c := &Case{
		RawMeta: make(map[string]string),
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	header, body, found := strings.Cut(content, "\n---\n")
	if !found {
		header = strings.TrimSuffix(header, "\n---")
	}

	scanner := bufio.NewScanner(strings.NewReader(header))
	var currentKey string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Indented lines continue the previous key
		if (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) && currentKey != "" {
			c.RawMeta[currentKey] += "\n" + line
			continue
		}

		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		currentKey = strings.TrimSpace(key)
		c.RawMeta[currentKey] = strings.TrimSpace(val)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	c.Input = c.RawMeta["input"]
	c.Target = c.RawMeta["target"]
	c.Error = c.RawMeta["error"]
	c.Expected = strings.TrimSuffix(body, "\n")

	return c, nil
}

// FindCaseFiles returns the *.case files in dir, sorted by name.
func FindCaseFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.case"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// LoadSkipList loads a skip list file (one test name per line, # for comments).
func LoadSkipList(path string) (map[string]bool, error) {
	skipList := make(map[string]bool)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return skipList, nil
	}
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		skipList[line] = true
	}

	return skipList, nil
}
