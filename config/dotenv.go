package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadDotEnvFile loads KEY=VALUE pairs from a dotenv-style file into the
// process environment. Values already set in the environment win. A missing
// file is ignored.
func LoadDotEnvFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open dotenv file: %w", err)
	}
	defer file.Close()

	pairs, err := ParseDotEnv(file)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if _, exists := os.LookupEnv(p.Key); exists {
			continue
		}
		if err := os.Setenv(p.Key, p.Value); err != nil {
			return fmt.Errorf("set env %q from dotenv line %d: %w", p.Key, p.Line, err)
		}
	}
	return nil
}

// EnvPair is one assignment read from a dotenv file.
type EnvPair struct {
	Key   string
	Value string
	Line  int
}

// ParseDotEnv reads assignments in file order. Blank lines, comments, and
// lines without '=' are skipped.
func ParseDotEnv(r io.Reader) ([]EnvPair, error) {
	var pairs []EnvPair
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

		key, value, ok := parseDotEnvLine(line)
		if !ok {
			continue
		}
		pairs = append(pairs, EnvPair{Key: key, Value: value, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan dotenv file: %w", err)
	}
	return pairs, nil
}

func parseDotEnvLine(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	value = strings.TrimSpace(value)

	if len(value) >= 2 {
		switch {
		case value[0] == '"' && value[len(value)-1] == '"':
			inner := value[1 : len(value)-1]
			return key, strings.NewReplacer(`\n`, "\n", `\"`, `"`, `\\`, `\`).Replace(inner), true
		case value[0] == '\'' && value[len(value)-1] == '\'':
			return key, value[1 : len(value)-1], true
		}
	}

	// KEY=value # comment
	if i := strings.Index(value, " #"); i >= 0 {
		value = strings.TrimSpace(value[:i])
	}
	return key, value, true
}
