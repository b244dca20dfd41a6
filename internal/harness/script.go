package harness

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// Event is one recorded test block: the module it lives in, its name,
// the outcome its body produced, and how long the body took.
type Event struct {
	Module  string
	Test    string
	Failed  bool
	Elapsed time.Duration
	Line    int
}

// Script is a recorded test run: the suite's module enumeration plus
// the test block events in execution order.
type Script struct {
	Modules []string
	Events  []Event
}

// LoadScript parses a script file. Grammar, one statement per line:
//
//	module <name>
//	<module> <test> pass|fail [<duration>]
//
// Blank lines and lines starting with # are ignored. Malformed lines
// are an error (scripts are machine-written, unlike selection configs).
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	script := &Script{}
	seenModules := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if fields[0] == "module" {
			if len(fields) != 2 {
				return nil, fmt.Errorf("%s:%d: module statement wants one name", path, lineNo)
			}
			if !seenModules[fields[1]] {
				seenModules[fields[1]] = true
				script.Modules = append(script.Modules, fields[1])
			}
			continue
		}

		if len(fields) < 3 || len(fields) > 4 {
			return nil, fmt.Errorf("%s:%d: want '<module> <test> pass|fail [duration]'", path, lineNo)
		}

		event := Event{Module: fields[0], Test: fields[1], Line: lineNo}
		switch fields[2] {
		case "pass":
		case "fail":
			event.Failed = true
		default:
			return nil, fmt.Errorf("%s:%d: outcome must be pass or fail, got %q", path, lineNo, fields[2])
		}

		if len(fields) == 4 {
			d, err := time.ParseDuration(fields[3])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad duration %q: %v", path, lineNo, fields[3], err)
			}
			event.Elapsed = d
		}

		// A module that reports a test is known even without a module
		// statement for it.
		if !seenModules[event.Module] {
			seenModules[event.Module] = true
			script.Modules = append(script.Modules, event.Module)
		}
		script.Events = append(script.Events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	return script, nil
}
