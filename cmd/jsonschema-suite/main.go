// Command jsonschema-suite walks a directory shaped like the official
// JSON-Schema-Test-Suite (one subdirectory per draft, one JSON file per
// keyword) and reports pass/fail counts per draft, colorized for a
// terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/mattn/go-colorable"

	"github.com/schemakit/jsonschema"
)

var draftDirs = map[string]jsonschema.Draft{
	"draft4":       jsonschema.Draft04,
	"draft6":       jsonschema.Draft06,
	"draft7":       jsonschema.Draft07,
	"draft2019-09": jsonschema.Draft201909,
	"draft2020-12": jsonschema.Draft202012,
}

type suiteTest struct {
	Description string      `json:"description"`
	Data        interface{} `json:"data"`
	Valid       bool        `json:"valid"`
}

type suiteCase struct {
	Description string      `json:"description"`
	Schema      interface{} `json:"schema"`
	Tests       []suiteTest `json:"tests"`
}

type draftTally struct {
	passed, failed int
	failures       []string
}

func main() {
	root := flag.String("dir", "testdata/JSON-Schema-Test-Suite/tests", "root of the test suite tree")
	assertFormat := flag.Bool("assert-format", false, "treat the format keyword as assertive even on drafts where it's annotation-only by default")
	includeOptional := flag.Bool("optional", false, "include the optional/ subdirectories (format, bignum, etc.)")
	flag.Parse()

	out := colorable.NewColorableStdout()
	tallies := map[string]*draftTally{}

	for dirName, draft := range draftDirs {
		dirPath := filepath.Join(*root, dirName)
		if _, err := os.Stat(dirPath); err != nil {
			continue
		}
		tallies[dirName] = runDraft(dirPath, draft, *assertFormat, *includeOptional)
	}

	names := make([]string, 0, len(tallies))
	for name := range tallies {
		names = append(names, name)
	}
	sort.Strings(names)

	totalPass, totalFail := 0, 0
	for _, name := range names {
		t := tallies[name]
		totalPass += t.passed
		totalFail += t.failed
		pct := 100.0
		if t.passed+t.failed > 0 {
			pct = 100 * float64(t.passed) / float64(t.passed+t.failed)
		}
		line := fmt.Sprintf("%-14s %5d passed  %5d failed  (%.1f%%)", name, t.passed, t.failed, pct)
		if t.failed == 0 {
			fmt.Fprintln(out, color.GreenString(line))
		} else {
			fmt.Fprintln(out, color.RedString(line))
			for _, f := range t.failures {
				fmt.Fprintln(out, color.YellowString("    "+f))
			}
		}
	}

	fmt.Fprintf(out, "\n%s\n", color.CyanString("total: %d passed, %d failed", totalPass, totalFail))
	if totalFail > 0 {
		os.Exit(1)
	}
}

func runDraft(dirPath string, draft jsonschema.Draft, assertFormat, includeOptional bool) *draftTally {
	tally := &draftTally{}

	_ = filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		if !includeOptional && strings.Contains(path, string(filepath.Separator)+"optional"+string(filepath.Separator)) {
			return nil
		}

		data, err := os.ReadFile(path) //nolint:gosec
		if err != nil {
			tally.failed++
			tally.failures = append(tally.failures, fmt.Sprintf("%s: read error: %v", path, err))
			return nil
		}

		var cases []suiteCase
		if err := json.Unmarshal(data, &cases); err != nil {
			tally.failed++
			tally.failures = append(tally.failures, fmt.Sprintf("%s: parse error: %v", path, err))
			return nil
		}

		for _, tc := range cases {
			runCase(path, tc, draft, assertFormat, tally)
		}
		return nil
	})

	return tally
}

func runCase(path string, tc suiteCase, draft jsonschema.Draft, assertFormat bool, tally *draftTally) {
	schemaJSON, err := json.Marshal(tc.Schema)
	if err != nil {
		tally.failed++
		tally.failures = append(tally.failures, fmt.Sprintf("%s/%s: marshal schema: %v", path, tc.Description, err))
		return
	}

	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft = draft
	compiler.SetAssertFormat(assertFormat)

	schema, err := compiler.Compile(schemaJSON)
	if err != nil {
		tally.failed++
		tally.failures = append(tally.failures, fmt.Sprintf("%s/%s: compile: %v", path, tc.Description, err))
		return
	}

	for _, test := range tc.Tests {
		result := schema.Validate(test.Data)
		if result.IsValid() == test.Valid {
			tally.passed++
			continue
		}
		tally.failed++
		tally.failures = append(tally.failures, fmt.Sprintf("%s: %s / %s", path, tc.Description, test.Description))
	}
}
