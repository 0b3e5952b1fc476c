// Copyright 2023-2026 The Reed Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser_test

import (
	"strconv"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/reedlang/reed/internal/corpora"
	"github.com/reedlang/reed/parser"
	"github.com/reedlang/reed/report"
	"github.com/reedlang/reed/syntax"
)

// corpusCase is one event-script fixture: a lexed token stream and the
// grammar events that structure it.
//
// Tokens are [kind, text] pairs. Events are lines in a small script
// language: "start <Kind>", "tokens <Kind> [n]", "finish", and
// "error <message>".
type corpusCase struct {
	Tokens [][]string `yaml:"tokens"`
	Events []string   `yaml:"events"`
}

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "REED_REFRESH",
		Extension: "events",
		Outputs: []corpora.Output{
			{Extension: "cst"},
			{Extension: "errors"},
		},
		Test: func(t *testing.T, path, text string) []string {
			var c corpusCase
			if err := yaml.Unmarshal([]byte(text), &c); err != nil {
				t.Fatal("invalid case file:", err)
			}

			lexemes := make([]parser.Lexeme, len(c.Tokens))
			for i, tok := range c.Tokens {
				if len(tok) != 2 {
					t.Fatalf("token %d: want [kind, text], got %q", i, tok)
				}
				kind, ok := syntax.KindByName(tok[0])
				if !ok {
					t.Fatalf("token %d: unknown kind %q", i, tok[0])
				}
				lexemes[i] = parser.Lexeme{Kind: kind, Text: tok[1]}
			}

			tokens := parser.NewTokens(lexemes)
			file := report.NewFile(path, tokens.Text())
			sink := parser.NewSink(file, tokens, nil)
			parser.Apply(parseEvents(t, c.Events), sink)
			out := sink.Finish()

			errs := out.Report.String()
			if errs != "" {
				errs += "\n"
			}
			return []string{out.Root.String() + "\n", errs}
		},
	}
	corpus.Run(t)
}

func parseEvents(t *testing.T, lines []string) []parser.Event {
	events := make([]parser.Event, 0, len(lines))
	for i, line := range lines {
		if msg, ok := strings.CutPrefix(line, "error "); ok {
			events = append(events, parser.Error(msg))
			continue
		}

		fields := strings.Fields(line)
		switch {
		case len(fields) == 1 && fields[0] == "finish":
			events = append(events, parser.FinishNode())

		case len(fields) == 2 && fields[0] == "start":
			events = append(events, parser.StartNode(eventKind(t, i, fields[1])))

		case (len(fields) == 2 || len(fields) == 3) && fields[0] == "tokens":
			n := 1
			if len(fields) == 3 {
				var err error
				if n, err = strconv.Atoi(fields[2]); err != nil {
					t.Fatalf("event %d: bad token count %q", i, fields[2])
				}
			}
			events = append(events, parser.NTokens(eventKind(t, i, fields[1]), n))

		default:
			t.Fatalf("event %d: cannot parse %q", i, line)
		}
	}
	return events
}

func eventKind(t *testing.T, i int, name string) syntax.Kind {
	kind, ok := syntax.KindByName(name)
	if !ok {
		t.Fatalf("event %d: unknown kind %q", i, name)
	}
	return kind
}
