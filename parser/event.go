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

package parser

import "github.com/reedlang/reed/syntax"

// EventKind discriminates the variants of [Event].
type EventKind uint8

const (
	// EventStartNode opens a node. A recording grammar may later decide the
	// node needs a parent it has not opened yet; it records that choice in
	// [Event.ForwardParent] instead of rewriting the stream.
	EventStartNode EventKind = iota
	// EventFinishNode closes the innermost open node.
	EventFinishNode
	// EventTokens consumes Event.N raw tokens as one token of Event.Node.
	EventTokens
	// EventError records a diagnostic.
	EventError
)

// Event is one recorded grammar decision. A flat []Event is the deferred
// form of a parse: feeding it to [Apply] replays it into any [EventSink].
type Event struct {
	Kind EventKind

	// The node or token kind, for EventStartNode and EventTokens.
	Node syntax.Kind

	// For EventStartNode: the index of a later event in the stream whose
	// node should become this node's parent, or -1 for none. Chains are
	// allowed: the forward parent may itself have a forward parent.
	ForwardParent int

	// The raw token count, for EventTokens.
	N int

	// The diagnostic text, for EventError.
	Message string
}

// StartNode returns a node-opening event with no forward parent.
func StartNode(kind syntax.Kind) Event {
	return Event{Kind: EventStartNode, Node: kind, ForwardParent: -1}
}

// FinishNode returns a node-closing event.
func FinishNode() Event {
	return Event{Kind: EventFinishNode}
}

// NTokens returns a token-consuming event.
func NTokens(kind syntax.Kind, n int) Event {
	return Event{Kind: EventTokens, Node: kind, N: n}
}

// Error returns a diagnostic event.
func Error(msg string) Event {
	return Event{Kind: EventError, Message: msg}
}

// Apply replays a recorded event stream into sink.
//
// Forward parents are resolved here: when a start event names a parent
// further ahead in the stream, the chain of parents is opened
// outermost-first before the node itself, and each consumed parent event is
// tombstoned so it is not opened a second time when the replay reaches it.
// Abandoned nodes (kind [syntax.Tombstone]) are skipped entirely.
//
// Apply mutates events while processing; a stream can be replayed once.
func Apply(events []Event, sink EventSink) {
	var kinds []syntax.Kind
	for i := range events {
		switch ev := events[i]; ev.Kind {
		case EventStartNode:
			kinds = append(kinds[:0], ev.Node)

			// Walk the forward-parent chain, tombstoning each event as it
			// is claimed.
			for parent := ev.ForwardParent; parent >= 0; {
				next := events[parent]
				if next.Kind != EventStartNode {
					panic("reed/parser: forward parent is not a start event")
				}
				events[parent].Node = syntax.Tombstone
				events[parent].ForwardParent = -1

				kinds = append(kinds, next.Node)
				parent = next.ForwardParent
			}

			// Parents were collected innermost-first; open them
			// outermost-first.
			for j := len(kinds) - 1; j >= 0; j-- {
				if kinds[j] != syntax.Tombstone {
					sink.StartNode(kinds[j])
				}
			}

		case EventFinishNode:
			sink.FinishNode()

		case EventTokens:
			sink.NTokens(ev.Node, ev.N)

		case EventError:
			sink.Error(ev.Message)
		}
	}
}
