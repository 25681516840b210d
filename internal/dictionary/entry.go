package dictionary

import (
	"encoding/json"
	"strings"
)

// NoDefinition is the sentinel returned whenever no usable definition
// can be recovered from an entry.
const NoDefinition = "No definition available."

// Entry is the first element of a dictionary API result list. Only the
// "def" sections matter for definition extraction; everything else in
// the raw entry is ignored.
type Entry struct {
	Def []senseSection `json:"def"`
}

// senseSection is one sense sequence of an entry.
type senseSection struct {
	Sseq []senseGroup `json:"sseq"`
}

// senseGroup is one group inside a sense sequence. A group that is not
// an array decodes to an empty group instead of failing.
type senseGroup []senseItem

func (g *senseGroup) UnmarshalJSON(data []byte) error {
	var items []senseItem
	if err := json.Unmarshal(data, &items); err != nil {
		*g = nil
		return nil
	}
	*g = items
	return nil
}

// senseItem is one ["sense", {...}] pair inside a group. The second
// element carries the defining-text items under "dt". Items with any
// other shape decode to an empty item.
type senseItem struct {
	dt []dtItem
}

func (s *senseItem) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) < 2 {
		return nil
	}

	var body struct {
		Dt []dtItem `json:"dt"`
	}
	if err := json.Unmarshal(pair[1], &body); err != nil {
		return nil
	}
	s.dt = body.Dt
	return nil
}

// dtItem is one ["text", <content>] pair of a dt list. The second
// element is the content node holding the actual prose.
type dtItem struct {
	content ContentNode
	ok      bool
}

func (d *dtItem) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) < 2 {
		return nil
	}

	var node ContentNode
	if err := json.Unmarshal(pair[1], &node); err != nil {
		return nil
	}
	d.content = node
	d.ok = true
	return nil
}

// Definition walks the entry depth-first and returns the first sense
// whose defining text parses to a sentence. Source order decides which
// sense wins; senses whose text parses to nothing do not stop the
// search. Entries without a def field yield the sentinel.
func (e *Entry) Definition() string {
	for _, section := range e.Def {
		for _, group := range section.Sseq {
			for _, item := range group {
				var fragments []string
				for _, dt := range item.dt {
					if dt.ok {
						fragments = dt.content.appendFragments(fragments)
					}
				}
				if len(fragments) == 0 {
					continue
				}
				if def, ok := parseDefinitionText(strings.Join(fragments, " ")); ok {
					return def
				}
			}
		}
	}
	return NoDefinition
}
