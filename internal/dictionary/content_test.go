package dictionary

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestContentNode_Fragments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "plain string",
			raw:  `"a round fruit"`,
			want: []string{"a round fruit"},
		},
		{
			name: "tagged record with text field",
			raw:  `{"t": "from the tagged record"}`,
			want: []string{"from the tagged record"},
		},
		{
			name: "tagged record without text field",
			raw:  `{"w": "wvl", "l": "label"}`,
			want: nil,
		},
		{
			name: "nested sequences preserve order",
			raw:  `["first", ["second", {"t": "third"}], "fourth"]`,
			want: []string{"first", "second", "third", "fourth"},
		},
		{
			name: "numbers and nulls are skipped",
			raw:  `["kept", 42, null, true, "also kept"]`,
			want: []string{"kept", "also kept"},
		},
		{
			name: "non-string text field is skipped",
			raw:  `{"t": ["not", "a", "string"]}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var node ContentNode
			if err := json.Unmarshal([]byte(tt.raw), &node); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.raw, err)
			}
			if got := node.Fragments(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fragments() = %v, want %v", got, tt.want)
			}
		})
	}
}
