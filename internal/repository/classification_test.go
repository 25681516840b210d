package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type classifiedDoc struct {
	Classifications []Classification `bson:"classifications"`
}

// The external classifier writes classifications as ranked
// [label, confidence] array pairs; the codec must read that shape, not
// a field-mapped document.
func TestClassification_DecodeWireFormat(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"classifications": bson.A{
			bson.A{"apple 7", 0.962},
			bson.A{"banana", 0.031},
		},
	})
	require.NoError(t, err)

	var doc classifiedDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))

	require.Len(t, doc.Classifications, 2)
	assert.Equal(t, "apple 7", doc.Classifications[0].Label)
	assert.InDelta(t, 0.962, doc.Classifications[0].Confidence, 1e-9)
	assert.Equal(t, "banana", doc.Classifications[1].Label)
}

func TestClassification_DecodeIntegerConfidence(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"classifications": bson.A{bson.A{"apple", int32(1)}},
	})
	require.NoError(t, err)

	var doc classifiedDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))

	require.Len(t, doc.Classifications, 1)
	assert.Equal(t, 1.0, doc.Classifications[0].Confidence)
}

func TestClassification_DecodeRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		doc  bson.M
	}{
		{
			name: "pair too short",
			doc:  bson.M{"classifications": bson.A{bson.A{"apple"}}},
		},
		{
			name: "label not a string",
			doc:  bson.M{"classifications": bson.A{bson.A{7, 0.9}}},
		},
		{
			name: "confidence not numeric",
			doc:  bson.M{"classifications": bson.A{bson.A{"apple", "high"}}},
		},
		{
			name: "pair not an array",
			doc:  bson.M{"classifications": bson.A{bson.M{"label": "apple"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(tt.doc)
			require.NoError(t, err)

			var doc classifiedDoc
			assert.Error(t, bson.Unmarshal(raw, &doc))
		})
	}
}

func TestClassification_MarshalRoundTrip(t *testing.T) {
	raw, err := bson.Marshal(classifiedDoc{
		Classifications: []Classification{{Label: "apple 7", Confidence: 0.962}},
	})
	require.NoError(t, err)

	var doc classifiedDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, "apple 7", doc.Classifications[0].Label)
	assert.InDelta(t, 0.962, doc.Classifications[0].Confidence, 1e-9)
}
