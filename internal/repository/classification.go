package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Classification is one label/confidence pair produced by the external
// classifier. On the wire each pair is a two-element array
// [label, confidence], so the type carries its own BSON value codec
// instead of relying on struct field mapping.
type Classification struct {
	Label      string
	Confidence float64
}

// MarshalBSONValue encodes the classification as [label, confidence].
func (c Classification) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(bson.A{c.Label, c.Confidence})
}

// UnmarshalBSONValue decodes a [label, confidence] array. Extra
// elements beyond the first two are ignored; the confidence may be
// stored as either a double or an integer.
func (c *Classification) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t != bsontype.Array {
		return fmt.Errorf("classification: expected array, got %s", t)
	}

	values, err := bson.Raw(data).Values()
	if err != nil {
		return fmt.Errorf("classification: %w", err)
	}
	if len(values) < 2 {
		return fmt.Errorf("classification: need label and confidence, got %d elements", len(values))
	}

	label, ok := values[0].StringValueOK()
	if !ok {
		return fmt.Errorf("classification: label is not a string")
	}

	confidence, ok := values[1].DoubleOK()
	if !ok {
		i, iok := values[1].AsInt64OK()
		if !iok {
			return fmt.Errorf("classification: confidence is not numeric")
		}
		confidence = float64(i)
	}

	c.Label = label
	c.Confidence = confidence
	return nil
}
