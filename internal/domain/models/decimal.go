package models

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Decimal wraps shopspring decimal so ingredient quantities survive
// scaling and summation without binary floating point drift. Stored in
// mongo as its canonical string form.
type Decimal struct {
	decimal.Decimal
}

func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

func NewDecimalFromString(value string) (Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{Decimal: d}, nil
}

func NewDecimalFromInt(value int64) Decimal {
	return Decimal{Decimal: decimal.NewFromInt(value)}
}

func (d Decimal) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.String())
}

func (d *Decimal) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var raw string
	if err := bson.UnmarshalValue(t, data, &raw); err != nil {
		return err
	}

	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		return err
	}

	d.Decimal = parsed
	return nil
}
