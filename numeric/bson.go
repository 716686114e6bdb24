package numeric

import (
	"github.com/globalsign/mgo/bson"
)

// GetBSON converts n to the BSON Decimal128 type, adapted from apd's own
// Decimal.GetBSON, so a host embedding Folio can store cell values
// directly in a MongoDB document.
func (n *Number) GetBSON() (interface{}, error) {
	return bson.ParseDecimal128(n.ToSci())
}

// SetBSON parses n from the BSON Decimal128 type.
func (n *Number) SetBSON(raw bson.Raw) error {
	var w bson.Decimal128
	if err := raw.Unmarshal(&w); err != nil {
		return err
	}
	parsed, perr := Parse(w.String())
	if perr != nil {
		return perr
	}
	n.Set(parsed)
	return nil
}
