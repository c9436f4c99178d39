// Package attrjson renders DynamoDB attribute values in the service's typed
// JSON form, e.g. {"S": "Heat"} or {"N": "1995"}. This is the representation
// the movies endpoint has always returned, so values are not unwrapped.
package attrjson

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Value returns the typed JSON form of a single attribute value. Binary
// values are left as []byte so encoding/json emits them base64 encoded.
func Value(av types.AttributeValue) (interface{}, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return map[string]interface{}{"S": v.Value}, nil
	case *types.AttributeValueMemberN:
		return map[string]interface{}{"N": v.Value}, nil
	case *types.AttributeValueMemberB:
		return map[string]interface{}{"B": v.Value}, nil
	case *types.AttributeValueMemberBOOL:
		return map[string]interface{}{"BOOL": v.Value}, nil
	case *types.AttributeValueMemberNULL:
		return map[string]interface{}{"NULL": v.Value}, nil
	case *types.AttributeValueMemberSS:
		return map[string]interface{}{"SS": nonNilStrings(v.Value)}, nil
	case *types.AttributeValueMemberNS:
		return map[string]interface{}{"NS": nonNilStrings(v.Value)}, nil
	case *types.AttributeValueMemberBS:
		if v.Value == nil {
			return map[string]interface{}{"BS": [][]byte{}}, nil
		}
		return map[string]interface{}{"BS": v.Value}, nil
	case *types.AttributeValueMemberL:
		list := make([]interface{}, 0, len(v.Value))
		for i, elem := range v.Value {
			out, err := Value(elem)
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			list = append(list, out)
		}
		return map[string]interface{}{"L": list}, nil
	case *types.AttributeValueMemberM:
		m, err := Item(v.Value)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"M": m}, nil
	case nil:
		return nil, fmt.Errorf("nil attribute value")
	default:
		return nil, fmt.Errorf("unsupported attribute value type %T", av)
	}
}

// Item converts a whole item.
func Item(item map[string]types.AttributeValue) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(item))
	for name, av := range item {
		v, err := Value(av)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// Items converts a result set. The result is never nil so an empty set
// encodes as [].
func Items(items []map[string]types.AttributeValue) ([]map[string]interface{}, error) {
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		m, err := Item(item)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
