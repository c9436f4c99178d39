// Package catalog holds the vocabulary of the movie catalog: the table layout,
// the attribute names used in filter expressions and the record shapes.
package catalog

import "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

// TableName is the single table backing the catalog.
const TableName = "Movies"

// Attribute names stored on every movie item.
const (
	AttrYear   = "year"
	AttrTitle  = "title"
	AttrCast   = "cast"
	AttrGenres = "genres"
)

// Provisioned throughput used when the table is created.
const (
	DefaultReadCapacity  int64 = 10
	DefaultWriteCapacity int64 = 10
)

// Item is a movie record in the store's native attribute-typed form.
// Items are passed through to clients without unwrapping.
type Item = map[string]types.AttributeValue

// Movie is the typed view of an item. Only year and title are guaranteed.
type Movie struct {
	Year   int      `dynamodbav:"year" json:"year"`
	Title  string   `dynamodbav:"title" json:"title"`
	Cast   []string `dynamodbav:"cast,omitempty" json:"cast,omitempty"`
	Genres []string `dynamodbav:"genres,omitempty" json:"genres,omitempty"`
}

// KeyType is the scalar type of a key attribute.
type KeyType = types.ScalarAttributeType

// TableSpec describes a table with a composite primary key.
type TableSpec struct {
	Name             string
	PartitionKey     string
	PartitionKeyType KeyType
	SortKey          string
	SortKeyType      KeyType
	ReadCapacity     int64
	WriteCapacity    int64
}

// MoviesTable returns the layout of the movies table: year (N) partitions,
// title (S) sorts within a year.
func MoviesTable(name string) TableSpec {
	if name == "" {
		name = TableName
	}
	return TableSpec{
		Name:             name,
		PartitionKey:     AttrYear,
		PartitionKeyType: types.ScalarAttributeTypeN,
		SortKey:          AttrTitle,
		SortKeyType:      types.ScalarAttributeTypeS,
		ReadCapacity:     DefaultReadCapacity,
		WriteCapacity:    DefaultWriteCapacity,
	}
}

// ScanInput is a full-table scan with an optional server-side filter.
// Nil maps and a nil FilterExpression are omitted from the request.
type ScanInput struct {
	TableName        string
	FilterExpression *string
	Names            map[string]string
	Values           map[string]types.AttributeValue
}
