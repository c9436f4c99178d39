package queries

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"movies-backend/domain/catalog"
	apperrors "movies-backend/pkg/errors"
	"movies-backend/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Value placeholders bound by the search filter.
const (
	placeholderYear  = ":year"
	placeholderTitle = ":title"
	placeholderCast  = ":cast"
	placeholderGenre = ":genre"
)

// SearchMoviesQuery represents a filtered search over the movie catalog
type SearchMoviesQuery struct {
	Filter catalog.Filter
}

// Validate validates the SearchMoviesQuery
func (q SearchMoviesQuery) Validate() error {
	if err := utils.ValidateStruct(q.Filter); err != nil {
		return apperrors.NewInvalidFilterError(err.Error())
	}
	return nil
}

// Expression is a scan filter together with its bindings. Filter is nil
// when no predicate applies; Names and Values are nil when empty.
type Expression struct {
	Filter *string
	Names  map[string]string
	Values map[string]types.AttributeValue
}

// BuildExpression translates a filter into a DynamoDB filter expression.
// Present fields contribute one clause each, in the order year, title, cast,
// genre, joined with AND. Text fields use substring containment.
func BuildExpression(filter catalog.Filter) (Expression, error) {
	b := newExpressionBuilder()

	if filter.Year != "" {
		year, err := yearValue(filter.Year)
		if err != nil {
			return Expression{}, err
		}
		b.add(fmt.Sprintf("%s = %s", b.ref(catalog.AttrYear), b.bind(placeholderYear, year)))
	}
	if filter.Title != "" {
		b.contains(catalog.AttrTitle, placeholderTitle, filter.Title)
	}
	if filter.CastMember != "" {
		b.contains(catalog.AttrCast, placeholderCast, filter.CastMember)
	}
	if filter.Genre != "" {
		b.contains(catalog.AttrGenres, placeholderGenre, filter.Genre)
	}

	return b.build(), nil
}

// yearValue checks that the textual year is a finite number and binds the
// trimmed text unchanged, so no precision is lost.
func yearValue(raw string) (types.AttributeValue, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, apperrors.NewInvalidFilterError(fmt.Sprintf("year must be numeric, got %q", raw))
	}
	return &types.AttributeValueMemberN{Value: raw}, nil
}

type expressionBuilder struct {
	clauses []string
	names   map[string]string
	values  map[string]types.AttributeValue
}

func newExpressionBuilder() *expressionBuilder {
	return &expressionBuilder{
		names:  make(map[string]string),
		values: make(map[string]types.AttributeValue),
	}
}

// ref returns the expression token for attr, registering an alias when the
// attribute name is reserved.
func (b *expressionBuilder) ref(attr string) string {
	token, aliased := catalog.Ref(attr)
	if aliased {
		b.names[token] = attr
	}
	return token
}

func (b *expressionBuilder) bind(placeholder string, value types.AttributeValue) string {
	b.values[placeholder] = value
	return placeholder
}

func (b *expressionBuilder) contains(attr, placeholder, value string) {
	b.add(fmt.Sprintf("contains(%s, %s)", b.ref(attr), b.bind(placeholder, &types.AttributeValueMemberS{Value: value})))
}

func (b *expressionBuilder) add(clause string) {
	b.clauses = append(b.clauses, clause)
}

func (b *expressionBuilder) build() Expression {
	var expr Expression
	if len(b.clauses) > 0 {
		expr.Filter = aws.String(strings.Join(b.clauses, " AND "))
	}
	if len(b.names) > 0 {
		expr.Names = b.names
	}
	if len(b.values) > 0 {
		expr.Values = b.values
	}
	return expr
}
