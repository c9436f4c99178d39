package catalog

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
)

func TestRef(t *testing.T) {
	tests := []struct {
		attr    string
		token   string
		aliased bool
	}{
		{AttrYear, "#yr", true},
		{AttrCast, "#cst", true},
		{AttrTitle, "title", false},
		{AttrGenres, "genres", false},
	}

	for _, tt := range tests {
		t.Run(tt.attr, func(t *testing.T) {
			token, aliased := Ref(tt.attr)
			assert.Equal(t, tt.token, token)
			assert.Equal(t, tt.aliased, aliased)
		})
	}
}

func TestAliasesIsACopy(t *testing.T) {
	aliases := Aliases()
	aliases[AttrYear] = "#changed"

	token, _ := Ref(AttrYear)
	assert.Equal(t, "#yr", token)
}

func TestFilter_IsEmpty(t *testing.T) {
	assert.True(t, Filter{}.IsEmpty())
	assert.False(t, Filter{Genre: "Drama"}.IsEmpty())
	assert.Equal(t, "1999", Filter{Year: " 1999 "}.Normalize().Year)
}

func TestMoviesTable(t *testing.T) {
	spec := MoviesTable("")

	assert.Equal(t, TableName, spec.Name)
	assert.Equal(t, AttrYear, spec.PartitionKey)
	assert.Equal(t, types.ScalarAttributeTypeN, spec.PartitionKeyType)
	assert.Equal(t, AttrTitle, spec.SortKey)
	assert.Equal(t, types.ScalarAttributeTypeS, spec.SortKeyType)
	assert.Equal(t, int64(10), spec.ReadCapacity)
	assert.Equal(t, int64(10), spec.WriteCapacity)

	assert.Equal(t, "Films", MoviesTable("Films").Name)
}
