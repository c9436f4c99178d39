package dynamodb

import (
	"context"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeAPI is an in-memory DynamoDBAPI. Scan pages are served in order and
// linked through LastEvaluatedKey.
type fakeAPI struct {
	mu sync.Mutex

	tablePages [][]string
	listErr    error

	createErr    error
	createCalls  []*dynamodb.CreateTableInput
	describeErr  error
	tableStatus  types.TableStatus
	describeHits int

	scanPages  [][]map[string]types.AttributeValue
	scanErr    error
	scanInputs []*dynamodb.ScanInput
}

func (f *fakeAPI) ListTables(_ context.Context, params *dynamodb.ListTablesInput, _ ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	page := 0
	if params.ExclusiveStartTableName != nil {
		for i, p := range f.tablePages {
			if len(p) > 0 && p[len(p)-1] == *params.ExclusiveStartTableName {
				page = i + 1
			}
		}
	}
	out := &dynamodb.ListTablesOutput{}
	if page < len(f.tablePages) {
		out.TableNames = f.tablePages[page]
		if page < len(f.tablePages)-1 {
			out.LastEvaluatedTableName = aws.String(f.tablePages[page][len(f.tablePages[page])-1])
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateTable(_ context.Context, params *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCalls = append(f.createCalls, params)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dynamodb.CreateTableOutput{
		TableDescription: &types.TableDescription{
			TableName:   params.TableName,
			TableStatus: types.TableStatusCreating,
		},
	}, nil
}

func (f *fakeAPI) DescribeTable(_ context.Context, params *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.describeHits++
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	status := f.tableStatus
	if status == "" {
		status = types.TableStatusActive
	}
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{TableName: params.TableName, TableStatus: status},
	}, nil
}

func (f *fakeAPI) Scan(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.scanInputs = append(f.scanInputs, params)
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	page := len(f.scanInputs) - 1
	out := &dynamodb.ScanOutput{}
	if page < len(f.scanPages) {
		out.Items = f.scanPages[page]
		out.Count = int32(len(out.Items))
		if page < len(f.scanPages)-1 {
			out.LastEvaluatedKey = map[string]types.AttributeValue{
				"page": &types.AttributeValueMemberN{Value: strconv.Itoa(page)},
			}
		}
	}
	return out, nil
}
