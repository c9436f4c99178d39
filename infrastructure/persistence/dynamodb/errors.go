package dynamodb

import (
	"context"
	"errors"
	"fmt"

	apperrors "movies-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// classifyError maps an SDK failure onto the application error taxonomy.
// Anything that carries no API error never got a response from the store and
// is reported as a connectivity failure.
func classifyError(operation, table string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewConnectivityError(operation, err)
	}

	var inUse *types.ResourceInUseException
	if errors.As(err, &inUse) {
		return apperrors.NewConflictError(fmt.Sprintf("table %s already exists", table), err)
	}

	var ae smithy.APIError
	if !errors.As(err, &ae) {
		return apperrors.NewConnectivityError(operation, err)
	}

	switch operation {
	case "CreateTable":
		switch ae.ErrorCode() {
		case "ValidationException", "LimitExceededException":
			return apperrors.NewProvisioningError(
				fmt.Sprintf("cannot create table %s: %s", table, ae.ErrorMessage()), err)
		}
	case "Scan":
		return apperrors.NewScanError(fmt.Sprintf("%s: %s", ae.ErrorCode(), ae.ErrorMessage()), err)
	}

	return apperrors.NewDatabaseError(operation, err)
}

// waitError reports a table that was created but never became ACTIVE.
func waitError(table string, err error) error {
	if errors.Is(err, context.Canceled) {
		return apperrors.NewConnectivityError("DescribeTable", err)
	}
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return apperrors.NewDatabaseError("DescribeTable", err)
	}
	return apperrors.NewProvisioningError(fmt.Sprintf("table %s did not become active", table), err)
}
