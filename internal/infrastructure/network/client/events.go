package client

import (
	"fmt"

	"capy_automator/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
)

// UseNumber keeps u64 fields of event payloads exact.
var json = jsoniter.Config{UseNumber: true, EscapeHTML: false, ValidateJsonRawMessage: true}.Froze()

const executionSuccess = "success"

type moveCallResponse struct {
	TxBytes string `json:"txBytes"`
}

type executionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type executeResponse struct {
	Digest  string `json:"digest"`
	Effects *struct {
		Status executionStatus `json:"status"`
	} `json:"effects"`
	Events []entity.Event `json:"events"`
}

// decodeExecution turns a sui_executeTransactionBlock result into an OperationResult.
// A transaction that executed but aborted on chain is reported as an error.
func decodeExecution(raw []byte) (*entity.OperationResult, error) {
	var resp executeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode execution result: %w", err)
	}
	if resp.Effects != nil && resp.Effects.Status.Status != "" && resp.Effects.Status.Status != executionSuccess {
		return nil, fmt.Errorf("transaction %s %s: %s", resp.Digest, resp.Effects.Status.Status, resp.Effects.Status.Error)
	}
	return &entity.OperationResult{Digest: resp.Digest, Events: resp.Events}, nil
}

type balanceResponse struct {
	CoinType     string `json:"coinType"`
	TotalBalance string `json:"totalBalance"`
}

type coinMetadata struct {
	Decimals uint8  `json:"decimals"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
}

type coinPage struct {
	Data []struct {
		CoinType     string `json:"coinType"`
		CoinObjectID string `json:"coinObjectId"`
		Balance      string `json:"balance"`
	} `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

type objectPage struct {
	Data []struct {
		Data *struct {
			ObjectID string `json:"objectId"`
			Type     string `json:"type"`
		} `json:"data"`
	} `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}
