package faucet

import (
	"context"
	"fmt"
	"time"

	"capy_automator/internal/app/port"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type gasRequest struct {
	FixedAmountRequest struct {
		Recipient string `json:"recipient"`
	} `json:"FixedAmountRequest"`
}

type gasResponse struct {
	TransferredGasObjects []struct {
		Amount uint64 `json:"amount"`
		ID     string `json:"id"`
	} `json:"transferredGasObjects"`
	Error *string `json:"error"`
}

// faucetClientImpl requests test coins from a Sui faucet.
type faucetClientImpl struct {
	client  *fasthttp.Client
	url     string
	timeout time.Duration
	logger  *zap.Logger
}

// NewFaucetClient creates a new faucet client posting to url.
func NewFaucetClient(url string, timeout time.Duration, logger *zap.Logger) port.FaucetClient {
	return &faucetClientImpl{
		client:  &fasthttp.Client{},
		url:     url,
		timeout: timeout,
		logger:  logger.Named("FaucetClient"),
	}
}

// RequestGas implements port.FaucetClient.
func (c *faucetClientImpl) RequestGas(ctx context.Context, address string) error {
	if c.url == "" {
		return fmt.Errorf("no faucet url configured")
	}

	var body gasRequest
	body.FixedAmountRequest.Recipient = address
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode faucet request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(payload)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.DoTimeout(req, resp, c.timeout)
	}
	if err != nil {
		c.logger.Error("Failed to execute faucet request", zap.String("url", c.url), zap.Error(err))
		return fmt.Errorf("failed to execute request to %s: %w", c.url, err)
	}

	rawBody := resp.Body()
	status := resp.StatusCode()
	if status != fasthttp.StatusOK && status != fasthttp.StatusCreated && status != fasthttp.StatusAccepted {
		c.logger.Warn("Faucet request rejected",
			zap.String("url", c.url),
			zap.Int("statusCode", status),
			zap.ByteString("responseBody", rawBody))
		return fmt.Errorf("faucet %s answered %d: %s", c.url, status, string(rawBody))
	}

	var parsed gasResponse
	if err := json.Unmarshal(rawBody, &parsed); err != nil {
		return fmt.Errorf("failed to decode faucet response: %w", err)
	}
	if parsed.Error != nil && *parsed.Error != "" {
		return fmt.Errorf("faucet refused: %s", *parsed.Error)
	}

	var total uint64
	for _, obj := range parsed.TransferredGasObjects {
		total += obj.Amount
	}
	c.logger.Info("Faucet gas received",
		zap.String("address", address),
		zap.Int("objects", len(parsed.TransferredGasObjects)),
		zap.Uint64("amount", total))
	return nil
}
