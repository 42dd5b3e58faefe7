package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"booking-service/domain"
)

type PaymentServiceImpl struct {
	gatewayURL     string
	client         *http.Client
	Tracer         trace.Tracer
	CircuitBreaker *gobreaker.CircuitBreaker
}

func NewPaymentServiceImpl(gatewayURL string, tracer trace.Tracer) PaymentService {
	circuitBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "HTTPSRequest",
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			fmt.Printf("Circuit Breaker state changed from %s to %s\n", from, to)
		},
	})
	return &PaymentServiceImpl{
		gatewayURL:     gatewayURL,
		client:         &http.Client{Timeout: 10 * time.Second},
		Tracer:         tracer,
		CircuitBreaker: circuitBreaker,
	}
}

type chargeRequest struct {
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	CustomerContact string `json:"customer_contact"`
	Description     string `json:"description"`
}

type refundRequest struct {
	OriginalTransactionRef string `json:"original_transaction_ref"`
	Amount                 int64  `json:"amount"`
	Reason                 string `json:"reason"`
}

type gatewayResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Error         string `json:"error"`
}

func (s *PaymentServiceImpl) Charge(ctx context.Context, amount int64, currency, customerContact, description string) (string, error) {
	ctx, span := s.Tracer.Start(ctx, "PaymentService.Charge")
	defer span.End()

	body := chargeRequest{
		Amount:          amount,
		Currency:        currency,
		CustomerContact: customerContact,
		Description:     description,
	}

	txID, err := s.post(ctx, s.gatewayURL+"/api/payments/charge", body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", &domain.ExternalServiceError{Operation: "charge", Cause: err}
	}
	return txID, nil
}

func (s *PaymentServiceImpl) Refund(ctx context.Context, originalTransactionRef string, amount int64, reason string) (string, error) {
	ctx, span := s.Tracer.Start(ctx, "PaymentService.Refund")
	defer span.End()

	body := refundRequest{
		OriginalTransactionRef: originalTransactionRef,
		Amount:                 amount,
		Reason:                 reason,
	}

	txID, err := s.post(ctx, s.gatewayURL+"/api/payments/refund", body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", &domain.ExternalServiceError{Operation: "refund", Cause: err}
	}
	return txID, nil
}

func (s *PaymentServiceImpl) post(ctx context.Context, url string, body interface{}) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	result, err := s.CircuitBreaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		var gatewayResp gatewayResponse
		if err := json.NewDecoder(resp.Body).Decode(&gatewayResp); err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK || !gatewayResp.Success {
			if gatewayResp.Error != "" {
				return nil, errors.New(gatewayResp.Error)
			}
			return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
		}
		return gatewayResp.TransactionID, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
