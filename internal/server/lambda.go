package server

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

// HandleLambda serves an API Gateway proxy event. Failures are reported in
// the response, never as a Lambda invocation error.
func (h *Handler) HandleLambda(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp := h.Handle(ctx, req.QueryStringParameters["imageUrl"])

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
		Body:       resp.Body,
	}, nil
}

// StartLambda blocks serving Lambda invocations
func (h *Handler) StartLambda() {
	lambda.Start(h.HandleLambda)
}
