package main

import (
	"context"

	"investorapi/cmd"
	"investorapi/internal/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

type lambdaHandler struct {
	ginLambda *ginadapter.GinLambda
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.FromContext(ctx).Infow("received lambda request",
		"method", req.HTTPMethod,
		"path", req.Path,
		"requestID", req.RequestContext.RequestID,
	)
	return m.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	log := logger.New()
	defer log.Sync()

	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	// the engine is built once per container so the upload mutex is shared
	// across invocations
	handler := lambdaHandler{
		ginLambda: ginadapter.New(deps.ApiHandler().InitializeRouterEngine()),
	}
	lambda.Start(handler.Handler)
}
