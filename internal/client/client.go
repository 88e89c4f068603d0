package client

import (
	"context"

	"github.com/GGmuzem/web-calculator/pkg/models"
)

// Calculator выполняет вычисление на удалённом сервисе
type Calculator interface {
	Calculate(ctx context.Context, req models.CalculateRequest) (float64, error)
	Close() error
}
