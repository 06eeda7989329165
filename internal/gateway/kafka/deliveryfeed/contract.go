//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryfeed_test
package deliveryfeed

import (
	"context"

	"github.com/IBM/sarama"
)

type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(ctx context.Context) error) error
}
