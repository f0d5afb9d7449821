package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/signing-client/api"
	"github.com/carson-networks/signing-client/internal/logging"
	"github.com/carson-networks/signing-client/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	client *api.Client
	logger *logrus.Logger
	queue  chan ActionItem
}

func NewOperator(client *api.Client, logger *logrus.Logger, queue chan ActionItem) *Operator {
	return &Operator{
		client: client,
		logger: logger,
		queue:  queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	logData := logging.NewLogData(o.logger)
	ctx := logging.WithLogData(item.ctx, logData)

	endTimer := logData.AddTiming("actionMs")
	err := item.action.Perform(ctx, o.client)
	endTimer()
	if err != nil {
		logData.Log().WithError(err).Errorf("Operator.%v.Error", item.action.Name())
		item.response <- ActionItemResponse{err: err}
		return
	}

	logData.Log().Debugf("Operator.%v.Complete", item.action.Name())
	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
