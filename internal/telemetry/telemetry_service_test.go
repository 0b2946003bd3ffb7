package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/amplitude/analytics-go/amplitude/types"
	"github.com/stretchr/testify/assert"
)

func TestCallback_DoesNotBlockWithoutReceiver(t *testing.T) {
	svc := &TelemetryService{
		ctx:             context.Background(),
		EnableTelemetry: true,
		CallBackChan:    make(chan types.ExecuteResult),
	}

	done := make(chan struct{})
	go func() {
		svc.Callback(types.ExecuteResult{Code: 200})
		svc.Callback(types.ExecuteResult{Code: 500, Message: "server error"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Callback blocked with no receiver on the results channel")
	}
}

func TestCallback_DeliversToReceiver(t *testing.T) {
	svc := &TelemetryService{
		ctx:             context.Background(),
		EnableTelemetry: true,
		CallBackChan:    make(chan types.ExecuteResult, 1),
	}

	svc.Callback(types.ExecuteResult{Code: 200})

	result := <-svc.CallBackChan
	assert.Equal(t, 200, result.Code)
}

func TestCallback_InvalidKeyDisablesTelemetry(t *testing.T) {
	svc := &TelemetryService{
		ctx:             context.Background(),
		EnableTelemetry: true,
		CallBackChan:    make(chan types.ExecuteResult, 1),
	}

	svc.Callback(types.ExecuteResult{Code: 401, Message: "Invalid API key"})

	assert.False(t, svc.EnableTelemetry)
}
