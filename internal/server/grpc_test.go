package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/GGmuzem/web-calculator/internal/calculate"
	"github.com/GGmuzem/web-calculator/pkg/calculator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newBufconnClient(t *testing.T) calculator.CalculatorClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	grpcServer := NewGRPCServer()
	go grpcServer.Serve(lis)
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return calculator.NewCalculatorClient(conn)
}

func TestGRPC_Calculate(t *testing.T) {
	c := newBufconnClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tests := []struct {
		req      calculator.CalculateRequest
		expected float64
	}{
		{calculator.CalculateRequest{Num1: 2, Num2: 3, Operator: "+"}, 5},
		{calculator.CalculateRequest{Num1: 10, Num2: 4, Operator: "-"}, 6},
		{calculator.CalculateRequest{Num1: 6, Num2: 7, Operator: "*"}, 42},
		{calculator.CalculateRequest{Num1: 9, Num2: 3, Operator: "/"}, 3},
		{calculator.CalculateRequest{Num1: "9", Num2: "0.5", Operator: "*"}, 4.5},
	}

	for _, test := range tests {
		resp, err := c.Calculate(ctx, &test.req)
		require.NoError(t, err)
		assert.Equal(t, test.expected, resp.Result)
	}
}

func TestGRPC_CalculateErrors(t *testing.T) {
	c := newBufconnClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tests := []struct {
		req     calculator.CalculateRequest
		code    codes.Code
		message string
	}{
		{calculator.CalculateRequest{Num1: 5, Num2: 0, Operator: "/"}, codes.InvalidArgument, calculate.MsgDivisionByZero},
		{calculator.CalculateRequest{Num1: "x", Num2: 2, Operator: "+"}, codes.InvalidArgument, calculate.MsgInvalidInput},
		{calculator.CalculateRequest{Num1: 1, Num2: 2, Operator: "^"}, codes.InvalidArgument, calculate.MsgInvalidOperator},
	}

	for _, test := range tests {
		_, err := c.Calculate(ctx, &test.req)
		require.Error(t, err)
		st := status.Convert(err)
		assert.Equal(t, test.code, st.Code())
		assert.Equal(t, test.message, st.Message())
	}

	// Результат +Inf не кодируется в JSON
	_, err := c.Calculate(ctx, &calculator.CalculateRequest{Num1: 1e308, Num2: 10, Operator: "*"})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestRecoveryInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/calculator.Calculator/Calculate"}
	_, err := recoveryInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	})

	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "boom", status.Convert(err).Message())
}
