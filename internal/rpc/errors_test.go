package rpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/authslice/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

func TestToStatus_Codes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{"conflict", fmt.Errorf("create: %w", common.ErrAlreadyRegistered), codes.AlreadyExists, "email is already registered"},
		{"not registered", common.ErrEmailNotRegistered, codes.NotFound, "email not registered"},
		{"invalid password", common.ErrInvalidPassword, codes.Unauthenticated, "password is invalid"},
		{"store", common.ErrStoreUnavailable, codes.Unavailable, "store unavailable"},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded, "request timed out"},
		{"raw driver error is not leaked", errors.New("connection refused 10.0.0.3:27017"), codes.Internal, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := status.Convert(ToStatus(tt.err))
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}

func TestToStatus_PassesThroughStatus(t *testing.T) {
	in := status.Error(codes.PermissionDenied, "nope")
	assert.Equal(t, in, ToStatus(in))
	assert.NoError(t, ToStatus(nil))
}

func TestToStatus_AttachesErrorInfo(t *testing.T) {
	st := status.Convert(ToStatus(common.ErrEmailNotRegistered))
	require.Len(t, st.Details(), 1)

	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	require.True(t, ok, "detail is %T", st.Details()[0])
	want := &errdetails.ErrorInfo{Reason: "EMAIL_NOT_REGISTERED", Domain: ErrorDomain}
	assert.True(t, proto.Equal(want, info), "got %v", info)
}

func TestRoundTrip_PreservesKind(t *testing.T) {
	for _, sentinel := range []error{
		common.ErrAlreadyRegistered,
		common.ErrEmailNotRegistered,
		common.ErrInvalidPassword,
		common.ErrStoreUnavailable,
		common.ErrTimeout,
	} {
		decoded := FromError(ToStatus(sentinel))
		assert.True(t, errors.Is(decoded, sentinel), "want %v, got %v", sentinel, decoded)
		assert.Equal(t, common.KindOf(sentinel), common.KindOf(decoded))
	}
}

func TestRoundTrip_Validation(t *testing.T) {
	in := &common.ValidationError{Fields: []common.FieldError{{Field: "email", Message: "must be a valid email"}}}

	decoded := FromError(ToStatus(in))

	var verr *common.ValidationError
	require.True(t, errors.As(decoded, &verr))
	assert.Equal(t, in.Fields, verr.Fields)
}

func TestFromError_ByCode(t *testing.T) {
	assert.True(t, errors.Is(FromError(status.Error(codes.DeadlineExceeded, "context deadline exceeded")), common.ErrTimeout))
	assert.True(t, errors.Is(FromError(status.Error(codes.Unavailable, "connection refused")), common.ErrUnavailable))
	assert.True(t, errors.Is(FromError(status.Error(codes.Canceled, "canceled")), common.ErrUnavailable))
	assert.True(t, errors.Is(FromError(status.Error(codes.Unknown, "Email is already registered")), common.ErrorInternal),
		"message text must not be interpreted")
	assert.True(t, errors.Is(FromError(errors.New("eof")), common.ErrUnavailable))
	assert.NoError(t, FromError(nil))
}
