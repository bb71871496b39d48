package rpc

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authslice/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain identifies ErrorInfo details produced by this contract.
const ErrorDomain = "authentication"

var kindCodes = map[common.Kind]codes.Code{
	common.KindValidation:         codes.InvalidArgument,
	common.KindAlreadyRegistered:  codes.AlreadyExists,
	common.KindEmailNotRegistered: codes.NotFound,
	common.KindInvalidPassword:    codes.Unauthenticated,
	common.KindInvalidToken:       codes.Unauthenticated,
	common.KindStoreUnavailable:   codes.Unavailable,
	common.KindUnavailable:        codes.Unavailable,
	common.KindTimeout:            codes.DeadlineExceeded,
	common.KindRateLimited:        codes.ResourceExhausted,
	common.KindInternal:           codes.Internal,
}

// Error is a failure decoded from a transport reply. It unwraps to the
// sentinel of its Kind, so errors.Is works across the service boundary.
type Error struct {
	Kind    common.Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind.Err()
}

// ToStatus converts a service error into a gRPC status error carrying the
// error kind as an ErrorInfo reason. The message never includes the text of
// unclassified errors.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	kind := common.KindOf(err)
	code, ok := kindCodes[kind]
	if !ok {
		code = codes.Internal
	}

	msg := kind.Err().Error()
	var verr *common.ValidationError
	if errors.As(err, &verr) {
		msg = verr.Error()
	}

	st := status.New(code, msg)
	info := &errdetails.ErrorInfo{Reason: string(kind), Domain: ErrorDomain}
	if verr != nil {
		br := &errdetails.BadRequest{}
		for _, f := range verr.Fields {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       f.Field,
				Description: f.Message,
			})
		}
		if withDetails, err := st.WithDetails(info, br); err == nil {
			return withDetails.Err()
		}
		return st.Err()
	}
	if withDetails, err := st.WithDetails(info); err == nil {
		return withDetails.Err()
	}
	return st.Err()
}

// FromError decodes an error returned by a Users call. The ErrorInfo reason
// wins; without one the gRPC code decides. Non-status errors are treated as
// transport faults.
func FromError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	var (
		kind       common.Kind
		violations []common.FieldError
	)
	for _, d := range st.Details() {
		switch detail := d.(type) {
		case *errdetails.ErrorInfo:
			if detail.GetDomain() != ErrorDomain {
				continue
			}
			if k, ok := common.ParseKind(detail.GetReason()); ok {
				kind = k
			}
		case *errdetails.BadRequest:
			for _, v := range detail.GetFieldViolations() {
				violations = append(violations, common.FieldError{Field: v.GetField(), Message: v.GetDescription()})
			}
		}
	}

	if kind == common.KindValidation {
		return &common.ValidationError{Fields: violations}
	}
	if kind != "" {
		return &Error{Kind: kind, Message: st.Message()}
	}

	switch st.Code() {
	case codes.DeadlineExceeded:
		return &Error{Kind: common.KindTimeout, Message: st.Message()}
	case codes.Unavailable, codes.Canceled:
		return &Error{Kind: common.KindUnavailable, Message: st.Message()}
	case codes.InvalidArgument:
		return &common.ValidationError{Fields: violations}
	default:
		return &Error{Kind: common.KindInternal, Message: st.Message()}
	}
}
