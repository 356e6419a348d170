// Package grpcgate exposes the entity data-field gate as a gRPC service, so
// ingestion pipelines in other processes can get a go/no-go decision before
// persisting an entity.
package grpcgate

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"ontograph.dev/datagate/entity"
	"ontograph.dev/datagate/gate"
)

// Server answers Check requests by decoding the kind-tagged entity JSON and
// running the gate over it.
type Server struct {
	UnimplementedGateServer
}

func (s *Server) Check(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	e, err := entity.Decode(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := gate.Validate(e); err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String("ok"), nil
}

// mapErr translates structured gate errors into status codes. The RuleID is
// kept as a message prefix so clients can reconstruct the failure kind.
func mapErr(err error) error {
	var e *gate.Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}
	msg := e.RuleID + ": " + e.Error()
	switch e.Kind {
	case gate.KindUnsupportedCodec:
		// Expected outcome for legitimately-encoded-but-unchecked formats.
		return status.Error(codes.FailedPrecondition, msg)
	case gate.KindMalformedEnvelope, gate.KindMalformedPayload:
		return status.Error(codes.InvalidArgument, msg)
	default:
		return status.Error(codes.Internal, msg)
	}
}
